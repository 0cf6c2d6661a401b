package facet

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		wantMin *float64
		wantMax *float64
	}{
		{"all has no bounds", "all", nil, nil},
		{"empty has no bounds", "", nil, nil},
		{"lower bucket", "0-50", ptr(0), ptr(50)},
		{"middle bucket", "50-100", ptr(50), ptr(100)},
		{"decimal bounds", "9.5-19.99", ptr(9.5), ptr(19.99)},
		{"top-open bucket uses ceiling", "100+", ptr(100), ptr(DefaultPriceCeiling)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minPrice, maxPrice, err := ParsePriceRange(tt.bucket, DefaultPriceCeiling)

			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, minPrice)
			assert.Equal(t, tt.wantMax, maxPrice)
		})
	}
}

func TestParsePriceRange_CustomCeiling(t *testing.T) {
	minPrice, maxPrice, err := ParsePriceRange("500+", 2500)

	require.NoError(t, err)
	assert.Equal(t, 500.0, *minPrice)
	assert.Equal(t, 2500.0, *maxPrice)
}

func TestParsePriceRange_Malformed(t *testing.T) {
	for _, bucket := range []string{"cheap", "10", "a-b", "50-10", "-5-10", "+"} {
		t.Run(bucket, func(t *testing.T) {
			_, _, err := ParsePriceRange(bucket, DefaultPriceCeiling)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}
}

func TestParseMinRating(t *testing.T) {
	for _, bucket := range []string{"1", "3", "4", "4.5"} {
		t.Run(bucket, func(t *testing.T) {
			got, err := ParseMinRating(bucket)

			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}

	got, err := ParseMinRating("4")
	require.NoError(t, err)
	assert.Equal(t, 4.0, *got)

	got, err = ParseMinRating("all")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseMinRating("great")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = ParseMinRating("6")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestBuild(t *testing.T) {
	sel := Selection{
		PriceRange:    "50-100",
		Rating:        "4",
		InStock:       true,
		CategoryID:    "shoes",
		SubCategoryID: "running",
		Brand:         "Acme",
	}

	filter, err := Build("  trail  ", sel, entity.SortPriceAsc, true, DefaultPriceCeiling)

	require.NoError(t, err)
	assert.Equal(t, "trail", filter.Query)
	assert.Equal(t, "shoes", filter.CategoryID)
	assert.Equal(t, "running", filter.SubCategoryID)
	assert.Equal(t, "Acme", filter.Brand)
	assert.Equal(t, 50.0, *filter.MinPrice)
	assert.Equal(t, 100.0, *filter.MaxPrice)
	assert.Equal(t, 4.0, *filter.MinRating)
	assert.Equal(t, entity.SortPriceAsc, filter.SortOrder)
	assert.True(t, filter.IsDeal)
}

func TestBuild_AllBucketsLeaveFacetsUnset(t *testing.T) {
	filter, err := Build("", DefaultSelection(RouteParams{}), entity.SortNone, false, 0)

	require.NoError(t, err)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.MinRating)
	assert.Empty(t, filter.CategoryID)
	assert.False(t, filter.IsDeal)
}

func TestBuild_RejectsUnknownSortOrder(t *testing.T) {
	_, err := Build("", DefaultSelection(RouteParams{}), entity.SortOrder("cheapest"), false, DefaultPriceCeiling)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestFilterInStock(t *testing.T) {
	products := []*entity.Product{
		{ID: uuid.New(), CountInStock: 0},
		{ID: uuid.New(), CountInStock: 3},
		{ID: uuid.New(), CountInStock: 0},
	}

	assert.Len(t, FilterInStock(products, false), 3)

	filtered := FilterInStock(products, true)
	require.Len(t, filtered, 1)
	assert.Equal(t, products[1].ID, filtered[0].ID)
}

func TestFilterInStock_NoStockYieldsEmpty(t *testing.T) {
	products := []*entity.Product{
		{ID: uuid.New(), CountInStock: 0},
		{ID: uuid.New(), CountInStock: 0},
	}

	filtered := FilterInStock(products, true)

	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestReconcile(t *testing.T) {
	prev := Selection{
		PriceRange:    "0-50",
		Rating:        "3",
		InStock:       true,
		CategoryID:    "shoes",
		SubCategoryID: "running",
		Brand:         "Acme",
	}

	next := Reconcile(prev, RouteParams{CategoryID: "bags"})

	assert.Equal(t, "bags", next.CategoryID)
	assert.Equal(t, "running", next.SubCategoryID)
	assert.Equal(t, "Acme", next.Brand)
	assert.Equal(t, "0-50", next.PriceRange)
	assert.True(t, next.InStock)
}

func TestResolve(t *testing.T) {
	route := RouteParams{CategoryID: "shoes", Brand: "Acme"}

	fromRoute := Resolve(route, nil)
	assert.Equal(t, DefaultSelection(route), fromRoute)

	committed := &Selection{CategoryID: "bags", SubCategoryID: "totes", Rating: "4"}
	fromModal := Resolve(RouteParams{}, committed)
	assert.Equal(t, "bags", fromModal.CategoryID)
	assert.Equal(t, "totes", fromModal.SubCategoryID)
	assert.Empty(t, fromModal.Brand)
	assert.Equal(t, BucketAll, fromModal.PriceRange)
	assert.Equal(t, "4", fromModal.Rating)

	reconciled := Resolve(route, committed)
	assert.Equal(t, "shoes", reconciled.CategoryID, "route category replaces the committed one")
	assert.Equal(t, "totes", reconciled.SubCategoryID)
	assert.Equal(t, "Acme", reconciled.Brand)
	assert.Equal(t, "4", reconciled.Rating)
}

func ptr(v float64) *float64 {
	return &v
}
