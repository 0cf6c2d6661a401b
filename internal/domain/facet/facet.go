// Package facet turns a shopper's facet selection into a catalog query.
//
// A selection comes from two overlapping sources: the route parameters a
// screen was opened with and the selection committed from the filter modal.
// Route values override the committed category facets; every other facet
// keeps the committed value.
package facet

import (
	"strconv"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

const (
	// BucketAll is the bucket value meaning "no constraint".
	BucketAll = "all"

	// DefaultPriceCeiling is the upper bound given to the top-open price bucket.
	DefaultPriceCeiling = 10000.0

	topOpenSuffix = "+"
)

// RouteParams are the facets a search screen receives through navigation.
type RouteParams struct {
	Query         string
	CategoryID    string
	SubCategoryID string
	Brand         string
}

// Selection is the facet set assembled in the filter modal.
type Selection struct {
	PriceRange    string `json:"priceRange"`
	Rating        string `json:"rating"`
	InStock       bool   `json:"inStock"`
	CategoryID    string `json:"categoryId"`
	SubCategoryID string `json:"subCategoryId"`
	Brand         string `json:"brand"`
}

// DefaultSelection returns the selection a screen starts with: every bucket
// open and the category facets taken from the route.
func DefaultSelection(route RouteParams) Selection {
	return Selection{
		PriceRange:    BucketAll,
		Rating:        BucketAll,
		CategoryID:    route.CategoryID,
		SubCategoryID: route.SubCategoryID,
		Brand:         route.Brand,
	}
}

// Normalized returns s with empty buckets replaced by BucketAll.
func (s Selection) Normalized() Selection {
	if strings.TrimSpace(s.PriceRange) == "" {
		s.PriceRange = BucketAll
	}
	if strings.TrimSpace(s.Rating) == "" {
		s.Rating = BucketAll
	}

	return s
}

// Reconcile applies a route change to a previous selection. A route value
// replaces the previous one; an absent route value keeps it.
func Reconcile(prev Selection, route RouteParams) Selection {
	next := prev
	next.CategoryID = firstNonEmpty(route.CategoryID, prev.CategoryID)
	next.SubCategoryID = firstNonEmpty(route.SubCategoryID, prev.SubCategoryID)
	next.Brand = firstNonEmpty(route.Brand, prev.Brand)

	return next.Normalized()
}

// Resolve picks the effective selection. Without a committed selection it is
// the route defaults; otherwise the route is reconciled into the committed one.
func Resolve(route RouteParams, committed *Selection) Selection {
	if committed != nil {
		return Reconcile(*committed, route)
	}

	return DefaultSelection(route)
}

// ParsePriceRange converts a price bucket into bounds.
//
//	"all" or ""  no bounds
//	"lo-hi"      min lo, max hi
//	"lo+"        min lo, max ceiling
func ParsePriceRange(bucket string, ceiling float64) (minPrice, maxPrice *float64, err error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" || bucket == BucketAll {
		return nil, nil, nil
	}

	if lo, ok := strings.CutSuffix(bucket, topOpenSuffix); ok {
		low, err := parseBound(lo, bucket)
		if err != nil {
			return nil, nil, err
		}
		high := ceiling

		return &low, &high, nil
	}

	lo, hi, ok := strings.Cut(bucket, "-")
	if !ok {
		return nil, nil, invalidBucket("price range", bucket)
	}

	low, err := parseBound(lo, bucket)
	if err != nil {
		return nil, nil, err
	}
	high, err := parseBound(hi, bucket)
	if err != nil {
		return nil, nil, err
	}
	if high < low {
		return nil, nil, invalidBucket("price range", bucket)
	}

	return &low, &high, nil
}

// ParseMinRating converts a rating bucket into a floor.
func ParseMinRating(bucket string) (*float64, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" || bucket == BucketAll {
		return nil, nil
	}

	floor, err := strconv.ParseFloat(bucket, 64)
	if err != nil || floor < 0 || floor > entity.MaxReviewRating {
		return nil, invalidBucket("rating", bucket)
	}

	return &floor, nil
}

// Build composes the catalog query. The in-stock facet is left out; callers
// apply FilterInStock to the fetched products.
func Build(query string, sel Selection, sortOrder entity.SortOrder, isDeal bool, ceiling float64) (*entity.ProductFilter, error) {
	if !sortOrder.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("unknown sort order: " + string(sortOrder))
	}
	if ceiling <= 0 {
		ceiling = DefaultPriceCeiling
	}

	minPrice, maxPrice, err := ParsePriceRange(sel.PriceRange, ceiling)
	if err != nil {
		return nil, err
	}
	minRating, err := ParseMinRating(sel.Rating)
	if err != nil {
		return nil, err
	}

	return &entity.ProductFilter{
		Query:         strings.TrimSpace(query),
		CategoryID:    sel.CategoryID,
		SubCategoryID: sel.SubCategoryID,
		Brand:         sel.Brand,
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		MinRating:     minRating,
		SortOrder:     sortOrder,
		IsDeal:        isDeal,
	}, nil
}

// FilterInStock drops products without stock when inStock is set.
// The input slice is not modified.
func FilterInStock(products []*entity.Product, inStock bool) []*entity.Product {
	if !inStock {
		return products
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.InStock() {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

func parseBound(raw, bucket string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, invalidBucket("price range", bucket)
	}

	return v, nil
}

func invalidBucket(facet, bucket string) error {
	return domainerrors.ErrInvalidArgument.WithDetails("invalid " + facet + " bucket: " + bucket)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
