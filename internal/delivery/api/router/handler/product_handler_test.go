package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/facet"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockSearchUsecase, *mockUsecase.MockCatalogUsecase) {
	searchUC := mockUsecase.NewMockSearchUsecase(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewProductHandler(ProductHandlerParams{SearchUC: searchUC, CatalogUC: catalogUC}), searchUC, catalogUC
}

func TestProductHandler_SearchProducts_RouteOnly(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)
	searchUC.EXPECT().Search(mock.Anything, "", &usecase.SearchInput{
		Route:     facet.RouteParams{Query: "shoe", CategoryID: "c1", Brand: "Acme"},
		SortOrder: entity.SortPriceAsc,
		IsDeal:    true,
		Limit:     10,
	}).Return(&usecase.SearchResult{Products: []*entity.Product{}}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/products?q=shoe&categoryId=c1&brand=Acme&sortOrder=price_asc&isDeal=true&limit=10", "")

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_SearchProducts_CommittedSelection(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)
	searchUC.EXPECT().Search(mock.Anything, "client-7", mock.MatchedBy(func(in *usecase.SearchInput) bool {
		return in.Committed != nil &&
			*in.Committed == facet.Selection{PriceRange: "10-50", Rating: "4", InStock: true, CategoryID: "c2"} &&
			in.Route.CategoryID == "c1"
	})).Return(&usecase.SearchResult{}, nil).Once()

	c, rec := newTestContext(http.MethodGet,
		"/api/v1/products?categoryId=c1&filter.priceRange=10-50&filter.rating=4&filter.inStock=true&filter.categoryId=c2", "")
	c.Request().Header.Set("X-Client-Id", "client-7")

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_SearchProducts_UnprefixedFacets(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)
	searchUC.EXPECT().Search(mock.Anything, "", &usecase.SearchInput{
		Route:     facet.RouteParams{CategoryID: "c1"},
		Committed: &facet.Selection{PriceRange: "0-50", Rating: "4", InStock: true},
	}).Return(&usecase.SearchResult{}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/products?categoryId=c1&priceRange=0-50&rating=4&inStock=true", "")

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_SearchProducts_PrefixedFacetWins(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)
	searchUC.EXPECT().Search(mock.Anything, "", mock.MatchedBy(func(in *usecase.SearchInput) bool {
		return in.Committed != nil && in.Committed.PriceRange == "100+" && in.Committed.Rating == "3"
	})).Return(&usecase.SearchResult{}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/products?priceRange=0-50&filter.priceRange=100%2B&rating=3", "")

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_SearchProducts_BadCommittedInStock(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)

	for _, target := range []string{"/api/v1/products?filter.inStock=maybe", "/api/v1/products?inStock=maybe"} {
		c, rec := newTestContext(http.MethodGet, target, "")

		require.NoError(t, h.SearchProducts(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
	searchUC.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductHandler_SearchProducts_Superseded(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)
	searchUC.EXPECT().Search(mock.Anything, "client-7", mock.Anything).
		Return(nil, domainerrors.ErrSearchSuperseded).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/products?q=a", "")
	c.Request().Header.Set("X-Client-Id", "client-7")

	require.NoError(t, h.SearchProducts(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SEARCH_SUPERSEDED", decodeEnvelope(t, rec).Error.Code)
}

func TestProductHandler_EvaluateFilterDraft(t *testing.T) {
	h, searchUC, _ := newProductHandler(t)
	searchUC.EXPECT().EvaluateFilterDraft(mock.Anything, &usecase.FilterDraftInput{
		Route: facet.RouteParams{CategoryID: "c1"},
		Actions: []facet.Action{
			{Type: facet.ActionOpen},
			{Type: facet.ActionToggleBrand, Value: "Acme"},
			{Type: facet.ActionApply},
		},
	}).Return(&usecase.FilterDraftResult{
		Draft:     facet.Selection{PriceRange: "all", Rating: "all", CategoryID: "c1", Brand: "Acme"},
		Committed: &facet.Selection{PriceRange: "all", Rating: "all", CategoryID: "c1", Brand: "Acme"},
	}, nil).Once()

	body := `{"route":{"categoryId":"c1"},"actions":[{"type":"open"},{"type":"toggleBrand","value":"Acme"},{"type":"apply"}]}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/products/filter-draft", body)

	require.NoError(t, h.EvaluateFilterDraft(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"committed":{`)
}

func TestProductHandler_EvaluateFilterDraft_NoActions(t *testing.T) {
	h, _, _ := newProductHandler(t)

	c, _ := newTestContext(http.MethodPost, "/api/v1/products/filter-draft", `{"route":{},"actions":[]}`)

	assert.Error(t, h.EvaluateFilterDraft(c))
}

func TestProductHandler_GetProduct(t *testing.T) {
	h, _, catalogUC := newProductHandler(t)
	id := uuid.New()
	catalogUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	h, _, _ := newProductHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/products/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Catalog(t *testing.T) {
	h, _, catalogUC := newProductHandler(t)
	catalogUC.EXPECT().ListCategories(mock.Anything).Return([]*entity.Category{{ID: "c1", Name: "Shoes"}}, nil).Once()
	catalogUC.EXPECT().ListBrands(mock.Anything).Return([]string{"Acme", "Zeta"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/categories", "")
	require.NoError(t, h.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/api/v1/brands", "")
	require.NoError(t, h.ListBrands(c))
	assert.JSONEq(t, `["Acme","Zeta"]`, string(decodeEnvelope(t, rec).Data))
}
