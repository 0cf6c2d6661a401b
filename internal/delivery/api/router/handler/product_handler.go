package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/facet"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// committedFilterPrefix marks the query parameters carrying the selection
// applied from the filter modal.
const committedFilterPrefix = "filter."

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	SearchUC  usecase.SearchUsecase
	CatalogUC usecase.CatalogUsecase
}

// ProductHandler serves product search, product details and the catalog facets.
type ProductHandler struct {
	searchUC  usecase.SearchUsecase
	catalogUC usecase.CatalogUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		searchUC:  params.SearchUC,
		catalogUC: params.CatalogUC,
	}
}

// SearchProductsRequest holds the route facets and listing options of a search
type SearchProductsRequest struct {
	Query         string `query:"q"`
	CategoryID    string `query:"categoryId"`
	SubCategoryID string `query:"subCategoryId"`
	Brand         string `query:"brand"`
	SortOrder     string `query:"sortOrder"`
	IsDeal        bool   `query:"isDeal"`
	Limit         int    `query:"limit" validate:"min=0"`
}

// RouteParamsRequest carries the facets a search screen was opened with
type RouteParamsRequest struct {
	Query         string `json:"q"`
	CategoryID    string `json:"categoryId"`
	SubCategoryID string `json:"subCategoryId"`
	Brand         string `json:"brand"`
}

func (r RouteParamsRequest) toRouteParams() facet.RouteParams {
	return facet.RouteParams{
		Query:         r.Query,
		CategoryID:    r.CategoryID,
		SubCategoryID: r.SubCategoryID,
		Brand:         r.Brand,
	}
}

// FilterDraftRequest replays filter modal interactions
type FilterDraftRequest struct {
	Route     RouteParamsRequest `json:"route"`
	Committed *facet.Selection   `json:"committed,omitempty"`
	Actions   []facet.Action     `json:"actions" validate:"required,min=1,dive"`
}

// SearchProducts runs one catalog search for the screen's facets. Requests
// sharing an X-Client-Id header supersede each other.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	var req SearchProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	committed, err := committedSelection(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid committed filter: "+err.Error())
	}

	input := &usecase.SearchInput{
		Route: facet.RouteParams{
			Query:         req.Query,
			CategoryID:    req.CategoryID,
			SubCategoryID: req.SubCategoryID,
			Brand:         req.Brand,
		},
		Committed: committed,
		SortOrder: entity.SortOrder(req.SortOrder),
		IsDeal:    req.IsDeal,
		Limit:     req.Limit,
	}

	clientID := c.Request().Header.Get(constants.HeaderClientID)
	result, err := h.searchUC.Search(c.Request().Context(), clientID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// committedSelection reads the filter.* query parameters. The price, rating
// and stock facets are also accepted without the prefix; a prefixed value wins.
// It returns nil when none are present, meaning no selection was applied.
func committedSelection(c echo.Context) (*facet.Selection, error) {
	params := c.QueryParams()
	get := func(name string, unprefixed bool) (string, bool) {
		if values := params[committedFilterPrefix+name]; len(values) > 0 {
			return values[0], true
		}
		if values := params[name]; unprefixed && len(values) > 0 {
			return values[0], true
		}

		return "", false
	}

	var (
		sel   facet.Selection
		found bool
	)
	for _, field := range []struct {
		name       string
		dst        *string
		unprefixed bool
	}{
		{name: "priceRange", dst: &sel.PriceRange, unprefixed: true},
		{name: "rating", dst: &sel.Rating, unprefixed: true},
		{name: "categoryId", dst: &sel.CategoryID},
		{name: "subCategoryId", dst: &sel.SubCategoryID},
		{name: "brand", dst: &sel.Brand},
	} {
		if v, ok := get(field.name, field.unprefixed); ok {
			*field.dst = v
			found = true
		}
	}

	if v, ok := get("inStock", true); ok {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		sel.InStock = inStock
		found = true
	}

	if !found {
		return nil, nil
	}

	return &sel, nil
}

// EvaluateFilterDraft replays modal actions and returns the resulting draft
func (h *ProductHandler) EvaluateFilterDraft(c echo.Context) error {
	var req FilterDraftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter draft input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.searchUC.EvaluateFilterDraft(c.Request().Context(), &usecase.FilterDraftInput{
		Route:     req.Route.toRouteParams(),
		Committed: req.Committed,
		Actions:   req.Actions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetProduct returns one product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListCategories returns the categories with their sub-categories
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ListBrands returns the distinct brands of the catalog
func (h *ProductHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUC.ListBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands)
}
