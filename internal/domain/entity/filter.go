package entity

// SortOrder is the ordering applied to a product listing.
type SortOrder string

const (
	// SortNone keeps the catalog's natural order.
	SortNone SortOrder = ""
	// SortPriceAsc orders by price, lowest first.
	SortPriceAsc SortOrder = "price_asc"
	// SortRatingDesc orders by rating, highest first.
	SortRatingDesc SortOrder = "rating_desc"
	// SortNewest orders by creation time, newest first.
	SortNewest SortOrder = "newest"
)

// IsValid checks if the SortOrder is a known value. The empty order is valid.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortRatingDesc, SortNewest:
		return true
	default:
		return false
	}
}

// ProductFilter is the query sent to the catalog. Every field is optional and
// its zero value means "no constraint on this facet". Stock availability is not
// part of the filter; it is applied after the catalog returns.
type ProductFilter struct {
	Query         string
	CategoryID    string
	SubCategoryID string
	Brand         string
	MinPrice      *float64
	MaxPrice      *float64
	MinRating     *float64
	SortOrder     SortOrder
	IsDeal        bool
	Limit         int
}
