package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. It is read-only for shoppers.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`   // Display name of the top-level category.
	CategoryID    string    `json:"categoryId"` // Identifier of the top-level category.
	SubCategoryID string    `json:"subCategoryId,omitempty"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	CountInStock  int       `json:"countInStock"`
	Rating        float64   `json:"rating"`
	NumReviews    int       `json:"numReviews"`
	Image         *string   `json:"image,omitempty"`
	IsDeal        bool      `json:"isDeal"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p != nil && p.CountInStock > 0
}
