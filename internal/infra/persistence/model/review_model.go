package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// Rows are insert-only.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_product_created,priority:1"`
	UserID    string    `gorm:"type:varchar(128);not null"`
	UserName  string    `gorm:"type:varchar(100);not null"`
	Rating    int       `gorm:"type:smallint;not null;check:rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_reviews_product_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
