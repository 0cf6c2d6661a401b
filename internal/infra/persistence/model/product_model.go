package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text;not null;default:''"`
	CategoryID    string          `gorm:"type:varchar(64);not null;index"`
	Category      *CategoryModel  `gorm:"foreignKey:CategoryID"`
	SubCategoryID *string         `gorm:"type:varchar(64);index"`
	Brand         string          `gorm:"type:varchar(100);not null;default:'';index"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CountInStock  int             `gorm:"not null;default:0"`
	Rating        decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0"`
	NumReviews    int             `gorm:"not null;default:0"`
	ImageURL      *string         `gorm:"type:text"`
	IsDeal        bool            `gorm:"not null;default:false;index"`
	CreatedAt     time.Time       `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
