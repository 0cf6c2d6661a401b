package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
// Category identifiers are stable slugs chosen by the catalog team.
type CategoryModel struct {
	ID            string             `gorm:"type:varchar(64);primary_key"`
	Name          string             `gorm:"type:varchar(100);not null"`
	SortOrder     int                `gorm:"not null;default:0"`
	SubCategories []SubCategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubCategoryModel is the GORM-specific struct for the 'sub_categories' table.
type SubCategoryModel struct {
	ID         string `gorm:"type:varchar(64);primary_key"`
	CategoryID string `gorm:"type:varchar(64);not null;index"`
	Name       string `gorm:"type:varchar(100);not null"`
	SortOrder  int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}
