package entity

// Category is a top-level product category with optional subcategories.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
}

// SubCategory is a child of a Category.
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HasSubCategory reports whether subID belongs to this category.
func (c *Category) HasSubCategory(subID string) bool {
	for _, sub := range c.SubCategories {
		if sub.ID == subID {
			return true
		}
	}

	return false
}
