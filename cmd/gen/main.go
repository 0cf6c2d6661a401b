package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the catalog tables into
// internal/infra/persistence/postgres/query.
func main() {
	models := []any{
		model.ProductModel{},
		model.CategoryModel{},
		model.SubCategoryModel{},
		model.ReviewModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
