package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// List returns every category with its subcategories, in display order.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC").Order("name ASC")
		}).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, categoryM := range categoryModels {
		categories[i] = toCategoryDomain(categoryM)
	}

	return categories, nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	category := &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
	for _, sub := range data.SubCategories {
		category.SubCategories = append(category.SubCategories, entity.SubCategory{
			ID:   sub.ID,
			Name: sub.Name,
		})
	}

	return category
}
