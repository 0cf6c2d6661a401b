// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List returns the products matching filter.
func (repo *productRepository) List(ctx context.Context, filter *entity.ProductFilter) ([]*entity.Product, error) {
	if filter == nil {
		filter = &entity.ProductFilter{}
	}

	query := repo.db.WithContext(ctx).Joins("Category")

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := likePattern(q)
		query = query.Where(
			"(products.name ILIKE ? OR products.description ILIKE ? OR products.brand ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != "" {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.SubCategoryID != "" {
		query = query.Where("products.sub_category_id = ?", filter.SubCategoryID)
	}
	if filter.Brand != "" {
		query = query.Where("products.brand = ?", filter.Brand)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("products.rating >= ?", *filter.MinRating)
	}
	if filter.IsDeal {
		query = query.Where("products.is_deal = ?", true)
	}

	query = applySortOrder(query, filter.SortOrder)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), nil
}

// ListAll returns the whole catalog, oldest first.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Joins("Category").
		Order("products.created_at ASC").
		Order("products.id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all products")
	}

	return toProductDomains(productModels), nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Joins("Category").
		Where("products.id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListBrands returns the distinct non-empty brand names, sorted.
func (repo *productRepository) ListBrands(ctx context.Context) ([]string, error) {
	var brands []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Distinct("brand").
		Where("brand <> ''").
		Order("brand ASC").
		Pluck("brand", &brands).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// UpdateRating stores a recomputed review aggregate on the product.
// The write always goes to the primary.
func (repo *productRepository) UpdateRating(ctx context.Context, summary *entity.RatingSummary) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ProductModel{}).
		Where("id = ?", summary.ProductID).
		Updates(map[string]any{
			"rating":      decimal.NewFromFloat(summary.Average).Round(2),
			"num_reviews": summary.NumReviews,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func applySortOrder(query *gorm.DB, order entity.SortOrder) *gorm.DB {
	switch order {
	case entity.SortPriceAsc:
		return query.Order("products.price ASC").Order("products.id ASC")
	case entity.SortRatingDesc:
		return query.Order("products.rating DESC").Order("products.num_reviews DESC").Order("products.id ASC")
	case entity.SortNewest:
		return query.Order("products.created_at DESC").Order("products.id ASC")
	default:
		return query.Order("products.created_at ASC").Order("products.id ASC")
	}
}

// likePattern wraps term for a substring ILIKE match, escaping LIKE wildcards.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)

	return "%" + escaped + "%"
}

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, len(productModels))
	for i, productM := range productModels {
		products[i] = toProductDomain(productM)
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		CategoryID:   data.CategoryID,
		Brand:        data.Brand,
		Price:        data.Price.InexactFloat64(),
		CountInStock: data.CountInStock,
		Rating:       data.Rating.InexactFloat64(),
		NumReviews:   data.NumReviews,
		Image:        data.ImageURL,
		IsDeal:       data.IsDeal,
		CreatedAt:    data.CreatedAt,
	}
	if data.Category != nil {
		product.Category = data.Category.Name
	}
	if data.SubCategoryID != nil {
		product.SubCategoryID = *data.SubCategoryID
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		CategoryID:   data.CategoryID,
		Brand:        data.Brand,
		Price:        decimal.NewFromFloat(data.Price).Round(2),
		CountInStock: data.CountInStock,
		Rating:       decimal.NewFromFloat(data.Rating).Round(2),
		NumReviews:   data.NumReviews,
		ImageURL:     data.Image,
		IsDeal:       data.IsDeal,
	}
	if data.SubCategoryID != "" {
		subID := data.SubCategoryID
		productM.SubCategoryID = &subID
	}

	return productM
}
