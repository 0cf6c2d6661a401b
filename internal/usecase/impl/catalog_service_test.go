package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetProduct(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCatalogService(txManager, newDiscardLogger())

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Canvas Tote"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	got, err := service.GetProduct(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, product, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCatalogService(txManager, newDiscardLogger())

	ctx := context.Background()
	id := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	_, err := service.GetProduct(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ListCategoriesAndBrands(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCatalogService(txManager, newDiscardLogger())

	ctx := context.Background()
	categories := []*entity.Category{{ID: "shoes", Name: "Shoes", SubCategories: []entity.SubCategory{{ID: "running", Name: "Running"}}}}

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo).Maybe()
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo).Maybe()
			mockCategoryRepo.EXPECT().List(ctx).Return(categories, nil).Maybe()
			mockProductRepo.EXPECT().ListBrands(ctx).Return(nil, errors.New("timeout")).Maybe()

			return fn(mockFactory)
		}).
		Times(2)

	gotCategories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, gotCategories)

	_, err = service.ListBrands(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list brands")
}
