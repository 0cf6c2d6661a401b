package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	images      *mockSvc.MockImageStore
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	images := mockSvc.NewMockImageStore(t)

	return adminServiceFixtures{
		service:     NewAdminService(txManager, profileRepo, images, newDiscardLogger()),
		txManager:   txManager,
		profileRepo: profileRepo,
		images:      images,
	}
}

var testCategories = []*entity.Category{
	{ID: "shoes", Name: "Shoes", SubCategories: []entity.SubCategory{{ID: "running", Name: "Running"}}},
	{ID: "bags", Name: "Bags"},
}

func TestAdminService_ListProducts(t *testing.T) {
	tests := []struct {
		name      string
		products  []*entity.Product
		err       error
		wantState entity.ListingState
		wantLen   int
	}{
		{"ready", []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}, nil, entity.ListingReady, 2},
		{"empty", []*entity.Product{}, nil, entity.ListingEmpty, 0},
		{"failed", nil, errors.New("connection refused"), entity.ListingFailed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAdminService(t)
			ctx := context.Background()

			f.txManager.EXPECT().
				Execute(ctx, mock.Anything).
				RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockProductRepo := mockRepo.NewMockProductRepository(t)

					mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
					mockProductRepo.EXPECT().ListAll(ctx).Return(tt.products, tt.err)

					return fn(mockFactory)
				})

			listing := f.service.ListProducts(ctx)

			assert.Equal(t, tt.wantState, listing.State)
			assert.Len(t, listing.Items, tt.wantLen)
			assert.NotNil(t, listing.Items)
			if tt.err != nil {
				assert.NotEmpty(t, listing.Error)
			}
		})
	}
}

func TestAdminService_ListUsers_FailureIsDistinctFromEmpty(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()

	f.profileRepo.EXPECT().List(ctx).Return(nil, errors.New("permission denied")).Once()
	failed := f.service.ListUsers(ctx)

	f.profileRepo.EXPECT().List(ctx).Return([]*entity.User{}, nil).Once()
	empty := f.service.ListUsers(ctx)

	assert.Equal(t, entity.ListingFailed, failed.State)
	assert.Equal(t, entity.ListingEmpty, empty.State)
	assert.Empty(t, empty.Error)
}

// expectCreateTx wires one transaction for product creation.
func expectCreateTx(t *testing.T, txManager *mockRepo.MockTransactionManager, create func(*entity.Product) error) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo).Maybe()
			mockCategoryRepo.EXPECT().List(ctx).Return(testCategories, nil)
			if create != nil {
				mockProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).RunAndReturn(
					func(_ context.Context, p *entity.Product) error { return create(p) })
			}

			return fn(mockFactory)
		})
}

func TestAdminService_CreateProduct_WithImage(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()

	var created *entity.Product
	expectCreateTx(t, f.txManager, func(p *entity.Product) error {
		created = p

		return nil
	})
	f.images.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return len(key) > len(productImagePrefix) && key[:len(productImagePrefix)] == productImagePrefix && key[len(key)-4:] == ".png"
		}), "image/png", []byte("png-bytes")).
		Return("https://cdn.example.com/products/x.png", nil)

	product, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:          "  Trail Runner ",
		CategoryID:    "shoes",
		SubCategoryID: "running",
		Brand:         "Acme",
		Price:         89.5,
		CountInStock:  12,
		Image:         &usecase.ImageUpload{Filename: "photo.PNG", ContentType: "image/png", Data: []byte("png-bytes")},
	})

	require.NoError(t, err)
	assert.Equal(t, created, product)
	assert.Equal(t, "Trail Runner", product.Name)
	assert.Equal(t, "Shoes", product.Category)
	require.NotNil(t, product.Image)
	assert.Equal(t, "https://cdn.example.com/products/x.png", *product.Image)
}

func TestAdminService_CreateProduct_WithoutImage(t *testing.T) {
	f := createTestAdminService(t)

	expectCreateTx(t, f.txManager, func(*entity.Product) error { return nil })

	product, err := f.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:       "Canvas Tote",
		CategoryID: "bags",
		Price:      20,
	})

	require.NoError(t, err)
	assert.Nil(t, product.Image)
	f.images.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_CreateProduct_UnknownCategory(t *testing.T) {
	f := createTestAdminService(t)

	expectCreateTx(t, f.txManager, nil)

	_, err := f.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:       "Canvas Tote",
		CategoryID: "hats",
		Price:      20,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_CreateProduct_SubCategoryMustBelongToCategory(t *testing.T) {
	f := createTestAdminService(t)

	expectCreateTx(t, f.txManager, nil)

	_, err := f.service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:          "Canvas Tote",
		CategoryID:    "bags",
		SubCategoryID: "running",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_CreateProduct_ImageFailure(t *testing.T) {
	f := createTestAdminService(t)
	ctx := context.Background()

	expectCreateTx(t, f.txManager, nil)
	f.images.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket unreachable"))

	_, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       "Canvas Tote",
		CategoryID: "bags",
		Image:      &usecase.ImageUpload{Filename: "a.jpg", Data: []byte("jpg")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
}

func TestAdminService_CreateProduct_RejectsInvalidInput(t *testing.T) {
	f := createTestAdminService(t)

	_, err := f.service.CreateProduct(context.Background(), &usecase.CreateProductInput{Name: " ", CategoryID: "bags"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.CreateProduct(context.Background(), &usecase.CreateProductInput{Name: "Tote", CategoryID: "bags", Price: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
