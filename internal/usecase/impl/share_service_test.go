package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectProductLookup(t *testing.T, txManager *mockRepo.MockTransactionManager, product *entity.Product) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		}).
		Once()
}

func TestShareService_ShareProduct(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	shares := NewShareService(txManager, mockSvc.NewMockQRCodeService(t), newCatalogTestConfig(), newDiscardLogger())
	product := &entity.Product{ID: uuid.MustParse("5f0c6a54-93f5-4c6e-9d83-9a1f0f4e1b2a"), Name: "Canvas Tote"}

	expectProductLookup(t, txManager, product)

	link, err := shares.ShareProduct(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, "shop://product/5f0c6a54-93f5-4c6e-9d83-9a1f0f4e1b2a", link.URL)
	assert.Equal(t, "Check out this product: Canvas Tote - shop://product/5f0c6a54-93f5-4c6e-9d83-9a1f0f4e1b2a", link.Message)
}

func TestShareService_ShareQRCode(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	qr := mockSvc.NewMockQRCodeService(t)
	shares := NewShareService(txManager, qr, newCatalogTestConfig(), newDiscardLogger())
	product := &entity.Product{ID: uuid.New()}
	png := []byte{0x89, 'P', 'N', 'G'}

	expectProductLookup(t, txManager, product)
	qr.EXPECT().GenerateLinkQR("shop://product/"+product.ID.String()).Return(png, nil)

	got, err := shares.ShareQRCode(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestShareService_ResolveLink(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	shares := NewShareService(txManager, mockSvc.NewMockQRCodeService(t), newCatalogTestConfig(), newDiscardLogger())
	product := &entity.Product{ID: uuid.New(), Name: "Canvas Tote"}

	expectProductLookup(t, txManager, product)

	got, err := shares.ResolveLink(context.Background(), "shop://product/"+product.ID.String())
	require.NoError(t, err)
	assert.Equal(t, product, got)

	_, err = shares.ResolveLink(context.Background(), "https://example.com/product/"+product.ID.String())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}
