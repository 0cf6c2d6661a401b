package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// shareService implements the ShareUsecase interface.
type shareService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	scheme    string
	logger    *slog.Logger
}

// NewShareService is the constructor for shareService.
func NewShareService(
	txManager repository.TransactionManager,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ShareUsecase {
	return &shareService{
		txManager: txManager,
		qrService: qrService,
		scheme:    cfg.App.DeepLinkScheme,
		logger:    logger,
	}
}

func (srv *shareService) ShareProduct(ctx context.Context, productID uuid.UUID) (*entity.ShareLink, error) {
	product, err := srv.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	link := entity.NewShareLink(srv.scheme, product)

	return &link, nil
}

// ShareQRCode renders the product deep link as a PNG QR code.
func (srv *shareService) ShareQRCode(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	product, err := srv.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateLinkQR(entity.ProductLink(srv.scheme, product.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

func (srv *shareService) ResolveLink(ctx context.Context, link string) (*entity.Product, error) {
	id, err := entity.ParseProductLink(srv.scheme, link)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	return srv.product(ctx, id)
}

func (srv *shareService) product(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProduct(ctx, repoFactory, id)
		if err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}
