package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	productImagePrefix = "products/"
	imageDigestLength  = 12
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	images      service.ImageStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	txManager repository.TransactionManager,
	profileRepo repository.ProfileRepository,
	images service.ImageStore,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		txManager:   txManager,
		profileRepo: profileRepo,
		images:      images,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts fetches the whole catalog. A failed fetch is logged and
// reported through the listing state.
func (srv *adminService) ListProducts(ctx context.Context) entity.Listing[*entity.Product] {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list all products")
		}
		products = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Admin product listing failed", slog.Any("error", err))

		return entity.FailedListing[*entity.Product]("Failed to load products")
	}

	return entity.NewListing(products)
}

// ListUsers fetches every profile document.
func (srv *adminService) ListUsers(ctx context.Context) entity.Listing[*entity.User] {
	users, err := srv.profileRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Admin user listing failed", slog.Any("error", err))

		return entity.FailedListing[*entity.User]("Failed to load users")
	}

	return entity.NewListing(users)
}

// CreateProduct stores the optional image first, then inserts the product.
func (srv *adminService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price < 0 || input.CountInStock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price and stock must not be negative")
	}

	product := &entity.Product{
		ID:            uuid.New(),
		Name:          name,
		Description:   strings.TrimSpace(input.Description),
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Brand:         strings.TrimSpace(input.Brand),
		Price:         input.Price,
		CountInStock:  input.CountInStock,
		IsDeal:        input.IsDeal,
		CreatedAt:     srv.now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		category, err := findCategory(ctx, repoFactory, input.CategoryID)
		if err != nil {
			return err
		}
		if input.SubCategoryID != "" && !category.HasSubCategory(input.SubCategoryID) {
			return domainerrors.ErrValidationFailed.WithDetails("unknown subcategory: " + input.SubCategoryID)
		}
		product.Category = category.Name

		if input.Image != nil && len(input.Image.Data) > 0 {
			ref, err := srv.images.Put(ctx, imageKey(product.ID, input.Image), input.Image.ContentType, input.Image.Data)
			if err != nil {
				return errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
			}
			product.Image = &ref
		}

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("categoryID", product.CategoryID),
		slog.Bool("hasImage", product.Image != nil))

	return product, nil
}

func findCategory(ctx context.Context, repoFactory repository.RepositoryFactory, id string) (*entity.Category, error) {
	categories, err := repoFactory.CategoryRepo().List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + id)
}

// imageKey names the stored object after the product and the image content,
// keeping the upload's extension. A replaced image never reuses a cached URL.
func imageKey(id uuid.UUID, image *usecase.ImageUpload) string {
	digest := util.Checksum(image.Data)[:imageDigestLength]

	return productImagePrefix + id.String() + "-" + digest + strings.ToLower(path.Ext(image.Filename))
}
