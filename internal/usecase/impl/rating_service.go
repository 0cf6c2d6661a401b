package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RatingUsecase {
	return &ratingService{
		txManager: txManager,
		logger:    logger,
	}
}

// RecomputeRating summarizes a product's reviews and stores the aggregate on
// the product. Running it twice for the same product is harmless.
func (srv *ratingService) RecomputeRating(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var summary *entity.RatingSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProduct(ctx, repoFactory, productID); err != nil {
			return err
		}

		computed, err := repoFactory.ReviewRepo().Summarize(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to summarize reviews")
		}
		computed.ProductID = productID
		computed.Average = roundRating(computed.Average)

		if err := repoFactory.ProductRepo().UpdateRating(ctx, computed); err != nil {
			return errors.Wrap(err, "failed to update product rating")
		}
		summary = computed

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Product rating recomputed",
		slog.String("productID", productID.String()),
		slog.Float64("average", summary.Average),
		slog.Int("numReviews", summary.NumReviews))

	return summary, nil
}

// roundRating keeps two decimals, rounding half away from zero.
func roundRating(avg float64) float64 {
	rounded, _ := decimal.NewFromFloat(avg).Round(2).Float64()

	return rounded
}
