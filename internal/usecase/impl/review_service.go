package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	txManager repository.TransactionManager,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   txManager,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns a product's reviews, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProduct(ctx, repoFactory, productID); err != nil {
			return err
		}

		found, err := repoFactory.ReviewRepo().ListByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list reviews")
		}
		reviews = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// SubmitReview stores a review and announces it so the product rating gets recomputed.
func (srv *reviewService) SubmitReview(ctx context.Context, author *entity.SessionClaims, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	if author == nil || author.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "review requires a signed-in user")
	}
	if input.Rating < entity.MinReviewRating || input.Rating > entity.MaxReviewRating {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("comment is required")
	}

	review := &entity.Review{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		UserID:    author.Subject,
		UserName:  srv.authorName(ctx, author),
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: srv.now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProduct(ctx, repoFactory, input.ProductID); err != nil {
			return err
		}

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review submitted",
		slog.String("reviewID", review.ID.String()),
		slog.String("productID", review.ProductID.String()),
		slog.Int("rating", review.Rating))

	event := &service.ReviewSubmittedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ReviewID:  review.ID.String(),
		ProductID: review.ProductID.String(),
		UserID:    review.UserID,
		Rating:    review.Rating,
	}
	if err := srv.publisher.PublishReviewSubmitted(ctx, event); err != nil {
		// The review is stored; the aggregate catches up with the next review.
		srv.log(ctx).Error("Failed to publish review event",
			slog.String("reviewID", event.ReviewID),
			slog.Any("error", err))
	}

	return review, nil
}

// authorName prefers the profile name, then the token display name.
func (srv *reviewService) authorName(ctx context.Context, author *entity.SessionClaims) string {
	profile, err := srv.profileRepo.FindByID(ctx, author.Subject)
	switch {
	case err == nil && profile != nil && profile.Name != "":
		return profile.Name
	case err != nil && !errors.Is(err, repository.ErrProfileNotFound):
		srv.log(ctx).Warn("Failed to load reviewer profile",
			slog.String("subject", author.Subject),
			slog.Any("error", err))
	}

	if author.DisplayName != "" {
		return author.DisplayName
	}

	return entity.DefaultUserName
}
