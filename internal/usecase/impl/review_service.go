package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface. The rating columns
// on products are maintained by database triggers; this service never
// touches them directly.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview adds a review; one per user per product.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := validateReviewFields(input.Rating, input.Comment); err != nil {
		srv.log(ctx).Warn("Review validation failed", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	review := &entity.Review{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindRow(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("cannot review a missing product")
			}

			return errors.Wrap(err, "failed to load product for review")
		}

		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrReviewExists.WrapMessage("user already reviewed this product")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review creation transaction", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Review created", slog.Int64("reviewID", review.ID), slog.Int64("productID", input.ProductID))

	return review, nil
}

// UpdateReview edits the caller's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, input *usecase.UpdateReviewInput) error {
	if err := validateReviewFields(input.Rating, input.Comment); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		existing, err := srv.loadOwnedReview(ctx, reviewRepo, input.ReviewID, input.UserID)
		if err != nil {
			return err
		}

		existing.Rating = input.Rating
		existing.Comment = input.Comment

		return reviewRepo.Update(ctx, existing)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review update transaction", slog.Int64("reviewID", input.ReviewID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Review updated", slog.Int64("reviewID", input.ReviewID))

	return nil
}

// DeleteReview removes the caller's own review.
func (srv *reviewService) DeleteReview(ctx context.Context, input *usecase.DeleteReviewInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		if _, err := srv.loadOwnedReview(ctx, reviewRepo, input.ReviewID, input.UserID); err != nil {
			return err
		}

		return reviewRepo.Delete(ctx, input.ReviewID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute review deletion transaction", slog.Int64("reviewID", input.ReviewID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Review deleted", slog.Int64("reviewID", input.ReviewID))

	return nil
}

// ProductReviews lists a product's reviews, newest first.
func (srv *reviewService) ProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	return reviews, nil
}

// loadOwnedReview reads the review and distinguishes "not yours" from
// "does not exist".
func (srv *reviewService) loadOwnedReview(ctx context.Context, reviewRepo repository.ReviewRepository, reviewID, userID int64) (*entity.Review, error) {
	existing, err := reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound.WrapMessage("review does not exist")
		}

		return nil, errors.Wrap(err, "failed to load review for ownership check")
	}

	if existing.UserID != userID {
		srv.log(ctx).Warn("Review ownership check failed", slog.Int64("reviewID", reviewID), slog.Int64("userID", userID))

		return nil, domainerrors.ErrForbidden.WrapMessage("review belongs to another user")
	}

	return existing, nil
}
