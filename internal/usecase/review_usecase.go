package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateReviewInput defines a buyer's new review of a product.
type CreateReviewInput struct {
	ProductID int64
	UserID    int64
	Rating    int
	Comment   string
}

// UpdateReviewInput replaces the rating and comment of the caller's review.
type UpdateReviewInput struct {
	ReviewID int64
	UserID   int64
	Rating   int
	Comment  string
}

// DeleteReviewInput identifies a review and the user requesting removal.
type DeleteReviewInput struct {
	ReviewID int64
	UserID   int64
}

// ReviewUsecase defines the interface for review operations. Every write
// fires the database triggers that keep the product rating columns current.
type ReviewUsecase interface {
	// CreateReview adds a review; one per user per product.
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)

	// UpdateReview edits the caller's own review.
	UpdateReview(ctx context.Context, input *UpdateReviewInput) error

	// DeleteReview removes the caller's own review.
	DeleteReview(ctx context.Context, input *DeleteReviewInput) error

	// ProductReviews lists a product's reviews, newest first.
	ProductReviews(ctx context.Context, productID int64) ([]*entity.Review, error)
}
