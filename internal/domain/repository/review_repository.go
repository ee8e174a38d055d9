package repository

import (
	"context"
	"errors"

	"shopfront/internal/domain/entity"
)

var (
	// ErrReviewNotFound is returned when no review row matches the lookup.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when a user already reviewed a product.
	ErrDuplicateReview = errors.New("review already exists for this user and product")
)

// ReviewRepository persists product reviews. Inserts, updates, and deletes
// fire the rating triggers that keep products.rating_avg and rating_count
// consistent.
type ReviewRepository interface {
	// Create inserts a review and fills in the generated id.
	Create(ctx context.Context, review *entity.Review) error

	// Update replaces the rating and comment of an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes one review.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves one review row.
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// FindByProductID retrieves a product's reviews, newest first, with
	// reviewer name and nickname joined in.
	FindByProductID(ctx context.Context, productID int64) ([]*entity.Review, error)

	// DeleteByProductID removes every review of a product (cascade step of
	// product deletion).
	DeleteByProductID(ctx context.Context, productID int64) error
}
