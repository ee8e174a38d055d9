package sqlite

import (
	"context"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
// Every write here fires the rating triggers on the products table.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review and fills in the generated id.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update replaces the rating and comment of an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":  review.Rating,
			"comment": review.Comment,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes one review.
func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// FindByID retrieves one review row.
func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return &entity.Review{
		ID:        reviewM.ID,
		ProductID: reviewM.ProductID,
		UserID:    reviewM.UserID,
		Rating:    reviewM.Rating,
		Comment:   reviewM.Comment,
		CreatedAt: reviewM.CreatedAt,
		UpdatedAt: reviewM.UpdatedAt,
	}, nil
}

// FindByProductID retrieves a product's reviews, newest first, with the
// reviewer's display fields joined in.
func (repo *reviewRepository) FindByProductID(ctx context.Context, productID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := repo.db.WithContext(ctx).Raw(`
		SELECT r.id, r.product_id, r.user_id, r.rating, r.comment,
		       r.created_at, r.updated_at,
		       u.name AS reviewer_name, u.nickname AS reviewer_nickname
		FROM product_reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = ?
		ORDER BY r.created_at DESC, r.id DESC`, productID).
		Scan(&reviews).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product reviews")
	}

	return reviews, nil
}

// DeleteByProductID removes every review of a product.
func (repo *reviewRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ReviewModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product reviews")
	}

	return nil
}
