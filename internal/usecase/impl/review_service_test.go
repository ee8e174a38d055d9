package impl

import (
	"context"
	"testing"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	mockRepo "shopfront/internal/mocks/repository"
	"shopfront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		Logger:     testLogger(),
	})

	return reviewServiceFixtures{
		service:     svc,
		txManager:   txManager,
		factory:     factory,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (f reviewServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{ProductID: 42, UserID: 7, Rating: 4, Comment: "Sturdy."}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(42)).
		Return(&entity.Product{ID: 42}, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			review.ID = 99
			return nil
		})

	review, err := fx.service.CreateReview(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(99), review.ID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_CreateReview_MissingProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{ProductID: 404, UserID: 7, Rating: 4}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	review, err := fx.service.CreateReview(ctx, input)
	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{ProductID: 42, UserID: 7, Rating: 5}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(42)).
		Return(&entity.Product{ID: 42}, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrDuplicateReview)

	_, err := fx.service.CreateReview(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewExists)
}

func TestReviewService_CreateReview_BadRating(t *testing.T) {
	fx := createTestReviewService(t)

	input := &usecase.CreateReviewInput{ProductID: 42, UserID: 7, Rating: 6}

	_, err := fx.service.CreateReview(context.Background(), input)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "rating")
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.UpdateReviewInput{ReviewID: 99, UserID: 7, Rating: 2, Comment: "Fell apart."}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(&entity.Review{ID: 99, UserID: 7, Rating: 4, Comment: "Sturdy."}, nil)
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		RunAndReturn(func(_ context.Context, review *entity.Review) error {
			assert.Equal(t, 2, review.Rating)
			assert.Equal(t, "Fell apart.", review.Comment)
			return nil
		})

	require.NoError(t, fx.service.UpdateReview(ctx, input))
}

func TestReviewService_UpdateReview_Forbidden(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.UpdateReviewInput{ReviewID: 99, UserID: 7, Rating: 2}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(&entity.Review{ID: 99, UserID: 8}, nil)

	err := fx.service.UpdateReview(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrReviewNotFound)

	err := fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{ReviewID: 404, UserID: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)

	fx.reviewRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(&entity.Review{ID: 99, UserID: 7}, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, int64(99)).Return(nil)

	require.NoError(t, fx.service.DeleteReview(ctx, &usecase.DeleteReviewInput{ReviewID: 99, UserID: 7}))
}

func TestReviewService_ProductReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviews := []*entity.Review{{ID: 2, ProductID: 42}, {ID: 1, ProductID: 42}}

	fx.reviewRepo.EXPECT().FindByProductID(ctx, int64(42)).Return(reviews, nil)

	got, err := fx.service.ProductReviews(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}
