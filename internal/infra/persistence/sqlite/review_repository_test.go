package sqlite

import (
	"context"
	"testing"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_TriggersMaintainRating(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	alice := seedUser(t, db, "alice@example.com", "Alice")
	bob := seedUser(t, db, "bob@example.com", "Bob")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	aliceReview := &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 5, Comment: "Great."}
	require.NoError(t, reviewRepo.Create(ctx, aliceReview))

	row, err := productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.RatingCount)
	assert.InDelta(t, 5.0, row.RatingAvg, 0.001)

	bobReview := &entity.Review{ProductID: product.ID, UserID: bob.ID, Rating: 2}
	require.NoError(t, reviewRepo.Create(ctx, bobReview))

	row, err = productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, row.RatingCount)
	assert.InDelta(t, 3.5, row.RatingAvg, 0.001)

	// An edit recomputes the average without changing the count.
	bobReview.Rating = 4
	require.NoError(t, reviewRepo.Update(ctx, bobReview))

	row, err = productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, row.RatingCount)
	assert.InDelta(t, 4.5, row.RatingAvg, 0.001)

	require.NoError(t, reviewRepo.Delete(ctx, bobReview.ID))

	row, err = productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.RatingCount)
	assert.InDelta(t, 5.0, row.RatingAvg, 0.001)
}

func TestReviewRepository_RatingAvgRoundedToOneDecimal(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	alice := seedUser(t, db, "alice@example.com", "Alice")
	bob := seedUser(t, db, "bob@example.com", "Bob")
	carol := seedUser(t, db, "carol@example.com", "Carol")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	aliceReview := &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 5}
	require.NoError(t, reviewRepo.Create(ctx, aliceReview))
	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: bob.ID, Rating: 4}))
	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: carol.ID, Rating: 4}))

	// 13/3 = 4.333..., stored as 4.3 exactly.
	row, err := productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, row.RatingAvg, 0.0001)

	// 11/3 = 3.666... rounds up after the edit.
	aliceReview.Rating = 3
	require.NoError(t, reviewRepo.Update(ctx, aliceReview))

	row, err = productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.7, row.RatingAvg, 0.0001)

	require.NoError(t, reviewRepo.Delete(ctx, aliceReview.ID))

	row, err = productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, row.RatingAvg, 0.0001)
}

func TestReviewRepository_DeletingLastReviewResetsRating(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	alice := seedUser(t, db, "alice@example.com", "Alice")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	review := &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 4}
	require.NoError(t, reviewRepo.Create(ctx, review))
	require.NoError(t, reviewRepo.Delete(ctx, review.ID))

	row, err := productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, row.RatingCount)
	assert.Zero(t, row.RatingAvg)
}

func TestReviewRepository_DuplicateReview(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	alice := seedUser(t, db, "alice@example.com", "Alice")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 5}))

	err := reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 1})
	assert.ErrorIs(t, err, repository.ErrDuplicateReview)
}

func TestReviewRepository_FindByProductID(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	alice := seedUser(t, db, "alice@example.com", "Alice")
	bob := seedUser(t, db, "bob@example.com", "Bob")
	require.NoError(t, db.Exec(`UPDATE users SET nickname = 'bobby' WHERE id = ?`, bob.ID).Error)
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 5, Comment: "Great."}))
	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: bob.ID, Rating: 3}))

	reviews, err := reviewRepo.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	// Newest first; the reviewer display fields come from the join.
	assert.Equal(t, bob.ID, reviews[0].UserID)
	assert.Equal(t, "bobby", reviews[0].ReviewerNickname)
	assert.Equal(t, "bobby", reviews[0].DisplayName())
	assert.Equal(t, "Alice", reviews[1].ReviewerName)
	assert.Equal(t, "Alice", reviews[1].DisplayName())
}

func TestReviewRepository_DeleteByProductID(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	alice := seedUser(t, db, "alice@example.com", "Alice")
	bob := seedUser(t, db, "bob@example.com", "Bob")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: alice.ID, Rating: 5}))
	require.NoError(t, reviewRepo.Create(ctx, &entity.Review{ProductID: product.ID, UserID: bob.ID, Rating: 3}))

	require.NoError(t, reviewRepo.DeleteByProductID(ctx, product.ID))

	reviews, err := reviewRepo.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// The delete trigger fires per row, so the aggregate ends at zero.
	row, err := productRepo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Zero(t, row.RatingCount)
	assert.Zero(t, row.RatingAvg)
}

func TestReviewRepository_UpdateMissing(t *testing.T) {
	db := newTestDB(t)
	reviewRepo := NewReviewRepository(db)

	err := reviewRepo.Update(context.Background(), &entity.Review{ID: 999, Rating: 3})
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}
