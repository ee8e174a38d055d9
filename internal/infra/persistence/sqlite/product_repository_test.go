package sqlite

import (
	"context"
	"fmt"
	"testing"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")
	require.NotZero(t, product.ID)

	require.NoError(t, repo.AttachCategory(ctx, product.ID, 7)) // Clothing > Men
	require.NoError(t, NewVariantRepository(db).ReplaceAll(ctx, product.ID, []*entity.ProductVariant{
		{Color: "White", Size: "M", Stock: 5, SKU: entity.VariantSKU(product.ID, "White", "M")},
	}))

	detail, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classic Cotton Tee", detail.Name)
	assert.Equal(t, "Seller", detail.SellerName)
	require.Len(t, detail.Variants, 1)
	assert.Equal(t, 5, detail.Variants[0].Stock)
	assert.Equal(t, []entity.CategoryPathEntry{
		{ID: 2, Name: "Clothing"},
		{ID: 7, Name: "Men"},
	}, detail.CategoryPath)
	assert.Empty(t, detail.Reviews)
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewProductRepository(db).GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	product.Name = "Premium Cotton Tee"
	product.Price = 799
	product.DiscountPercent = 90
	require.NoError(t, repo.Update(ctx, product))

	row, err := repo.FindRow(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Cotton Tee", row.Name)
	assert.Equal(t, float64(799), row.Price)
	assert.Equal(t, 90, row.DiscountPercent)

	err = repo.Update(ctx, &entity.Product{ID: 999, Name: "Ghost", Description: "x", Price: 1, DiscountPercent: 100})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_GetByCategory_IncludesDescendants(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")

	inMen := seedProduct(t, db, seller.ID, "Oxford Shirt")
	require.NoError(t, repo.AttachCategory(ctx, inMen.ID, 7)) // Clothing > Men

	inAudio := seedProduct(t, db, seller.ID, "Wireless Earbuds")
	require.NoError(t, repo.AttachCategory(ctx, inAudio.ID, 5)) // Electronics > Audio

	// Listing the Clothing root must surface the product attached to Men.
	details, err := repo.GetByCategory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, inMen.ID, details[0].ID)

	details, err = repo.GetByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, inAudio.ID, details[0].ID)
}

func TestProductRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")

	tee := seedProduct(t, db, seller.ID, "Classic Cotton Tee")
	require.NoError(t, repo.AttachCategory(ctx, tee.ID, 7))

	kettle := seedProduct(t, db, seller.ID, "Electric Kettle")
	require.NoError(t, repo.AttachCategory(ctx, kettle.ID, 9)) // Home > Kitchen

	t.Run("matches name substring", func(t *testing.T) {
		details, err := repo.Search(ctx, "Cotton")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, tee.ID, details[0].ID)
	})

	t.Run("matches attached category name", func(t *testing.T) {
		details, err := repo.Search(ctx, "Kitchen")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, kettle.ID, details[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		details, err := repo.Search(ctx, "submarine")
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestProductRepository_Search_CapsResults(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	for i := 0; i < searchResultLimit+3; i++ {
		seedProduct(t, db, seller.ID, fmt.Sprintf("Cotton Tee %02d", i))
	}

	details, err := repo.Search(ctx, "Cotton")
	require.NoError(t, err)
	assert.Len(t, details, searchResultLimit)
}

func TestProductRepository_AttachCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	require.NoError(t, repo.AttachCategory(ctx, product.ID, 7))
	// Attaching the same category twice is not an error.
	require.NoError(t, repo.AttachCategory(ctx, product.ID, 7))

	err := repo.AttachCategory(ctx, product.ID, 999)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestProductRepository_GetBySellerID(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", "Alice")
	bob := seedUser(t, db, "bob@example.com", "Bob")

	first := seedProduct(t, db, alice.ID, "First Listing")
	second := seedProduct(t, db, alice.ID, "Second Listing")
	seedProduct(t, db, bob.ID, "Bob's Listing")

	details, err := repo.GetBySellerID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, details, 2)
	// Newest first; same-second timestamps fall back to id order.
	assert.Equal(t, second.ID, details[0].ID)
	assert.Equal(t, first.ID, details[1].ID)
}

func TestProductRepository_DeleteCycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	variantRepo := NewVariantRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	require.NoError(t, repo.AttachCategory(ctx, product.ID, 7))
	require.NoError(t, variantRepo.ReplaceAll(ctx, product.ID, []*entity.ProductVariant{
		{Stock: 3, SKU: entity.DefaultSKU(product.ID)},
	}))

	// Child rows first, then the product row, mirroring the write-side order.
	require.NoError(t, variantRepo.DeleteByProductID(ctx, product.ID))
	require.NoError(t, repo.DetachCategories(ctx, product.ID))
	require.NoError(t, repo.Delete(ctx, product.ID))

	_, err := repo.FindRow(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, product.ID), repository.ErrProductNotFound)
}
