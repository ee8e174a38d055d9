package sqlite

import (
	"context"
	"testing"

	"shopfront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantRepository_ReplaceAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	first := []*entity.ProductVariant{
		{Color: "White", Size: "M", Stock: 5, SKU: entity.VariantSKU(product.ID, "White", "M")},
		{Color: "White", Size: "L", Stock: 2, SKU: entity.VariantSKU(product.ID, "White", "L")},
	}
	require.NoError(t, repo.ReplaceAll(ctx, product.ID, first))
	for _, variant := range first {
		assert.NotZero(t, variant.ID)
		assert.Equal(t, product.ID, variant.ProductID)
	}

	// A second replace swaps the whole set; the old rows must be gone.
	second := []*entity.ProductVariant{
		{Color: "Black", Size: "M", Stock: 9, SKU: entity.VariantSKU(product.ID, "Black", "M")},
	}
	require.NoError(t, repo.ReplaceAll(ctx, product.ID, second))

	got, err := repo.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Black", got[0].Color)
	assert.Equal(t, 9, got[0].Stock)
}

func TestVariantRepository_ReplaceAll_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	product := seedProduct(t, db, seller.ID, "Classic Cotton Tee")

	require.NoError(t, repo.ReplaceAll(ctx, product.ID, []*entity.ProductVariant{
		{Stock: 3, SKU: entity.DefaultSKU(product.ID)},
	}))

	// Replacing with an empty set clears the table for the product.
	require.NoError(t, repo.ReplaceAll(ctx, product.ID, nil))

	got, err := repo.FindByProductID(ctx, product.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVariantRepository_ReplaceAll_ScopedToProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()

	seller := seedUser(t, db, "seller@example.com", "Seller")
	tee := seedProduct(t, db, seller.ID, "Classic Cotton Tee")
	mug := seedProduct(t, db, seller.ID, "Ceramic Coffee Mug")

	require.NoError(t, repo.ReplaceAll(ctx, tee.ID, []*entity.ProductVariant{
		{Stock: 3, SKU: entity.DefaultSKU(tee.ID)},
	}))
	require.NoError(t, repo.ReplaceAll(ctx, mug.ID, []*entity.ProductVariant{
		{Stock: 7, SKU: entity.DefaultSKU(mug.ID)},
	}))

	got, err := repo.FindByProductID(ctx, tee.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Stock)
}
