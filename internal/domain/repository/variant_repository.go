package repository

import (
	"context"

	"shopfront/internal/domain/entity"
)

// VariantRepository persists per-(size, color) stock rows.
type VariantRepository interface {
	// ReplaceAll removes every variant row of the product and inserts the
	// given rows in their place. A duplicate SKU surfaces as a constraint
	// violation and aborts the enclosing transaction.
	ReplaceAll(ctx context.Context, productID int64, variants []*entity.ProductVariant) error

	// DeleteByProductID removes every variant row of the product.
	DeleteByProductID(ctx context.Context, productID int64) error

	// FindByProductID retrieves the variant rows of a product.
	FindByProductID(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)
}
