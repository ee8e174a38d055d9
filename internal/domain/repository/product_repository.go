package repository

import (
	"context"
	"errors"

	"shopfront/internal/domain/entity"
)

// ErrProductNotFound is returned when no product row matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists product rows and serves the denormalized read
// model (seller, variants, reviews, category path joined in).
type ProductRepository interface {
	// Create inserts the product row and fills in the generated id.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the scalar fields (name, description, price,
	// discount_percent, has_variants) of an existing row.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product row itself. Child rows (variants,
	// category relations, reviews) are removed by their own repositories
	// inside the same transaction, before this call.
	Delete(ctx context.Context, id int64) error

	// FindRow retrieves the bare product row, used for ownership checks
	// before updates and deletes.
	FindRow(ctx context.Context, id int64) (*entity.Product, error)

	// GetByID retrieves the full read model for one product.
	GetByID(ctx context.Context, id int64) (*entity.ProductDetail, error)

	// GetAll retrieves the read model for every product, newest first.
	GetAll(ctx context.Context) ([]*entity.ProductDetail, error)

	// GetByCategory retrieves products attached to the category or any of
	// its descendants.
	GetByCategory(ctx context.Context, categoryID int64) ([]*entity.ProductDetail, error)

	// GetBySellerID retrieves a seller's own products.
	GetBySellerID(ctx context.Context, sellerID int64) ([]*entity.ProductDetail, error)

	// Search matches a keyword as a substring of name, description, or an
	// attached category name; deduplicated, capped at 10, newest first.
	Search(ctx context.Context, keyword string) ([]*entity.ProductDetail, error)

	// AttachCategory inserts one product-category relation row.
	AttachCategory(ctx context.Context, productID, categoryID int64) error

	// DetachCategories removes every category relation of a product.
	DetachCategories(ctx context.Context, productID int64) error
}
