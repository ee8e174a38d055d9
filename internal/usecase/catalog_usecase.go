package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// CatalogUsecase defines the read-side interface of the storefront: category
// navigation, product listings, search, and the product page.
type CatalogUsecase interface {
	// MainCategories returns the root categories.
	MainCategories(ctx context.Context) ([]*entity.Category, error)

	// ChildCategories returns the immediate children of a category.
	ChildCategories(ctx context.Context, categoryID int64) ([]*entity.Category, error)

	// CategoryPath returns the root-to-leaf breadcrumb of a category.
	CategoryPath(ctx context.Context, categoryID int64) ([]entity.CategoryPathEntry, error)

	// ListProducts returns every product, newest first.
	ListProducts(ctx context.Context) ([]*entity.ProductDetail, error)

	// ProductsByCategory returns products in the category or any descendant.
	ProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.ProductDetail, error)

	// ProductsByCategoryPath resolves a named path first, then lists.
	ProductsByCategoryPath(ctx context.Context, path []string) ([]*entity.ProductDetail, error)

	// SearchProducts matches a keyword against names, descriptions, and
	// category names.
	SearchProducts(ctx context.Context, keyword string) ([]*entity.ProductDetail, error)

	// GetProduct returns the full product page read model.
	GetProduct(ctx context.Context, productID int64) (*entity.ProductDetail, error)

	// ProductShareQR renders the product's share link as a PNG QR code.
	ProductShareQR(ctx context.Context, productID int64) ([]byte, error)
}
