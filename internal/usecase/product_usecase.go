package usecase

import (
	"context"

	"shopfront/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines a seller's new listing. CategoryPaths are
// named root-to-leaf paths; Axes and Stocks describe the variation matrix,
// both empty for a single-stock product.
type CreateProductInput struct {
	SellerID        int64
	Name            string
	Description     string
	Price           float64
	DiscountPercent int
	CategoryPaths   [][]string

	Axes         []entity.VariationAxis
	Stocks       []entity.VariationCombination
	DefaultStock int
}

// UpdateProductInput defines a full replacement of a listing. The variant
// matrix and category relations are rebuilt from this input.
type UpdateProductInput struct {
	ProductID       int64
	SellerID        int64
	Name            string
	Description     string
	Price           float64
	DiscountPercent int
	CategoryPaths   [][]string

	Axes         []entity.VariationAxis
	Stocks       []entity.VariationCombination
	DefaultStock int
}

// DeleteProductInput identifies a listing and the seller requesting removal.
type DeleteProductInput struct {
	ProductID int64
	SellerID  int64
}

// --- Output DTOs ---

// ProductMutationOutput returns the product after a create or update.
type ProductMutationOutput struct {
	Product *entity.Product
}

// ProductUsecase defines the write-side interface for sellers managing
// their listings.
type ProductUsecase interface {
	// CreateProduct validates the input and writes the product, its variant
	// rows, and its category relations in one transaction.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*ProductMutationOutput, error)

	// UpdateProduct validates the input, checks ownership, and replaces the
	// product's scalars, variants, and category relations in one transaction.
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*ProductMutationOutput, error)

	// DeleteProduct checks ownership and removes the product with all of its
	// child rows in one transaction.
	DeleteProduct(ctx context.Context, input *DeleteProductInput) error

	// MyProducts lists a seller's own products, newest first.
	MyProducts(ctx context.Context, sellerID int64) ([]*entity.ProductDetail, error)
}
