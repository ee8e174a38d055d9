// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct validates the input, then writes the product row, its
// variant rows, and its category relations in a single transaction. Any
// failed step, category resolution included, leaves the database untouched.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductMutationOutput, error) {
	if err := validateProductFields(input.Name, input.Description, input.Price, input.DiscountPercent, input.CategoryPaths, input.Axes); err != nil {
		srv.log(ctx).Warn("Product validation failed", slog.Int64("sellerID", input.SellerID), slog.Any("error", err))

		return nil, err
	}

	product := &entity.Product{
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DiscountPercent: input.DiscountPercent,
		SellerID:        input.SellerID,
		HasVariants:     len(input.Axes) > 0,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Resolve every category path first; a bad path must abort before
		// any row is written.
		categoryIDs, err := resolveCategoryPaths(ctx, repoFactory.CategoryRepo(), input.CategoryPaths)
		if err != nil {
			return err
		}

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product row")
		}

		rows := buildVariantRows(product.ID, input)
		if err := repoFactory.VariantRepo().ReplaceAll(ctx, product.ID, rows); err != nil {
			return errors.Wrap(err, "failed to write variant rows")
		}

		for _, categoryID := range categoryIDs {
			if err := repoFactory.ProductRepo().AttachCategory(ctx, product.ID, categoryID); err != nil {
				return errors.Wrap(err, "failed to attach category")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute product creation transaction", slog.Int64("sellerID", input.SellerID), slog.Any("error", err))

		return nil, mapCategoryErr(err)
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.Int64("sellerID", input.SellerID))

	return &usecase.ProductMutationOutput{Product: product}, nil
}

// UpdateProduct validates the input, checks ownership, and replaces the
// product's scalars, variant matrix, and category relations in one
// transaction. Variants are rebuilt wholesale rather than diffed.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*usecase.ProductMutationOutput, error) {
	if err := validateProductFields(input.Name, input.Description, input.Price, input.DiscountPercent, input.CategoryPaths, input.Axes); err != nil {
		srv.log(ctx).Warn("Product validation failed", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		existing, err := srv.loadOwnedProduct(ctx, productRepo, input.ProductID, input.SellerID)
		if err != nil {
			return err
		}

		categoryIDs, err := resolveCategoryPaths(ctx, repoFactory.CategoryRepo(), input.CategoryPaths)
		if err != nil {
			return err
		}

		existing.Name = input.Name
		existing.Description = input.Description
		existing.Price = input.Price
		existing.DiscountPercent = input.DiscountPercent
		existing.HasVariants = len(input.Axes) > 0

		if err := productRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to update product row")
		}

		rows := buildVariantRowsForUpdate(existing.ID, input)
		if err := repoFactory.VariantRepo().ReplaceAll(ctx, existing.ID, rows); err != nil {
			return errors.Wrap(err, "failed to replace variant rows")
		}

		if err := productRepo.DetachCategories(ctx, existing.ID); err != nil {
			return errors.Wrap(err, "failed to detach categories")
		}
		for _, categoryID := range categoryIDs {
			if err := productRepo.AttachCategory(ctx, existing.ID, categoryID); err != nil {
				return errors.Wrap(err, "failed to attach category")
			}
		}

		updated = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute product update transaction", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, mapCategoryErr(err)
	}

	srv.log(ctx).Info("Product updated", slog.Int64("productID", input.ProductID))

	return &usecase.ProductMutationOutput{Product: updated}, nil
}

// DeleteProduct checks ownership and removes the product with all of its
// child rows in one transaction: reviews, variants, and category relations
// go first, then the product row.
func (srv *productService) DeleteProduct(ctx context.Context, input *usecase.DeleteProductInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := srv.loadOwnedProduct(ctx, productRepo, input.ProductID, input.SellerID); err != nil {
			return err
		}

		if err := repoFactory.ReviewRepo().DeleteByProductID(ctx, input.ProductID); err != nil {
			return errors.Wrap(err, "failed to delete product reviews")
		}
		if err := repoFactory.VariantRepo().DeleteByProductID(ctx, input.ProductID); err != nil {
			return errors.Wrap(err, "failed to delete product variants")
		}
		if err := productRepo.DetachCategories(ctx, input.ProductID); err != nil {
			return errors.Wrap(err, "failed to detach categories")
		}
		if err := productRepo.Delete(ctx, input.ProductID); err != nil {
			return errors.Wrap(err, "failed to delete product row")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute product deletion transaction", slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", input.ProductID))

	return nil
}

// MyProducts lists a seller's own products, newest first.
func (srv *productService) MyProducts(ctx context.Context, sellerID int64) ([]*entity.ProductDetail, error) {
	products, err := srv.productRepo.GetBySellerID(ctx, sellerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list seller products", slog.Int64("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// loadOwnedProduct reads the product row and distinguishes "not yours"
// from "does not exist". The read happens inside the caller's transaction.
func (srv *productService) loadOwnedProduct(ctx context.Context, productRepo repository.ProductRepository, productID, sellerID int64) (*entity.Product, error) {
	existing, err := productRepo.FindRow(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}

		return nil, errors.Wrap(err, "failed to load product for ownership check")
	}

	if existing.SellerID != sellerID {
		srv.log(ctx).Warn("Ownership check failed", slog.Int64("productID", productID), slog.Int64("sellerID", sellerID))

		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another seller")
	}

	return existing, nil
}

// resolveCategoryPaths turns named paths into leaf ids, deduplicated in
// input order.
func resolveCategoryPaths(ctx context.Context, categoryRepo repository.CategoryRepository, paths [][]string) ([]int64, error) {
	seen := make(map[int64]struct{}, len(paths))
	ids := make([]int64, 0, len(paths))
	for _, path := range paths {
		id, err := categoryRepo.ResolvePath(ctx, path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve category path")
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

// buildVariantRows produces the stock rows of a new listing. With axes the
// matrix comes from the submitted cells; without axes a single default row
// holds the whole stock.
func buildVariantRows(productID int64, input *usecase.CreateProductInput) []*entity.ProductVariant {
	return variantRows(productID, input.Axes, input.Stocks, input.DefaultStock)
}

// buildVariantRowsForUpdate mirrors buildVariantRows for edits. Submitted
// stocks double as the "existing" seed, so cells the seller did not touch
// keep their value and new cells start at the default.
func buildVariantRowsForUpdate(productID int64, input *usecase.UpdateProductInput) []*entity.ProductVariant {
	return variantRows(productID, input.Axes, input.Stocks, input.DefaultStock)
}

func variantRows(productID int64, axes []entity.VariationAxis, stocks []entity.VariationCombination, defaultStock int) []*entity.ProductVariant {
	if len(axes) == 0 {
		// A variant-less listing always carries exactly one default row;
		// zero stock means sold out, not row-less.
		stock := defaultStock
		if stock < 0 {
			stock = 0
		}

		return []*entity.ProductVariant{entity.DefaultVariantRow(productID, stock)}
	}

	combos := entity.GenerateCombinations(axes, defaultStock, stocks)

	return entity.VariantRowsFromMatrix(productID, combos)
}

// mapCategoryErr converts the repository sentinel into the client-facing
// error with its deliberately vague message.
func mapCategoryErr(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("category path did not resolve")
	}

	return err
}
