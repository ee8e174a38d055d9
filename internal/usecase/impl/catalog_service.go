package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shopfront/config"
	deliverycontext "shopfront/internal/delivery/context"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/domain/service"
	"shopfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. Pure read side;
// no operation here opens a transaction.
type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	qrService    service.QRCodeService
	baseURL      string
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		qrService:    params.QRService,
		baseURL:      strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MainCategories returns the root categories.
func (srv *catalogService) MainCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.MainCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list main categories")
	}

	return categories, nil
}

// ChildCategories returns the immediate children of a category.
func (srv *catalogService) ChildCategories(ctx context.Context, categoryID int64) ([]*entity.Category, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, srv.mapCategoryError(err)
	}

	categories, err := srv.categoryRepo.DirectChildren(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list child categories")
	}

	return categories, nil
}

// CategoryPath returns the root-to-leaf breadcrumb of a category.
func (srv *catalogService) CategoryPath(ctx context.Context, categoryID int64) ([]entity.CategoryPathEntry, error) {
	path, err := srv.categoryRepo.PathToRoot(ctx, categoryID)
	if err != nil {
		return nil, srv.mapCategoryError(err)
	}

	return path, nil
}

// ListProducts returns every product, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.ProductDetail, error) {
	products, err := srv.productRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ProductsByCategory returns products in the category or any descendant.
func (srv *catalogService) ProductsByCategory(ctx context.Context, categoryID int64) ([]*entity.ProductDetail, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, srv.mapCategoryError(err)
	}

	products, err := srv.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// ProductsByCategoryPath resolves a named path first, then lists.
func (srv *catalogService) ProductsByCategoryPath(ctx context.Context, path []string) ([]*entity.ProductDetail, error) {
	categoryID, err := srv.categoryRepo.ResolvePath(ctx, path)
	if err != nil {
		srv.log(ctx).Warn("Category path did not resolve", slog.Any("path", path))

		return nil, srv.mapCategoryError(err)
	}

	products, err := srv.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category path")
	}

	return products, nil
}

// SearchProducts matches a keyword against names, descriptions, and
// category names. Blank keywords return nothing rather than everything.
func (srv *catalogService) SearchProducts(ctx context.Context, keyword string) ([]*entity.ProductDetail, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, nil
	}

	products, err := srv.productRepo.Search(ctx, keyword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// GetProduct returns the full product page read model.
func (srv *catalogService) GetProduct(ctx context.Context, productID int64) (*entity.ProductDetail, error) {
	product, err := srv.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("no such product")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ProductShareQR renders the product's share link as a PNG QR code.
func (srv *catalogService) ProductShareQR(ctx context.Context, productID int64) ([]byte, error) {
	if _, err := srv.productRepo.FindRow(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("no such product")
		}

		return nil, errors.Wrap(err, "failed to load product for qr code")
	}

	shareURL := fmt.Sprintf("%s/products/%d", srv.baseURL, productID)

	png, err := srv.qrService.GeneratePNG(shareURL)
	if err != nil {
		srv.log(ctx).Error("Failed to render qr code", slog.Int64("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render qr code")
	}

	return png, nil
}

func (srv *catalogService) mapCategoryError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("category not found")
	}

	return errors.Wrap(err, "category lookup failed")
}
