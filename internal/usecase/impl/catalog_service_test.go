package impl

import (
	"context"
	"testing"

	"shopfront/config"
	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	mockRepo "shopfront/internal/mocks/repository"
	mockService "shopfront/internal/mocks/service"
	"shopfront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	qrService    *mockService.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://localhost:8080/"

	svc := NewCatalogService(CatalogServiceParams{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		QRService:    qrService,
		Config:       cfg,
		Logger:       testLogger(),
	})

	return catalogServiceFixtures{
		service:      svc,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		qrService:    qrService,
	}
}

func TestCatalogService_MainCategories(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{{ID: 1, Name: "Clothing"}, {ID: 2, Name: "Shoes"}}

	fx.categoryRepo.EXPECT().MainCategories(ctx).Return(categories, nil)

	got, err := fx.service.MainCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestCatalogService_ChildCategories_UnknownParent(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.ChildCategories(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_CategoryPath(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	path := []entity.CategoryPathEntry{
		{ID: 1, Name: "Clothing"},
		{ID: 4, Name: "Men"},
	}

	fx.categoryRepo.EXPECT().PathToRoot(ctx, int64(4)).Return(path, nil)

	got, err := fx.service.CategoryPath(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestCatalogService_ProductsByCategoryPath(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.ProductDetail{{Product: entity.Product{ID: 42}}}

	fx.categoryRepo.EXPECT().
		ResolvePath(ctx, []string{"Clothing", "Men"}).
		Return(int64(4), nil)
	fx.productRepo.EXPECT().GetByCategory(ctx, int64(4)).Return(products, nil)

	got, err := fx.service.ProductsByCategoryPath(ctx, []string{"Clothing", "Men"})
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_ProductsByCategoryPath_Miss(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		ResolvePath(ctx, []string{"No", "Such"}).
		Return(int64(0), repository.ErrCategoryNotFound)

	_, err := fx.service.ProductsByCategoryPath(ctx, []string{"No", "Such"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_SearchProducts_BlankKeyword(t *testing.T) {
	fx := createTestCatalogService(t)

	// A blank keyword returns nothing without touching the repository.
	got, err := fx.service.SearchProducts(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogService_SearchProducts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.ProductDetail{{Product: entity.Product{ID: 42, Name: "Classic Cotton Tee"}}}

	fx.productRepo.EXPECT().Search(ctx, "tee").Return(products, nil)

	got, err := fx.service.SearchProducts(ctx, "  tee ")
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		GetByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_ProductShareQR(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(42)).
		Return(&entity.Product{ID: 42}, nil)
	// Trailing slash on the configured base URL must not double up.
	fx.qrService.EXPECT().
		GeneratePNG("http://localhost:8080/products/42").
		Return(png, nil)

	got, err := fx.service.ProductShareQR(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCatalogService_ProductShareQR_MissingProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindRow(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.ProductShareQR(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
