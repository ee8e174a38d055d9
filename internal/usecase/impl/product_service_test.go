package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	mockRepo "shopfront/internal/mocks/repository"
	"shopfront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	variantRepo  *mockRepo.MockVariantRepository
	categoryRepo *mockRepo.MockCategoryRepository
	reviewRepo   *mockRepo.MockReviewRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)

	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})

	return productServiceFixtures{
		service:      service,
		txManager:    txManager,
		factory:      factory,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

// expectTransaction wires the transaction manager to run the closure against
// the fixture's repository factory.
func (f productServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func validCreateInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		SellerID:        1,
		Name:            "Classic Cotton Tee",
		Description:     "A plain tee soft enough to sleep in, sturdy enough to work in.",
		Price:           399,
		DiscountPercent: 85,
		CategoryPaths:   [][]string{{"Clothing", "Men"}},
		Axes: []entity.VariationAxis{
			{Name: entity.AxisColor, Options: []string{"Red", "Blue"}},
			{Name: entity.AxisSize, Options: []string{"M", "L"}},
		},
		Stocks: []entity.VariationCombination{
			{Color: "Red", Sizes: []entity.SizeStock{{Size: "M", Stock: 5}, {Size: "L", Stock: 0}}},
		},
		DefaultStock: 3,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().CategoryRepo().Return(fx.categoryRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().VariantRepo().Return(fx.variantRepo)

	fx.categoryRepo.EXPECT().
		ResolvePath(ctx, []string{"Clothing", "Men"}).
		Return(int64(7), nil)

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = 42
			return nil
		})

	var written []*entity.ProductVariant
	fx.variantRepo.EXPECT().
		ReplaceAll(ctx, int64(42), mock.AnythingOfType("[]*entity.ProductVariant")).
		RunAndReturn(func(_ context.Context, _ int64, rows []*entity.ProductVariant) error {
			written = rows
			return nil
		})

	fx.productRepo.EXPECT().
		AttachCategory(ctx, int64(42), int64(7)).
		Return(nil)

	output, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.Product.ID)
	assert.True(t, output.Product.HasVariants)

	// Red/L has zero stock and must not produce a row; the other three
	// cells do, with untouched cells seeded from the default.
	require.Len(t, written, 3)
	skus := make(map[string]int, len(written))
	for _, row := range written {
		skus[row.SKU] = row.Stock
	}
	assert.Equal(t, 5, skus["42-Red-M"])
	assert.Equal(t, 3, skus["42-Blue-M"])
	assert.Equal(t, 3, skus["42-Blue-L"])
}

func TestProductService_CreateProduct_CategoryPathMiss(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := validCreateInput()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().CategoryRepo().Return(fx.categoryRepo)

	// The path resolves before any insert, so a miss writes nothing:
	// no Create, ReplaceAll, or AttachCategory expectations are set.
	fx.categoryRepo.EXPECT().
		ResolvePath(ctx, []string{"Clothing", "Men"}).
		Return(int64(0), repository.ErrCategoryNotFound)

	output, err := fx.service.CreateProduct(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_CreateProduct_ValidationFails(t *testing.T) {
	fx := createTestProductService(t)

	input := validCreateInput()
	input.Name = "Tee"
	input.Price = 0
	input.CategoryPaths = nil

	output, err := fx.service.CreateProduct(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, output)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := validationErr.Fields()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "categories")
}

func TestProductService_CreateProduct_BadAxes(t *testing.T) {
	fx := createTestProductService(t)

	input := validCreateInput()
	input.Axes = []entity.VariationAxis{{Name: "material", Options: []string{"wool"}}}

	_, err := fx.service.CreateProduct(context.Background(), input)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "variations")
}

func TestProductService_CreateProduct_NoAxesUsesDefaultRow(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.Axes = nil
	input.Stocks = nil
	input.DefaultStock = 10

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().CategoryRepo().Return(fx.categoryRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().VariantRepo().Return(fx.variantRepo)

	fx.categoryRepo.EXPECT().ResolvePath(ctx, []string{"Clothing", "Men"}).Return(int64(7), nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = 9
			return nil
		})

	fx.variantRepo.EXPECT().
		ReplaceAll(ctx, int64(9), mock.AnythingOfType("[]*entity.ProductVariant")).
		RunAndReturn(func(_ context.Context, _ int64, rows []*entity.ProductVariant) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "9-default", rows[0].SKU)
			assert.Equal(t, 10, rows[0].Stock)
			return nil
		})

	fx.productRepo.EXPECT().AttachCategory(ctx, int64(9), int64(7)).Return(nil)

	output, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.False(t, output.Product.HasVariants)
}

func TestProductService_CreateProduct_SoldOutKeepsDefaultRow(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := validCreateInput()
	input.Axes = nil
	input.Stocks = nil
	input.DefaultStock = 0

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().CategoryRepo().Return(fx.categoryRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().VariantRepo().Return(fx.variantRepo)

	fx.categoryRepo.EXPECT().ResolvePath(ctx, []string{"Clothing", "Men"}).Return(int64(7), nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = 11
			return nil
		})

	// The default row is written even at zero stock, so a sold-out
	// listing still has its one stock row.
	fx.variantRepo.EXPECT().
		ReplaceAll(ctx, int64(11), mock.AnythingOfType("[]*entity.ProductVariant")).
		RunAndReturn(func(_ context.Context, _ int64, rows []*entity.ProductVariant) error {
			require.Len(t, rows, 1)
			assert.Equal(t, "11-default", rows[0].SKU)
			assert.Zero(t, rows[0].Stock)
			return nil
		})

	fx.productRepo.EXPECT().AttachCategory(ctx, int64(11), int64(7)).Return(nil)

	_, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
}

func TestProductService_UpdateProduct_Forbidden(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.UpdateProductInput{
		ProductID:       42,
		SellerID:        1,
		Name:            "Classic Cotton Tee",
		Description:     "A plain tee soft enough to sleep in, sturdy enough to work in.",
		Price:           399,
		DiscountPercent: 85,
		CategoryPaths:   [][]string{{"Clothing"}},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(42)).
		Return(&entity.Product{ID: 42, SellerID: 99}, nil)

	output, err := fx.service.UpdateProduct(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	input := &usecase.UpdateProductInput{
		ProductID:       404,
		SellerID:        1,
		Name:            "Classic Cotton Tee",
		Description:     "A plain tee soft enough to sleep in, sturdy enough to work in.",
		Price:           399,
		DiscountPercent: 100,
		CategoryPaths:   [][]string{{"Clothing"}},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().ReviewRepo().Return(fx.reviewRepo)
	fx.factory.EXPECT().VariantRepo().Return(fx.variantRepo)

	fx.productRepo.EXPECT().
		FindRow(ctx, int64(42)).
		Return(&entity.Product{ID: 42, SellerID: 1}, nil)
	fx.reviewRepo.EXPECT().DeleteByProductID(ctx, int64(42)).Return(nil)
	fx.variantRepo.EXPECT().DeleteByProductID(ctx, int64(42)).Return(nil)
	fx.productRepo.EXPECT().DetachCategories(ctx, int64(42)).Return(nil)
	fx.productRepo.EXPECT().Delete(ctx, int64(42)).Return(nil)

	err := fx.service.DeleteProduct(ctx, &usecase.DeleteProductInput{ProductID: 42, SellerID: 1})
	require.NoError(t, err)
}

func TestProductService_MyProducts(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	details := []*entity.ProductDetail{
		{Product: entity.Product{ID: 2, SellerID: 1}},
		{Product: entity.Product{ID: 1, SellerID: 1}},
	}

	fx.productRepo.EXPECT().GetBySellerID(ctx, int64(1)).Return(details, nil)

	products, err := fx.service.MyProducts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, details, products)
}
