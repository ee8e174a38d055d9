package handler

import (
	"log/slog"
	"net/http"

	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/response"
	"shopfront/internal/domain/entity"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the seller listing handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type variationAxisRequest struct {
	Name    string   `json:"name" validate:"required"`
	Options []string `json:"options" validate:"required,min=1"`
}

type sizeStockRequest struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type stockCombinationRequest struct {
	Color string             `json:"color"`
	Sizes []sizeStockRequest `json:"sizes"`
}

// productRequest is the body of both create and update. An omitted
// discount_percent means full price.
type productRequest struct {
	Name            string                    `json:"name" validate:"required"`
	Description     string                    `json:"description" validate:"required"`
	Price           float64                   `json:"price" validate:"required"`
	DiscountPercent *int                      `json:"discount_percent"`
	CategoryPaths   [][]string                `json:"category_paths" validate:"required,min=1"`
	Variations      []variationAxisRequest    `json:"variations"`
	Stocks          []stockCombinationRequest `json:"stocks"`
	DefaultStock    int                       `json:"default_stock"`
}

func (r *productRequest) discountPercent() int {
	if r.DiscountPercent == nil {
		return entity.NoDiscount
	}

	return *r.DiscountPercent
}

func (r *productRequest) axes() []entity.VariationAxis {
	axes := make([]entity.VariationAxis, 0, len(r.Variations))
	for _, variation := range r.Variations {
		axis := entity.VariationAxis{Name: variation.Name}
		for _, option := range variation.Options {
			axis.AddOption(option)
		}
		axes = append(axes, axis)
	}

	return axes
}

func (r *productRequest) stocks() []entity.VariationCombination {
	combos := make([]entity.VariationCombination, 0, len(r.Stocks))
	for _, combo := range r.Stocks {
		cells := make([]entity.SizeStock, 0, len(combo.Sizes))
		for _, cell := range combo.Sizes {
			cells = append(cells, entity.SizeStock{Size: cell.Size, Stock: cell.Stock})
		}
		combos = append(combos, entity.VariationCombination{Color: combo.Color, Sizes: cells})
	}

	return combos
}

// CreateProduct creates a listing owned by the authenticated seller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		SellerID:        middleware.AuthenticatedUserID(c),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.discountPercent(),
		CategoryPaths:   req.CategoryPaths,
		Axes:            req.axes(),
		Stocks:          req.stocks(),
		DefaultStock:    req.DefaultStock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(&entity.ProductDetail{Product: *output.Product}), "Product created successfully")
}

// UpdateProduct replaces a listing's scalars, variant matrix, and category
// relations.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		ProductID:       productID,
		SellerID:        middleware.AuthenticatedUserID(c),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DiscountPercent: req.discountPercent(),
		CategoryPaths:   req.CategoryPaths,
		Axes:            req.axes(),
		Stocks:          req.stocks(),
		DefaultStock:    req.DefaultStock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(&entity.ProductDetail{Product: *output.Product}), "Product updated successfully")
}

// DeleteProduct removes a listing with its variants, reviews, and category
// relations.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), &usecase.DeleteProductInput{
		ProductID: productID,
		SellerID:  middleware.AuthenticatedUserID(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// MyProducts lists the authenticated seller's own listings.
func (h *ProductHandler) MyProducts(c echo.Context) error {
	products, err := h.uc.MyProducts(c.Request().Context(), middleware.AuthenticatedUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}
