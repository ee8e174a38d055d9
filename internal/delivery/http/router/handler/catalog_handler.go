package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"shopfront/internal/delivery/http/response"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// MainCategories lists the root categories.
func (h *CatalogHandler) MainCategories(c echo.Context) error {
	categories, err := h.uc.MainCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "Categories retrieved successfully")
}

// ChildCategories lists the immediate children of a category.
func (h *CatalogHandler) ChildCategories(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	categories, err := h.uc.ChildCategories(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "Categories retrieved successfully")
}

// CategoryPath returns the root-to-leaf breadcrumb of a category.
func (h *CatalogHandler) CategoryPath(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	path, err := h.uc.CategoryPath(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryPathViews(path), "Category path retrieved successfully")
}

// ListProducts lists products. A category filter may come as a numeric
// category id or as a named root-to-leaf path like "Clothing/Men/Shirts";
// either filter includes the whole subtree under the category.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	if rawID := c.QueryParam("category_id"); rawID != "" {
		categoryID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
		}

		products, err := h.uc.ProductsByCategory(ctx, categoryID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
	}

	if rawPath := c.QueryParam("category_path"); rawPath != "" {
		products, err := h.uc.ProductsByCategoryPath(ctx, splitCategoryPath(rawPath))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
	}

	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

// SearchProducts matches a keyword against product names, descriptions,
// and category names.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	products, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

// GetProduct returns the full product page.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}

// ProductShareQR renders the product's share link as a PNG QR code.
func (h *CatalogHandler) ProductShareQR(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	png, err := h.uc.ProductShareQR(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// splitCategoryPath turns "Clothing/Men/Shirts" into its trimmed steps.
func splitCategoryPath(raw string) []string {
	parts := strings.Split(raw, "/")
	steps := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			steps = append(steps, part)
		}
	}

	return steps
}
