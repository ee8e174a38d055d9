package handler

import (
	"log/slog"
	"net/http"

	"shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/response"
	"shopfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for the review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

// CreateReview adds the caller's review of a product; one per user per
// product. The database triggers roll the new rating into the product row.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		ProductID: productID,
		UserID:    middleware.AuthenticatedUserID(c),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewView(review), "Review created successfully")
}

// UpdateReview edits the caller's own review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review id")
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateReview(c.Request().Context(), &usecase.UpdateReviewInput{
		ReviewID: reviewID,
		UserID:   middleware.AuthenticatedUserID(c),
		Rating:   req.Rating,
		Comment:  req.Comment,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review updated successfully")
}

// DeleteReview removes the caller's own review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review id")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), &usecase.DeleteReviewInput{
		ReviewID: reviewID,
		UserID:   middleware.AuthenticatedUserID(c),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// ProductReviews lists a product's reviews, newest first.
func (h *ReviewHandler) ProductReviews(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	reviews, err := h.uc.ProductReviews(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewViews(reviews), "Reviews retrieved successfully")
}
