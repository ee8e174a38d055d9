package handler

import (
	"time"

	"shopfront/internal/domain/entity"
)

// userView is the public shape of an account. Credential columns never
// leave the server.
type userView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
	Nickname string `json:"nickname,omitempty"`
	Provider string `json:"provider"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	return &userView{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Nickname: user.Nickname,
		Provider: string(user.Provider),
	}
}

// sessionView is returned by signup, login, and the OAuth callback.
type sessionView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *userView `json:"user"`
}

type categoryView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func toCategoryViews(categories []*entity.Category) []*categoryView {
	views := make([]*categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, &categoryView{
			ID:          category.ID,
			Name:        category.Name,
			ParentID:    category.ParentID,
			Description: category.Description,
		})
	}

	return views
}

type categoryPathView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toCategoryPathViews(path []entity.CategoryPathEntry) []categoryPathView {
	views := make([]categoryPathView, 0, len(path))
	for _, step := range path {
		views = append(views, categoryPathView{ID: step.ID, Name: step.Name})
	}

	return views
}

type variantView struct {
	ID    int64  `json:"id"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
	Stock int    `json:"stock"`
	SKU   string `json:"sku"`
}

type reviewView struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	UserID       int64     `json:"user_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toReviewView(review *entity.Review) *reviewView {
	return &reviewView{
		ID:           review.ID,
		ProductID:    review.ProductID,
		UserID:       review.UserID,
		ReviewerName: review.DisplayName(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

func toReviewViews(reviews []*entity.Review) []*reviewView {
	views := make([]*reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return views
}

// productView is the list-item shape of a product.
type productView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DiscountPercent int       `json:"discount_percent"`
	DiscountedPrice int       `json:"discounted_price"`
	SellerID        int64     `json:"seller_id"`
	SellerName      string    `json:"seller_name,omitempty"`
	HasVariants     bool      `json:"has_variants"`
	RatingAvg       float64   `json:"rating_avg"`
	RatingCount     int       `json:"rating_count"`
	SalesCount      int       `json:"sales_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Variants     []*variantView     `json:"variants,omitempty"`
	Reviews      []*reviewView      `json:"reviews,omitempty"`
	CategoryPath []categoryPathView `json:"category_path,omitempty"`
}

func toProductView(detail *entity.ProductDetail) *productView {
	sellerName := detail.SellerNickname
	if sellerName == "" {
		sellerName = detail.SellerName
	}

	view := &productView{
		ID:              detail.ID,
		Name:            detail.Name,
		Description:     detail.Description,
		Price:           detail.Price,
		DiscountPercent: detail.DiscountPercent,
		DiscountedPrice: detail.DiscountedPrice(),
		SellerID:        detail.SellerID,
		SellerName:      sellerName,
		HasVariants:     detail.HasVariants,
		RatingAvg:       detail.RatingAvg,
		RatingCount:     detail.RatingCount,
		SalesCount:      detail.SalesCount,
		CreatedAt:       detail.CreatedAt,
		UpdatedAt:       detail.UpdatedAt,
		CategoryPath:    toCategoryPathViews(detail.CategoryPath),
	}

	for _, variant := range detail.Variants {
		color, size := variant.Color, variant.Size
		if color == entity.AxisPlaceholder {
			color = ""
		}
		if size == entity.AxisPlaceholder {
			size = ""
		}
		view.Variants = append(view.Variants, &variantView{
			ID:    variant.ID,
			Color: color,
			Size:  size,
			Stock: variant.Stock,
			SKU:   variant.SKU,
		})
	}

	if len(detail.Reviews) > 0 {
		view.Reviews = toReviewViews(detail.Reviews)
	}

	return view
}

func toProductViews(details []*entity.ProductDetail) []*productView {
	views := make([]*productView, 0, len(details))
	for _, detail := range details {
		views = append(views, toProductView(detail))
	}

	return views
}
