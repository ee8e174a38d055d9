package entity

import (
	"math"
	"time"
)

// NoDiscount is the discount_percent value meaning the full price applies.
const NoDiscount = 100

// Product is one catalog listing owned by a seller. RatingAvg and
// RatingCount are maintained by database triggers over product_reviews and
// are the single source of truth for the aggregate.
type Product struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DiscountPercent int
	SellerID        int64
	HasVariants     bool
	RatingAvg       float64
	RatingCount     int
	SalesCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DiscountedPrice is the price actually charged: price scaled by the
// discount percent and rounded to the nearest integer. It is computed at
// read time and never persisted.
func (p *Product) DiscountedPrice() int {
	return int(math.Round(p.Price * float64(p.DiscountPercent) / 100))
}

// ProductVariant is one sellable stock cell of a product. Size and Color are
// empty for the single implicit variant of a product without variations.
type ProductVariant struct {
	ID        int64
	ProductID int64
	Size      string
	Color     string
	Stock     int
	SKU       string
}

// ProductDetail is the denormalized read model for a product page: the
// product row joined with its seller, variants, reviews, and category path.
type ProductDetail struct {
	Product

	SellerName     string
	SellerNickname string
	Variants       []*ProductVariant
	Reviews        []*Review
	CategoryPath   []CategoryPathEntry
}
