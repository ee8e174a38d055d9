package model

import "time"

// ProductModel mirrors the 'products' table. RatingAvg and RatingCount are
// written exclusively by the review triggers.
type ProductModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Name            string  `gorm:"type:varchar(100);not null"`
	Description     string  `gorm:"type:text;not null"`
	Price           float64 `gorm:"not null"`
	DiscountPercent int     `gorm:"not null;default:100"`
	SellerID        int64   `gorm:"not null;index"`
	HasVariants     bool    `gorm:"not null;default:false"`
	RatingAvg       float64 `gorm:"not null;default:0"`
	RatingCount     int     `gorm:"not null;default:0"`
	SalesCount      int     `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel mirrors the 'product_variants' table. One row per
// stocked (color, size) cell; the SKU is globally unique.
type ProductVariantModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index"`
	Size      string `gorm:"type:varchar(50)"`
	Color     string `gorm:"type:varchar(50)"`
	Stock     int    `gorm:"not null;default:0"`
	SKU       string `gorm:"column:sku;type:varchar(120);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ProductCategoryRelationModel mirrors the 'product_category_relations'
// join table.
type ProductCategoryRelationModel struct {
	ProductID  int64 `gorm:"primaryKey"`
	CategoryID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryRelationModel) TableName() string {
	return "product_category_relations"
}
