package model

import "time"

// ReviewModel mirrors the 'product_reviews' table. (product_id, user_id) is
// unique: one review per user per product.
type ReviewModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	UserID    int64  `gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "product_reviews"
}
