package model

// CategoryModel mirrors the 'product_categories' table. ParentID is NULL for
// root categories; (parent_id, name) is unique so a name can repeat across
// different branches of the tree.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_categories_parent_name"`
	ParentID    *int64 `gorm:"uniqueIndex:idx_product_categories_parent_name"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "product_categories"
}
