package entity

import "strconv"

// VariantSKU derives the unique SKU of one stock cell.
func VariantSKU(productID int64, color, size string) string {
	return strconv.FormatInt(productID, 10) + "-" + color + "-" + size
}

// DefaultSKU derives the SKU of the single implicit variant of a product
// without variations.
func DefaultSKU(productID int64) string {
	return strconv.FormatInt(productID, 10) + "-default"
}

// VariantRowsFromMatrix flattens a stock matrix into persistable variant
// rows. Cells with zero or negative stock are omitted, not stored as zero.
func VariantRowsFromMatrix(productID int64, combos []VariationCombination) []*ProductVariant {
	var rows []*ProductVariant
	for _, combo := range combos {
		for _, cell := range combo.Sizes {
			if cell.Stock <= 0 {
				continue
			}
			rows = append(rows, &ProductVariant{
				ProductID: productID,
				Color:     combo.Color,
				Size:      cell.Size,
				Stock:     cell.Stock,
				SKU:       VariantSKU(productID, combo.Color, cell.Size),
			})
		}
	}

	return rows
}

// DefaultVariantRow builds the single stock row of a variant-less product.
func DefaultVariantRow(productID int64, stock int) *ProductVariant {
	return &ProductVariant{
		ProductID: productID,
		Stock:     stock,
		SKU:       DefaultSKU(productID),
	}
}
