package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantRowsFromMatrix_OmitsZeroStockCells(t *testing.T) {
	combos := []VariationCombination{
		{Color: "Red", Sizes: []SizeStock{{Size: "S", Stock: 0}, {Size: "M", Stock: 3}}},
		{Color: "Blue", Sizes: []SizeStock{{Size: "S", Stock: 5}, {Size: "M", Stock: 2}}},
	}

	rows := VariantRowsFromMatrix(42, combos)

	require.Len(t, rows, 3)
	skus := make([]string, 0, len(rows))
	for _, row := range rows {
		skus = append(skus, row.SKU)
	}
	assert.Equal(t, []string{"42-Red-M", "42-Blue-S", "42-Blue-M"}, skus)
	assert.NotContains(t, skus, "42-Red-S")
}

func TestVariantRowsFromMatrix_NegativeStockOmitted(t *testing.T) {
	combos := []VariationCombination{
		{Color: "-", Sizes: []SizeStock{{Size: "S", Stock: -1}}},
	}

	assert.Empty(t, VariantRowsFromMatrix(7, combos))
}

func TestDefaultVariantRow(t *testing.T) {
	row := DefaultVariantRow(9, 100)

	assert.Equal(t, "9-default", row.SKU)
	assert.Equal(t, 100, row.Stock)
	assert.Empty(t, row.Color)
	assert.Empty(t, row.Size)
}
