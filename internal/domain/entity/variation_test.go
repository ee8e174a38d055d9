package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCombinations_NoAxes(t *testing.T) {
	assert.Nil(t, GenerateCombinations(nil, 0, nil))
	assert.Nil(t, GenerateCombinations([]VariationAxis{}, 5, nil))
}

func TestGenerateCombinations_SizeOnly(t *testing.T) {
	axes := []VariationAxis{{Name: AxisSize, Options: []string{"S", "M", "L"}}}

	combos := GenerateCombinations(axes, 0, nil)

	require.Len(t, combos, 1)
	assert.Equal(t, AxisPlaceholder, combos[0].Color)
	require.Len(t, combos[0].Sizes, 3)
	assert.Equal(t, "S", combos[0].Sizes[0].Size)
	assert.Equal(t, 3, CellCount(combos))
}

func TestGenerateCombinations_ColorOnly(t *testing.T) {
	axes := []VariationAxis{{Name: AxisColor, Options: []string{"Red", "Blue"}}}

	combos := GenerateCombinations(axes, 7, nil)

	require.Len(t, combos, 2)
	for _, combo := range combos {
		require.Len(t, combo.Sizes, 1)
		assert.Equal(t, AxisPlaceholder, combo.Sizes[0].Size)
		assert.Equal(t, 7, combo.Sizes[0].Stock)
	}
	assert.Equal(t, 2, CellCount(combos))
}

func TestGenerateCombinations_BothAxes(t *testing.T) {
	axes := []VariationAxis{
		{Name: AxisColor, Options: []string{"Red", "Blue"}},
		{Name: AxisSize, Options: []string{"S", "M", "L"}},
	}

	combos := GenerateCombinations(axes, 1, nil)

	// |colors| x |sizes| cells
	assert.Equal(t, 6, CellCount(combos))
	require.Len(t, combos, 2)
	assert.Equal(t, "Red", combos[0].Color)
	assert.Equal(t, "Blue", combos[1].Color)
	for _, combo := range combos {
		require.Len(t, combo.Sizes, 3)
	}
}

func TestGenerateCombinations_PreservesExistingStock(t *testing.T) {
	axes := []VariationAxis{
		{Name: AxisColor, Options: []string{"Red", "Green"}},
		{Name: AxisSize, Options: []string{"S", "M"}},
	}
	existing := []VariationCombination{
		{Color: "Red", Sizes: []SizeStock{{Size: "S", Stock: 3}, {Size: "M", Stock: 5}}},
	}

	combos := GenerateCombinations(axes, 9, existing)

	stock, ok := FindStock(combos, "Red", "S")
	require.True(t, ok)
	assert.Equal(t, 3, stock)

	stock, ok = FindStock(combos, "Red", "M")
	require.True(t, ok)
	assert.Equal(t, 5, stock)

	// Green is new: both cells seeded from the default.
	stock, ok = FindStock(combos, "Green", "S")
	require.True(t, ok)
	assert.Equal(t, 9, stock)
}

func TestGenerateCombinations_PlaceholderStockSurvivesSizeOnlyEdit(t *testing.T) {
	axes := []VariationAxis{{Name: AxisSize, Options: []string{"S", "M"}}}
	existing := []VariationCombination{
		{Color: AxisPlaceholder, Sizes: []SizeStock{{Size: "S", Stock: 12}}},
	}

	combos := GenerateCombinations(axes, 0, existing)

	stock, ok := FindStock(combos, AxisPlaceholder, "S")
	require.True(t, ok)
	assert.Equal(t, 12, stock)

	stock, ok = FindStock(combos, AxisPlaceholder, "M")
	require.True(t, ok)
	assert.Equal(t, 0, stock)
}

func TestValidateAxes(t *testing.T) {
	assert.NoError(t, ValidateAxes(nil))
	assert.NoError(t, ValidateAxes([]VariationAxis{
		{Name: AxisColor, Options: []string{"Red"}},
		{Name: AxisSize, Options: []string{"S"}},
	}))

	assert.ErrorIs(t, ValidateAxes([]VariationAxis{
		{Name: AxisColor, Options: []string{"Red"}},
		{Name: AxisSize, Options: []string{"S"}},
		{Name: AxisColor, Options: []string{"Blue"}},
	}), ErrTooManyAxes)

	assert.ErrorIs(t, ValidateAxes([]VariationAxis{
		{Name: AxisColor, Options: []string{"Red"}},
		{Name: AxisColor, Options: []string{"Blue"}},
	}), ErrDuplicateAxis)

	assert.ErrorIs(t, ValidateAxes([]VariationAxis{
		{Name: "material", Options: []string{"wool"}},
	}), ErrUnknownAxis)

	assert.ErrorIs(t, ValidateAxes([]VariationAxis{
		{Name: AxisSize},
	}), ErrBlankAxisOptions)
}

func TestVariationAxis_AddOption(t *testing.T) {
	var axis VariationAxis
	axis.Name = AxisColor

	axis.AddOption("Red")
	axis.AddOption(" Red ")
	axis.AddOption("")
	axis.AddOption("Blue")

	assert.Equal(t, []string{"Red", "Blue"}, axis.Options)
}

func TestProduct_DiscountedPrice(t *testing.T) {
	p := &Product{Price: 399, DiscountPercent: NoDiscount}
	assert.Equal(t, 399, p.DiscountedPrice())

	p = &Product{Price: 399, DiscountPercent: 85}
	assert.Equal(t, 339, p.DiscountedPrice())

	p = &Product{Price: 150, DiscountPercent: 0}
	assert.Equal(t, 0, p.DiscountedPrice())
}

func TestSession_Lifecycle(t *testing.T) {
	now := time.Now()
	ttl := 20 * time.Minute
	s := &Session{ExpiresAt: now.Add(10 * time.Minute)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(10*time.Minute)))

	// Rotation kicks in once less than half the TTL remains.
	assert.False(t, s.NeedsRotation(now, ttl))
	assert.True(t, s.NeedsRotation(now.Add(time.Minute), ttl))
}
