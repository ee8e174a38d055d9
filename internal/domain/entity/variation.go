package entity

import (
	"errors"
	"strings"
)

const (
	// AxisColor and AxisSize are the only variation axes a product may carry.
	AxisColor = "color"
	AxisSize  = "size"

	// AxisPlaceholder stands in for the missing axis of a single-axis spec,
	// so every stock cell always has both a color and a size coordinate.
	AxisPlaceholder = "-"

	// MaxVariationAxes bounds the number of axes per product.
	MaxVariationAxes = 2
)

var (
	ErrTooManyAxes      = errors.New("at most two variation axes are allowed")
	ErrDuplicateAxis    = errors.New("variation axis names must be unique")
	ErrUnknownAxis      = errors.New("variation axis must be color or size")
	ErrBlankAxisOptions = errors.New("variation axis has no options")
)

// VariationAxis is one named product dimension with its ordered option list.
type VariationAxis struct {
	Name    string
	Options []string
}

// AddOption appends an option value to the axis. Blank values and values
// already present are silently ignored.
func (a *VariationAxis) AddOption(option string) {
	option = strings.TrimSpace(option)
	if option == "" {
		return
	}
	for _, existing := range a.Options {
		if existing == option {
			return
		}
	}
	a.Options = append(a.Options, option)
}

// SizeStock is one cell of the stock matrix along the size axis.
type SizeStock struct {
	Size  string
	Stock int
}

// VariationCombination groups the stock cells of one color: the submitted
// stock matrix is a list of these, one per color (or a single placeholder
// color when only sizes vary).
type VariationCombination struct {
	Color string
	Sizes []SizeStock
}

// ValidateAxes checks the structural constraints of a variation spec:
// at most two axes, unique known names, and no empty option lists.
func ValidateAxes(axes []VariationAxis) error {
	if len(axes) > MaxVariationAxes {
		return ErrTooManyAxes
	}

	seen := make(map[string]bool, len(axes))
	for _, axis := range axes {
		if axis.Name != AxisColor && axis.Name != AxisSize {
			return ErrUnknownAxis
		}
		if seen[axis.Name] {
			return ErrDuplicateAxis
		}
		seen[axis.Name] = true

		if len(axis.Options) == 0 {
			return ErrBlankAxisOptions
		}
	}

	return nil
}

// GenerateCombinations expands a variation spec into the full stock matrix.
// An absent axis is treated as cardinality one with the "-" placeholder.
// Each generated cell is seeded from the matching cell of existing when the
// (color, size) coordinate survives the edit, else from defaultStock.
func GenerateCombinations(axes []VariationAxis, defaultStock int, existing []VariationCombination) []VariationCombination {
	var colorAxis, sizeAxis *VariationAxis
	for i := range axes {
		switch axes[i].Name {
		case AxisColor:
			colorAxis = &axes[i]
		case AxisSize:
			sizeAxis = &axes[i]
		}
	}

	hasColors := colorAxis != nil && len(colorAxis.Options) > 0
	hasSizes := sizeAxis != nil && len(sizeAxis.Options) > 0

	seed := func(color, size string) int {
		if stock, ok := FindStock(existing, color, size); ok {
			return stock
		}

		return defaultStock
	}

	switch {
	case !hasColors && !hasSizes:
		return nil

	case hasSizes && !hasColors:
		cells := make([]SizeStock, 0, len(sizeAxis.Options))
		for _, size := range sizeAxis.Options {
			cells = append(cells, SizeStock{Size: size, Stock: seed(AxisPlaceholder, size)})
		}

		return []VariationCombination{{Color: AxisPlaceholder, Sizes: cells}}

	case hasColors && !hasSizes:
		combos := make([]VariationCombination, 0, len(colorAxis.Options))
		for _, color := range colorAxis.Options {
			combos = append(combos, VariationCombination{
				Color: color,
				Sizes: []SizeStock{{Size: AxisPlaceholder, Stock: seed(color, AxisPlaceholder)}},
			})
		}

		return combos

	default:
		combos := make([]VariationCombination, 0, len(colorAxis.Options))
		for _, color := range colorAxis.Options {
			cells := make([]SizeStock, 0, len(sizeAxis.Options))
			for _, size := range sizeAxis.Options {
				cells = append(cells, SizeStock{Size: size, Stock: seed(color, size)})
			}
			combos = append(combos, VariationCombination{Color: color, Sizes: cells})
		}

		return combos
	}
}

// FindStock looks up the stock of the (color, size) cell in a matrix.
func FindStock(combos []VariationCombination, color, size string) (int, bool) {
	for _, combo := range combos {
		if combo.Color != color {
			continue
		}
		for _, cell := range combo.Sizes {
			if cell.Size == size {
				return cell.Stock, true
			}
		}
	}

	return 0, false
}

// CellCount returns the total number of cells in a matrix.
func CellCount(combos []VariationCombination) int {
	total := 0
	for _, combo := range combos {
		total += len(combo.Sizes)
	}

	return total
}
