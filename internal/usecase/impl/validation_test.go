package impl

import (
	"strings"
	"testing"

	domainerrors "shopfront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireFieldError asserts a ValidationError carrying the given field key.
func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), field)
}

func TestValidateProductFields_NameBoundaries(t *testing.T) {
	description := strings.Repeat("d", 20)
	paths := [][]string{{"Clothing"}}

	cases := []struct {
		name        string
		productName string
		wantErr     bool
	}{
		{"four runes rejected", strings.Repeat("n", 4), true},
		{"five runes accepted", strings.Repeat("n", 5), false},
		{"hundred runes accepted", strings.Repeat("n", 100), false},
		{"hundred multibyte runes accepted", strings.Repeat("é", 100), false},
		{"hundred and one runes rejected", strings.Repeat("n", 101), true},
		{"surrounding whitespace does not pad a short name", "  name  ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateProductFields(tc.productName, description, 399, 100, paths, nil)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			requireFieldError(t, err, "name")
		})
	}
}

func TestValidateProductFields_DescriptionBoundaries(t *testing.T) {
	paths := [][]string{{"Clothing"}}

	err := validateProductFields("Classic Tee", strings.Repeat("d", 19), 399, 100, paths, nil)
	requireFieldError(t, err, "description")

	err = validateProductFields("Classic Tee", strings.Repeat("d", 20), 399, 100, paths, nil)
	require.NoError(t, err)
}

func TestValidateProductFields_DiscountBoundaries(t *testing.T) {
	description := strings.Repeat("d", 20)
	paths := [][]string{{"Clothing"}}

	cases := []struct {
		name     string
		discount int
		wantErr  bool
	}{
		{"minus one rejected", -1, true},
		{"zero accepted", 0, false},
		{"hundred accepted", 100, false},
		{"hundred and one rejected", 101, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateProductFields("Classic Tee", description, 399, tc.discount, paths, nil)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			requireFieldError(t, err, "discountPercent")
		})
	}
}

func TestValidateProductFields_PriceBoundaries(t *testing.T) {
	description := strings.Repeat("d", 20)
	paths := [][]string{{"Clothing"}}

	err := validateProductFields("Classic Tee", description, 0, 100, paths, nil)
	requireFieldError(t, err, "price")

	err = validateProductFields("Classic Tee", description, 0.01, 100, paths, nil)
	require.NoError(t, err)
}
