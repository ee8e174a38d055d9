package impl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
)

const (
	productNameMinRunes   = 5
	productNameMaxRunes   = 100
	productDescMinRunes   = 20
	reviewCommentMaxRunes = 2000
	passwordMinRunes      = 8
	nicknameMaxRunes      = 100
)

// validateProductFields checks the user-correctable invariants of a product
// mutation and returns a field-keyed error, or nil. It runs before any
// transaction is opened.
func validateProductFields(name, description string, price float64, discountPercent int, categoryPaths [][]string, axes []entity.VariationAxis) error {
	fields := map[string]string{}

	nameRunes := utf8.RuneCountInString(strings.TrimSpace(name))
	if nameRunes < productNameMinRunes || nameRunes > productNameMaxRunes {
		fields["name"] = fmt.Sprintf("name must be between %d and %d characters", productNameMinRunes, productNameMaxRunes)
	}

	if utf8.RuneCountInString(strings.TrimSpace(description)) < productDescMinRunes {
		fields["description"] = fmt.Sprintf("description must be at least %d characters", productDescMinRunes)
	}

	if price <= 0 {
		fields["price"] = "price must be greater than zero"
	}

	if discountPercent < 0 || discountPercent > entity.NoDiscount {
		fields["discountPercent"] = "discount percent must be between 0 and 100"
	}

	if len(categoryPaths) == 0 {
		fields["categories"] = "at least one category is required"
	} else {
		for _, path := range categoryPaths {
			if len(path) == 0 {
				fields["categories"] = "category paths must not be empty"

				break
			}
		}
	}

	if err := entity.ValidateAxes(axes); err != nil {
		fields["variations"] = err.Error()
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

// validateReviewFields checks rating bounds and comment length.
func validateReviewFields(rating int, comment string) error {
	fields := map[string]string{}

	if rating < 1 || rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}

	if utf8.RuneCountInString(comment) > reviewCommentMaxRunes {
		fields["comment"] = fmt.Sprintf("comment must be at most %d characters", reviewCommentMaxRunes)
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

// validateSignUpFields checks the local signup form.
func validateSignUpFields(email, password, name, nickname string) error {
	fields := map[string]string{}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		fields["email"] = "a valid email address is required"
	}

	if utf8.RuneCountInString(password) < passwordMinRunes {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", passwordMinRunes)
	}

	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}

	if utf8.RuneCountInString(nickname) > nicknameMaxRunes {
		fields["nickname"] = fmt.Sprintf("nickname must be at most %d characters", nicknameMaxRunes)
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
