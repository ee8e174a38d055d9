package repository

import (
	"context"
	"errors"

	"shopfront/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a category lookup or path step has no
// match. Inside a product mutation this aborts the whole transaction.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository resolves and reads the category tree. All operations
// are read-only; ResolvePath is also used inside write transactions.
type CategoryRepository interface {
	// ResolvePath walks a named path left to right (root first) and returns
	// the leaf category id. Each step must match name AND parent; the first
	// step must be a root. Any miss returns ErrCategoryNotFound.
	ResolvePath(ctx context.Context, path []string) (int64, error)

	// PathToRoot returns the {id, name} chain of a category in root-to-leaf
	// order.
	PathToRoot(ctx context.Context, id int64) ([]entity.CategoryPathEntry, error)

	// FindByID retrieves a single category node.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// MainCategories returns the root nodes (parent IS NULL).
	MainCategories(ctx context.Context) ([]*entity.Category, error)

	// DirectChildren returns the immediate children of a node.
	DirectChildren(ctx context.Context, id int64) ([]*entity.Category, error)

	// Descendants returns every node below the given one, any depth.
	Descendants(ctx context.Context, id int64) ([]*entity.Category, error)
}
