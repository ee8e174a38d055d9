package sqlite

import (
	"context"
	"testing"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_ResolvePath(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	t.Run("resolves a seeded path to the leaf", func(t *testing.T) {
		id, err := repo.ResolvePath(ctx, []string{"Electronics", "Computers", "Laptops"})
		require.NoError(t, err)
		assert.EqualValues(t, 6, id)
	})

	t.Run("each step is scoped to its parent", func(t *testing.T) {
		// "Men" exists only under Clothing; at the root it must not match.
		_, err := repo.ResolvePath(ctx, []string{"Men"})
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("same name under different parents resolves per path", func(t *testing.T) {
		require.NoError(t, db.Exec(
			`INSERT INTO product_categories (name, parent_id) VALUES ('Sale', 1), ('Sale', 2)`,
		).Error)

		electronicsSale, err := repo.ResolvePath(ctx, []string{"Electronics", "Sale"})
		require.NoError(t, err)
		clothingSale, err := repo.ResolvePath(ctx, []string{"Clothing", "Sale"})
		require.NoError(t, err)

		assert.NotEqual(t, electronicsSale, clothingSale)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := repo.ResolvePath(ctx, nil)
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("partial match", func(t *testing.T) {
		_, err := repo.ResolvePath(ctx, []string{"Electronics", "Furniture"})
		assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})
}

func TestCategoryRepository_PathToRoot(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	path, err := repo.PathToRoot(ctx, 6)
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, []entity.CategoryPathEntry{
		{ID: 1, Name: "Electronics"},
		{ID: 4, Name: "Computers"},
		{ID: 6, Name: "Laptops"},
	}, path)

	_, err = repo.PathToRoot(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}

func TestCategoryRepository_MainCategories(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	categories, err := repo.MainCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)

	names := []string{categories[0].Name, categories[1].Name, categories[2].Name}
	assert.Equal(t, []string{"Clothing", "Electronics", "Home"}, names)
	for _, category := range categories {
		assert.Nil(t, category.ParentID)
	}
}

func TestCategoryRepository_DirectChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	children, err := repo.DirectChildren(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "Audio", children[0].Name)
	assert.Equal(t, "Computers", children[1].Name)
}

func TestCategoryRepository_Descendants(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	descendants, err := repo.Descendants(context.Background(), 1)
	require.NoError(t, err)

	names := make(map[string]bool, len(descendants))
	for _, category := range descendants {
		names[category.Name] = true
	}
	// Laptops sits two levels down and must still be included.
	assert.Equal(t, map[string]bool{"Computers": true, "Audio": true, "Laptops": true}, names)
}

func TestCategoryRepository_FindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category, err := repo.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Men", category.Name)
	require.NotNil(t, category.ParentID)
	assert.EqualValues(t, 2, *category.ParentID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
}
