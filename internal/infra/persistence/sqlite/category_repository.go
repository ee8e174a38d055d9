package sqlite

import (
	"context"

	"shopfront/internal/domain/entity"
	"shopfront/internal/domain/repository"
	"shopfront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the domain.CategoryRepository interface using GORM.
// Tree walks (path to root, all descendants) use recursive CTEs rather than
// N round trips.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ResolvePath walks a named path root-first and returns the leaf id. Every
// step must match both name and parent, so "Clothing > Men" and
// "Shoes > Men" resolve to different nodes.
func (repo *categoryRepository) ResolvePath(ctx context.Context, path []string) (int64, error) {
	if len(path) == 0 {
		return 0, repository.ErrCategoryNotFound
	}

	var parentID *int64
	var current int64
	for _, name := range path {
		query := repo.db.WithContext(ctx).Where("name = ?", name)
		if parentID == nil {
			query = query.Where("parent_id IS NULL")
		} else {
			query = query.Where("parent_id = ?", *parentID)
		}

		var categoryM model.CategoryModel
		if err := query.First(&categoryM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, repository.ErrCategoryNotFound
			}

			return 0, errors.Wrap(err, "failed to resolve category path")
		}

		current = categoryM.ID
		parentID = &categoryM.ID
	}

	return current, nil
}

// PathToRoot returns the {id, name} chain of a category in root-to-leaf order.
func (repo *categoryRepository) PathToRoot(ctx context.Context, id int64) ([]entity.CategoryPathEntry, error) {
	var path []entity.CategoryPathEntry
	err := repo.db.WithContext(ctx).Raw(`
		WITH RECURSIVE ancestry(id, name, parent_id, depth) AS (
			SELECT id, name, parent_id, 0 FROM product_categories WHERE id = ?
			UNION ALL
			SELECT c.id, c.name, c.parent_id, a.depth + 1
			FROM product_categories c
			JOIN ancestry a ON c.id = a.parent_id
		)
		SELECT id, name FROM ancestry ORDER BY depth DESC`, id).
		Scan(&path).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category path")
	}

	if len(path) == 0 {
		return nil, repository.ErrCategoryNotFound
	}

	return path, nil
}

// FindByID retrieves a single category node.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

// MainCategories returns the root nodes.
func (repo *categoryRepository) MainCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("name").
		Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load main categories")
	}

	return toCategoryDomains(categoryMs), nil
}

// DirectChildren returns the immediate children of a node.
func (repo *categoryRepository) DirectChildren(ctx context.Context, id int64) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", id).
		Order("name").
		Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load child categories")
	}

	return toCategoryDomains(categoryMs), nil
}

// Descendants returns every node below the given one, any depth.
func (repo *categoryRepository) Descendants(ctx context.Context, id int64) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	err := repo.db.WithContext(ctx).Raw(`
		WITH RECURSIVE subtree(id) AS (
			SELECT id FROM product_categories WHERE parent_id = ?
			UNION ALL
			SELECT c.id FROM product_categories c JOIN subtree s ON c.parent_id = s.id
		)
		SELECT c.id, c.name, c.parent_id, c.description
		FROM product_categories c JOIN subtree s ON c.id = s.id`, id).
		Scan(&categoryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category descendants")
	}

	return toCategoryDomains(categoryMs), nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		ParentID:    data.ParentID,
		Description: data.Description,
	}
}

func toCategoryDomains(data []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, 0, len(data))
	for i := range data {
		categories = append(categories, toCategoryDomain(&data[i]))
	}

	return categories
}
