package sqlite

import (
	"context"
	"time"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// searchResultLimit caps keyword search results.
const searchResultLimit = 10

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// productDetailRow is the scan target for the joined product+seller select.
type productDetailRow struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DiscountPercent int
	SellerID        int64
	HasVariants     bool
	RatingAvg       float64
	RatingCount     int
	SalesCount      int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	SellerName      string
	SellerNickname  string
}

const productDetailSelect = `
	SELECT p.id, p.name, p.description, p.price, p.discount_percent,
	       p.seller_id, p.has_variants, p.rating_avg, p.rating_count,
	       p.sales_count, p.created_at, p.updated_at,
	       u.name AS seller_name, u.nickname AS seller_nickname
	FROM products p
	JOIN users u ON u.id = p.seller_id`

// Create inserts the product row and fills in the generated id.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WrapMessage("product row violates a constraint")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "seller does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update replaces the scalar fields of an existing product row.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":             product.Name,
			"description":      product.Description,
			"price":            product.Price,
			"discount_percent": product.DiscountPercent,
			"has_variants":     product.HasVariants,
			"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrConstraintViolation.WrapMessage("product row violates a constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product row itself. Child rows are removed by their
// own repositories inside the same transaction, before this call.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindRow retrieves the bare product row for ownership checks.
func (repo *productRepository) FindRow(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// GetByID retrieves the full read model for one product, including reviews.
func (repo *productRepository) GetByID(ctx context.Context, id int64) (*entity.ProductDetail, error) {
	var row productDetailRow
	err := repo.db.WithContext(ctx).
		Raw(productDetailSelect+` WHERE p.id = ?`, id).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}
	if row.ID == 0 {
		return nil, repository.ErrProductNotFound
	}

	detail := toProductDetail(&row)

	if err := repo.attachVariants(ctx, []*entity.ProductDetail{detail}); err != nil {
		return nil, err
	}
	if err := repo.attachCategoryPath(ctx, detail); err != nil {
		return nil, err
	}

	reviews, err := NewReviewRepository(repo.db).FindByProductID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Reviews = reviews

	return detail, nil
}

// GetAll retrieves the read model for every product, newest first.
func (repo *productRepository) GetAll(ctx context.Context) ([]*entity.ProductDetail, error) {
	return repo.list(ctx, productDetailSelect+` ORDER BY p.created_at DESC, p.id DESC`)
}

// GetByCategory retrieves products attached to the category or any of its
// descendants, newest first.
func (repo *productRepository) GetByCategory(ctx context.Context, categoryID int64) ([]*entity.ProductDetail, error) {
	return repo.list(ctx, productDetailSelect+`
		WHERE p.id IN (
			SELECT pcr.product_id
			FROM product_category_relations pcr
			WHERE pcr.category_id IN (
				WITH RECURSIVE subtree(id) AS (
					SELECT id FROM product_categories WHERE id = ?
					UNION ALL
					SELECT c.id FROM product_categories c JOIN subtree s ON c.parent_id = s.id
				)
				SELECT id FROM subtree
			)
		)
		ORDER BY p.created_at DESC, p.id DESC`, categoryID)
}

// GetBySellerID retrieves a seller's own products, newest first.
func (repo *productRepository) GetBySellerID(ctx context.Context, sellerID int64) ([]*entity.ProductDetail, error) {
	return repo.list(ctx, productDetailSelect+`
		WHERE p.seller_id = ?
		ORDER BY p.created_at DESC, p.id DESC`, sellerID)
}

// Search matches a keyword as a substring of name, description, or an
// attached category name. Deduplicated, capped, newest first.
func (repo *productRepository) Search(ctx context.Context, keyword string) ([]*entity.ProductDetail, error) {
	pattern := "%" + keyword + "%"

	return repo.list(ctx, productDetailSelect+`
		WHERE p.id IN (
			SELECT DISTINCT p2.id
			FROM products p2
			LEFT JOIN product_category_relations pcr ON pcr.product_id = p2.id
			LEFT JOIN product_categories c ON c.id = pcr.category_id
			WHERE p2.name LIKE ? OR p2.description LIKE ? OR c.name LIKE ?
		)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ?`, pattern, pattern, pattern, searchResultLimit)
}

// AttachCategory inserts one product-category relation row.
func (repo *productRepository) AttachCategory(ctx context.Context, productID, categoryID int64) error {
	relation := &model.ProductCategoryRelationModel{
		ProductID:  productID,
		CategoryID: categoryID,
	}

	if err := repo.db.WithContext(ctx).Create(relation).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already attached; the relation set is what matters.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach category")
	}

	return nil
}

// DetachCategories removes every category relation of a product.
func (repo *productRepository) DetachCategories(ctx context.Context, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductCategoryRelationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach categories")
	}

	return nil
}

// list runs a product+seller select and hydrates variants and category
// paths for every row. Reviews stay on the single-product read path.
func (repo *productRepository) list(ctx context.Context, query string, args ...any) ([]*entity.ProductDetail, error) {
	var rows []productDetailRow
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	details := make([]*entity.ProductDetail, 0, len(rows))
	for i := range rows {
		details = append(details, toProductDetail(&rows[i]))
	}

	if err := repo.attachVariants(ctx, details); err != nil {
		return nil, err
	}
	for _, detail := range details {
		if err := repo.attachCategoryPath(ctx, detail); err != nil {
			return nil, err
		}
	}

	return details, nil
}

// attachVariants batch-loads the variant rows of every listed product.
func (repo *productRepository) attachVariants(ctx context.Context, details []*entity.ProductDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(details))
	byID := make(map[int64]*entity.ProductDetail, len(details))
	for _, detail := range details {
		ids = append(ids, detail.ID)
		byID[detail.ID] = detail
	}

	var variantMs []model.ProductVariantModel
	if err := repo.db.WithContext(ctx).
		Where("product_id IN ?", ids).
		Order("id").
		Find(&variantMs).Error; err != nil {
		return errors.Wrap(err, "failed to load product variants")
	}

	for i := range variantMs {
		detail := byID[variantMs[i].ProductID]
		if detail == nil {
			continue
		}
		detail.Variants = append(detail.Variants, toVariantDomain(&variantMs[i]))
	}

	return nil
}

// attachCategoryPath loads the root-to-leaf path of the product's first
// attached category. Products may carry several categories; the breadcrumb
// shows one.
func (repo *productRepository) attachCategoryPath(ctx context.Context, detail *entity.ProductDetail) error {
	var path []entity.CategoryPathEntry
	err := repo.db.WithContext(ctx).Raw(`
		WITH RECURSIVE ancestry(id, name, parent_id, depth) AS (
			SELECT id, name, parent_id, 0 FROM product_categories
			WHERE id = (
				SELECT MIN(category_id) FROM product_category_relations WHERE product_id = ?
			)
			UNION ALL
			SELECT c.id, c.name, c.parent_id, a.depth + 1
			FROM product_categories c
			JOIN ancestry a ON c.id = a.parent_id
		)
		SELECT id, name FROM ancestry ORDER BY depth DESC`, detail.ID).
		Scan(&path).Error
	if err != nil {
		return errors.Wrap(err, "failed to load category path")
	}

	detail.CategoryPath = path

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DiscountPercent: data.DiscountPercent,
		SellerID:        data.SellerID,
		HasVariants:     data.HasVariants,
		RatingAvg:       data.RatingAvg,
		RatingCount:     data.RatingCount,
		SalesCount:      data.SalesCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DiscountPercent: data.DiscountPercent,
		SellerID:        data.SellerID,
		HasVariants:     data.HasVariants,
	}
}

func toProductDetail(row *productDetailRow) *entity.ProductDetail {
	return &entity.ProductDetail{
		Product: entity.Product{
			ID:              row.ID,
			Name:            row.Name,
			Description:     row.Description,
			Price:           row.Price,
			DiscountPercent: row.DiscountPercent,
			SellerID:        row.SellerID,
			HasVariants:     row.HasVariants,
			RatingAvg:       row.RatingAvg,
			RatingCount:     row.RatingCount,
			SalesCount:      row.SalesCount,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		},
		SellerName:     row.SellerName,
		SellerNickname: row.SellerNickname,
	}
}
