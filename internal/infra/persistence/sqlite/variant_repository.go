package sqlite

import (
	"context"

	"shopfront/internal/domain/entity"
	domainerrors "shopfront/internal/domain/errors"
	"shopfront/internal/domain/repository"
	"shopfront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// variantRepository implements the domain.VariantRepository interface using GORM.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

// ReplaceAll removes every variant row of the product and inserts the given
// rows in their place. Runs inside the caller's transaction, so a failed
// insert rolls the delete back too.
func (repo *variantRepository) ReplaceAll(ctx context.Context, productID int64, variants []*entity.ProductVariant) error {
	if err := repo.DeleteByProductID(ctx, productID); err != nil {
		return err
	}

	if len(variants) == 0 {
		return nil
	}

	variantMs := make([]model.ProductVariantModel, 0, len(variants))
	for _, variant := range variants {
		variantMs = append(variantMs, model.ProductVariantModel{
			ProductID: productID,
			Size:      variant.Size,
			Color:     variant.Color,
			Stock:     variant.Stock,
			SKU:       variant.SKU,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&variantMs).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WrapMessage("duplicate variant sku")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert product variants")
	}

	for i, variant := range variants {
		variant.ID = variantMs[i].ID
		variant.ProductID = productID
	}

	return nil
}

// DeleteByProductID removes every variant row of the product.
func (repo *variantRepository) DeleteByProductID(ctx context.Context, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductVariantModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product variants")
	}

	return nil
}

// FindByProductID retrieves the variant rows of a product.
func (repo *variantRepository) FindByProductID(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	var variantMs []model.ProductVariantModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&variantMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load product variants")
	}

	variants := make([]*entity.ProductVariant, 0, len(variantMs))
	for i := range variantMs {
		variants = append(variants, toVariantDomain(&variantMs[i]))
	}

	return variants, nil
}

func toVariantDomain(data *model.ProductVariantModel) *entity.ProductVariant {
	return &entity.ProductVariant{
		ID:        data.ID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Color:     data.Color,
		Stock:     data.Stock,
		SKU:       data.SKU,
	}
}
