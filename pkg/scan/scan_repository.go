package scan

import (
	"Pento-Service/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		ListCandidates(ctx context.Context) ([]CatalogCandidate, error)
		FindByID(ctx context.Context, id string) (*entities.FoodReference, error)
		FindByBarcode(ctx context.Context, barcode string) (*entities.FoodReference, error)
		BulkInsert(ctx context.Context, refs []*entities.FoodReference) error
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

// ListCandidates projects every non-deleted reference down to the fields the
// match index needs.
func (r *scanRepository) ListCandidates(ctx context.Context) ([]CatalogCandidate, error) {
	var candidates []CatalogCandidate
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodReference{}).
		Select("id", "name", "food_group", "unit_type",
			"shelf_life_pantry_days", "shelf_life_fridge_days", "shelf_life_freezer_days",
			"image_url").
		Where("is_deleted = ?", false).
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *scanRepository) FindByID(ctx context.Context, id string) (*entities.FoodReference, error) {
	var ref entities.FoodReference
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *scanRepository) FindByBarcode(ctx context.Context, barcode string) (*entities.FoodReference, error) {
	var ref entities.FoodReference
	if err := r.db.WithContext(ctx).
		Where("barcode = ? AND is_deleted = ?", barcode, false).
		First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

// BulkInsert writes all pending references in one round trip.
func (r *scanRepository) BulkInsert(ctx context.Context, refs []*entities.FoodReference) error {
	if len(refs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(refs).Error
}
