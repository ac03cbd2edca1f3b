package entitlement

import (
	"Pento-Service/entities"
	"context"

	"gorm.io/gorm"
)

type (
	EntitlementRepository interface {
		FindEntitlement(ctx context.Context, userID, featureCode string) (*entities.UserEntitlement, error)
		IncrementUsage(ctx context.Context, userID, featureCode string) error
	}

	entitlementRepository struct {
		db *gorm.DB
	}
)

func NewEntitlementRepository(db *gorm.DB) EntitlementRepository {
	return &entitlementRepository{db: db}
}

func (r *entitlementRepository) FindEntitlement(ctx context.Context, userID, featureCode string) (*entities.UserEntitlement, error) {
	var ent entities.UserEntitlement
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND feature_code = ?", userID, featureCode).
		First(&ent).Error; err != nil {
		return nil, err
	}
	return &ent, nil
}

// IncrementUsage bumps the usage counter in a single atomic statement.
func (r *entitlementRepository) IncrementUsage(ctx context.Context, userID, featureCode string) error {
	return r.db.WithContext(ctx).
		Model(&entities.UserEntitlement{}).
		Where("user_id = ? AND feature_code = ?", userID, featureCode).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
}
