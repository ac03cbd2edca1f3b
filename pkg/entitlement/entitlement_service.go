package entitlement

import (
	"Pento-Service/domain"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type (
	// EntitlementService gates costly operations per user and feature.
	// CheckAndReserve runs before any paid downstream call; Commit runs
	// only after the wrapped operation fully succeeded.
	EntitlementService interface {
		CheckAndReserve(ctx context.Context, userID, featureCode string) error
		Commit(ctx context.Context, userID, featureCode string) error
	}

	entitlementService struct {
		entitlementRepository EntitlementRepository
	}
)

func NewEntitlementService(entitlementRepository EntitlementRepository) EntitlementService {
	return &entitlementService{entitlementRepository: entitlementRepository}
}

func (s *entitlementService) CheckAndReserve(ctx context.Context, userID, featureCode string) error {
	ent, err := s.entitlementRepository.FindEntitlement(ctx, userID, featureCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewFailure(
				domain.KindEntitlementMissing,
				fmt.Sprintf("feature %s is not available for this user", featureCode),
				nil,
			)
		}
		return domain.NewFailure(domain.KindPersistenceFailure, "failed to load entitlement", err)
	}

	// A nil quota means unlimited; usage still gets counted on commit.
	if ent.Quota != nil && ent.UsageCount >= *ent.Quota {
		return domain.NewFailure(
			domain.KindQuotaExceeded,
			fmt.Sprintf("quota exceeded for feature %s: usage %d/%d", featureCode, ent.UsageCount, *ent.Quota),
			nil,
		)
	}

	return nil
}

func (s *entitlementService) Commit(ctx context.Context, userID, featureCode string) error {
	return s.entitlementRepository.IncrementUsage(ctx, userID, featureCode)
}
