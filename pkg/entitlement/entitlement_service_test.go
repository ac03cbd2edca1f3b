package entitlement_test

import (
	"Pento-Service/domain"
	"Pento-Service/entities"
	"Pento-Service/pkg/entitlement"
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeEntitlementRepo struct {
	ent        *entities.UserEntitlement
	increments int
}

func (r *fakeEntitlementRepo) FindEntitlement(ctx context.Context, userID, featureCode string) (*entities.UserEntitlement, error) {
	if r.ent == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.ent, nil
}

func (r *fakeEntitlementRepo) IncrementUsage(ctx context.Context, userID, featureCode string) error {
	r.increments++
	return nil
}

func TestCheckAndReserveMissingEntitlement(t *testing.T) {
	svc := entitlement.NewEntitlementService(&fakeEntitlementRepo{})

	err := svc.CheckAndReserve(context.Background(), uuid.NewString(), domain.FeatureFoodScan)
	if domain.KindOf(err) != domain.KindEntitlementMissing {
		t.Fatalf("err = %v, want entitlement-missing failure", err)
	}
}

func TestCheckAndReserveQuotaReached(t *testing.T) {
	quota := 5
	repo := &fakeEntitlementRepo{ent: &entities.UserEntitlement{
		FeatureCode: domain.FeatureFoodScan,
		Quota:       &quota,
		UsageCount:  5,
	}}
	svc := entitlement.NewEntitlementService(repo)

	err := svc.CheckAndReserve(context.Background(), uuid.NewString(), domain.FeatureFoodScan)
	if domain.KindOf(err) != domain.KindQuotaExceeded {
		t.Fatalf("err = %v, want quota failure", err)
	}
}

func TestCheckAndReserveUnderQuota(t *testing.T) {
	quota := 5
	repo := &fakeEntitlementRepo{ent: &entities.UserEntitlement{
		FeatureCode: domain.FeatureFoodScan,
		Quota:       &quota,
		UsageCount:  4,
	}}
	svc := entitlement.NewEntitlementService(repo)

	if err := svc.CheckAndReserve(context.Background(), uuid.NewString(), domain.FeatureFoodScan); err != nil {
		t.Fatalf("expected pass under quota, got %v", err)
	}
}

func TestCheckAndReserveNilQuotaIsUnlimited(t *testing.T) {
	repo := &fakeEntitlementRepo{ent: &entities.UserEntitlement{
		FeatureCode: domain.FeatureAIChef,
		UsageCount:  1000000,
	}}
	svc := entitlement.NewEntitlementService(repo)

	if err := svc.CheckAndReserve(context.Background(), uuid.NewString(), domain.FeatureAIChef); err != nil {
		t.Fatalf("nil quota must never deny, got %v", err)
	}
}

func TestCommitIncrementsUsage(t *testing.T) {
	repo := &fakeEntitlementRepo{ent: &entities.UserEntitlement{FeatureCode: domain.FeatureFoodScan}}
	svc := entitlement.NewEntitlementService(repo)

	if err := svc.Commit(context.Background(), uuid.NewString(), domain.FeatureFoodScan); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if repo.increments != 1 {
		t.Fatalf("increments = %d, want 1", repo.increments)
	}
}
