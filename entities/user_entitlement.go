package entities

import (
	"github.com/google/uuid"
)

// UserEntitlement is a per-user, per-feature usage allowance. A nil Quota
// means unlimited use; UsageCount still increments so usage can be reported.
type UserEntitlement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"uniqueIndex:idx_user_feature" json:"user_id"`
	FeatureCode string    `gorm:"uniqueIndex:idx_user_feature" json:"feature_code"`
	Quota       *int      `json:"quota,omitempty"`
	UsageCount  int       `gorm:"default:0" json:"usage_count"`

	Timestamp
}
