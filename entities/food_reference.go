package entities

import (
	"github.com/google/uuid"
)

// FoodReference is the canonical catalog entry describing one kind of food.
// Rows are never physically deleted by the scan flows; IsDeleted hides them
// from the match index instead.
type FoodReference struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                 string    `gorm:"not null" json:"name"`
	FoodGroup            string    `gorm:"not null" json:"food_group"` // one of domain.FoodGroups
	UnitType             string    `gorm:"not null" json:"unit_type"`  // "Weight", "Count", "Volume"
	ShelfLifePantryDays  int       `json:"shelf_life_pantry_days"`
	ShelfLifeFridgeDays  int       `json:"shelf_life_fridge_days"`
	ShelfLifeFreezerDays int       `json:"shelf_life_freezer_days"`
	Barcode              *string   `gorm:"uniqueIndex" json:"barcode,omitempty"`
	SourceID             string    `json:"source_id"` // provenance, e.g. "AI-SCAN-..." or "BARCODE-..."
	ImageURL             *string   `json:"image_url,omitempty"`
	IsDeleted            bool      `gorm:"default:false;index" json:"is_deleted"`

	Timestamp
}
