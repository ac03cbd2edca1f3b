package scan

import (
	"Pento-Service/domain"
	"Pento-Service/entities"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolution is the outcome of reconciling one observed item against the
// catalog: either a reuse of an existing reference, or a pending row the
// orchestrator will bulk-insert.
type resolution struct {
	item    domain.ResolvedItem
	pending *entities.FoodReference
}

func (s *scanService) resolveItem(ctx context.Context, obs domain.ObservedItem, ix *Index, sourceID string) (resolution, error) {
	candidate, _, matched := ix.Search(NormalizeName(obs.Name))
	if matched {
		ref, err := s.scanRepository.FindByID(ctx, candidate.ID.String())
		if err == nil {
			return resolution{item: resolveExisting(ref, obs)}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return resolution{}, domain.NewFailure(domain.KindPersistenceFailure, "failed to fetch matched food reference", err)
		}
		// Matched row vanished between snapshot and fetch; fall through to
		// creating a fresh reference.
	}

	ref := newReferenceFromObservation(obs, sourceID)
	return resolution{
		item:    resolveCreated(ref, obs),
		pending: ref,
	}, nil
}

// resolveExisting builds the display payload for a catalog hit. Shelf life,
// unit and group come from the catalog record; the observation keeps only
// its free-text notes and, preferentially, the catalog image.
func resolveExisting(ref *entities.FoodReference, obs domain.ObservedItem) domain.ResolvedItem {
	imageURL := ""
	if ref.ImageURL != nil {
		imageURL = *ref.ImageURL
	}
	if imageURL == "" {
		imageURL = obs.ImageURL
	}

	barcode := obs.Barcode
	if barcode == "" && ref.Barcode != nil {
		barcode = *ref.Barcode
	}

	return domain.ResolvedItem{
		Name:                 ref.Name,
		FoodGroup:            domain.FoodGroup(ref.FoodGroup),
		Notes:                obs.Notes,
		ShelfLifePantryDays:  ref.ShelfLifePantryDays,
		ShelfLifeFridgeDays:  ref.ShelfLifeFridgeDays,
		ShelfLifeFreezerDays: ref.ShelfLifeFreezerDays,
		UnitType:             domain.UnitType(ref.UnitType),
		ImageURL:             imageURL,
		Barcode:              barcode,
		ReferenceID:          ref.ID.String(),
		IsExistingReference:  true,
	}
}

func resolveCreated(ref *entities.FoodReference, obs domain.ObservedItem) domain.ResolvedItem {
	imageURL := ""
	if ref.ImageURL != nil {
		imageURL = *ref.ImageURL
	}

	return domain.ResolvedItem{
		Name:                 ref.Name,
		FoodGroup:            domain.FoodGroup(ref.FoodGroup),
		Notes:                obs.Notes,
		ShelfLifePantryDays:  ref.ShelfLifePantryDays,
		ShelfLifeFridgeDays:  ref.ShelfLifeFridgeDays,
		ShelfLifeFreezerDays: ref.ShelfLifeFreezerDays,
		UnitType:             domain.UnitType(ref.UnitType),
		ImageURL:             imageURL,
		Barcode:              obs.Barcode,
		ReferenceID:          ref.ID.String(),
		IsExistingReference:  false,
	}
}

func newReferenceFromObservation(obs domain.ObservedItem, sourceID string) *entities.FoodReference {
	ref := &entities.FoodReference{
		ID:                   uuid.New(),
		Name:                 obs.Name,
		FoodGroup:            string(obs.FoodGroup),
		UnitType:             string(obs.UnitType),
		ShelfLifePantryDays:  obs.ShelfLifePantryDays,
		ShelfLifeFridgeDays:  obs.ShelfLifeFridgeDays,
		ShelfLifeFreezerDays: obs.ShelfLifeFreezerDays,
		SourceID:             sourceID,
	}
	if obs.ImageURL != "" {
		imageURL := obs.ImageURL
		ref.ImageURL = &imageURL
	}
	if obs.Barcode != "" {
		barcode := obs.Barcode
		ref.Barcode = &barcode
	}
	return ref
}

// newScanSourceID tags a created reference with its provenance.
func newScanSourceID() string {
	return fmt.Sprintf("AI-SCAN-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func newBarcodeSourceID(barcode string) string {
	return "BARCODE-" + barcode
}
