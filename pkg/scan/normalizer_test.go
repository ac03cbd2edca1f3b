package scan_test

import (
	"Pento-Service/domain"
	"Pento-Service/pkg/scan"
	"fmt"
	"testing"
)

func rawItems(n int) []domain.RawScanItem {
	items := make([]domain.RawScanItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.RawScanItem{
			Name:      fmt.Sprintf("Item %d", i),
			FoodGroup: string(domain.FoodGroupDairy),
			UnitType:  string(domain.UnitTypeWeight),
		})
	}
	return items
}

func TestNormalizeVisionResultsTruncatesToFive(t *testing.T) {
	items := scan.NormalizeVisionResults(rawItems(7))
	if len(items) != 5 {
		t.Fatalf("got %d items, want 5", len(items))
	}
	if items[0].Name != "Item 0" || items[4].Name != "Item 4" {
		t.Fatalf("truncation must keep the first items in order, got %q..%q", items[0].Name, items[4].Name)
	}
}

func TestNormalizeReceiptResultsTruncatesToTen(t *testing.T) {
	items := scan.NormalizeReceiptResults(rawItems(14))
	if len(items) != 10 {
		t.Fatalf("got %d items, want 10", len(items))
	}
}

func TestNormalizeForcesCountForMixedDishes(t *testing.T) {
	items := scan.NormalizeVisionResults([]domain.RawScanItem{{
		Name:      "Chicken Curry",
		FoodGroup: string(domain.FoodGroupMixedDishes),
		UnitType:  string(domain.UnitTypeWeight),
	}})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].UnitType != domain.UnitTypeCount {
		t.Fatalf("mixed dish unit type = %q, want Count", items[0].UnitType)
	}
}

func TestNormalizeBarcodeResultAttachesBarcodeAndImage(t *testing.T) {
	item := scan.NormalizeBarcodeResult(domain.RawScanItem{
		Name:      "Oat Milk",
		FoodGroup: string(domain.FoodGroupBeverages),
		UnitType:  string(domain.UnitTypeVolume),
	}, "4006381333931", "https://img.example/oat.jpg")

	if item.Barcode != "4006381333931" {
		t.Fatalf("barcode = %q", item.Barcode)
	}
	if item.ImageURL != "https://img.example/oat.jpg" {
		t.Fatalf("image url = %q", item.ImageURL)
	}
}

func TestExtractProductNamePriority(t *testing.T) {
	tests := []struct {
		name    string
		product domain.BarcodeProduct
		want    string
	}{
		{
			name: "first non-empty name field wins",
			product: domain.BarcodeProduct{
				NameFields: []string{"", "  ", "Nutella", "Hazelnut Spread"},
			},
			want: "Nutella",
		},
		{
			name: "brand plus first category",
			product: domain.BarcodeProduct{
				Brand:      "Ferrero",
				Categories: []string{"Spreads", "Breakfast"},
			},
			want: "Ferrero Spreads",
		},
		{
			name: "first three keywords",
			product: domain.BarcodeProduct{
				Keywords: []string{"hazelnut", "cocoa", "spread", "sweet"},
			},
			want: "hazelnut cocoa spread",
		},
		{
			name:    "placeholder when nothing usable",
			product: domain.BarcodeProduct{},
			want:    "Unknown Product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scan.ExtractProductName(&tt.product); got != tt.want {
				t.Fatalf("ExtractProductName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyProductHeuristically(t *testing.T) {
	tests := []struct {
		name      string
		info      domain.ExtractedProductInfo
		wantGroup domain.FoodGroup
		wantUnit  domain.UnitType
	}{
		{
			name:      "salmon classifies as seafood, not meat",
			info:      domain.ExtractedProductInfo{Name: "Wild Salmon Fillet"},
			wantGroup: domain.FoodGroupSeafood,
			wantUnit:  domain.UnitTypeWeight,
		},
		{
			name:      "cola classifies as beverage measured by volume",
			info:      domain.ExtractedProductInfo{Name: "Cola Zero", Categories: []string{"Drinks"}},
			wantGroup: domain.FoodGroupBeverages,
			wantUnit:  domain.UnitTypeVolume,
		},
		{
			name:      "category hints count when the name is opaque",
			info:      domain.ExtractedProductInfo{Name: "Brand X 500g", Categories: []string{"Cheese"}},
			wantGroup: domain.FoodGroupDairy,
			wantUnit:  domain.UnitTypeWeight,
		},
		{
			name:      "unrecognized text falls back to mixed dishes",
			info:      domain.ExtractedProductInfo{Name: "Xyzzy"},
			wantGroup: domain.FoodGroupMixedDishes,
			wantUnit:  domain.UnitTypeCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := scan.ClassifyProductHeuristically(tt.info)
			if raw.FoodGroup != string(tt.wantGroup) {
				t.Fatalf("food group = %q, want %q", raw.FoodGroup, tt.wantGroup)
			}
			if raw.UnitType != string(tt.wantUnit) {
				t.Fatalf("unit type = %q, want %q", raw.UnitType, tt.wantUnit)
			}
			if raw.Name != tt.info.Name {
				t.Fatalf("name = %q, want %q", raw.Name, tt.info.Name)
			}
		})
	}
}

func TestClassifyProductHeuristicallyShelfLife(t *testing.T) {
	raw := scan.ClassifyProductHeuristically(domain.ExtractedProductInfo{Name: "Chicken Thighs"})
	if raw.FoodGroup != string(domain.FoodGroupMeat) {
		t.Fatalf("food group = %q, want Meat", raw.FoodGroup)
	}
	if raw.ShelfLifePantryDays != 0 || raw.ShelfLifeFridgeDays != 4 || raw.ShelfLifeFreezerDays != 365 {
		t.Fatalf("meat shelf life = %d/%d/%d, want 0/4/365",
			raw.ShelfLifePantryDays, raw.ShelfLifeFridgeDays, raw.ShelfLifeFreezerDays)
	}
}
