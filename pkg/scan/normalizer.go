package scan

import (
	"Pento-Service/domain"
	"regexp"
	"strings"
)

// Upstream batches are bounded per source; anything beyond is dropped.
const (
	maxVisionItems  = 5
	maxReceiptItems = 10
)

// NormalizeVisionResults converts raw vision items into observed items,
// keeping at most the first five.
func NormalizeVisionResults(raw []domain.RawScanItem) []domain.ObservedItem {
	return normalizeBatch(raw, maxVisionItems)
}

// NormalizeReceiptResults converts raw receipt items into observed items,
// keeping at most the first ten.
func NormalizeReceiptResults(raw []domain.RawScanItem) []domain.ObservedItem {
	return normalizeBatch(raw, maxReceiptItems)
}

func normalizeBatch(raw []domain.RawScanItem, limit int) []domain.ObservedItem {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	items := make([]domain.ObservedItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, normalizeItem(r))
	}
	return items
}

// NormalizeBarcodeResult builds the observed item for a barcode product from
// the AI (or heuristic) result, attaching the barcode and any product image.
func NormalizeBarcodeResult(raw domain.RawScanItem, barcode, imageURL string) domain.ObservedItem {
	item := normalizeItem(raw)
	item.Barcode = barcode
	item.ImageURL = imageURL
	return item
}

func normalizeItem(raw domain.RawScanItem) domain.ObservedItem {
	item := domain.ObservedItem{
		Name:                 raw.Name,
		FoodGroup:            domain.FoodGroup(raw.FoodGroup),
		Notes:                raw.Notes,
		ShelfLifePantryDays:  raw.ShelfLifePantryDays,
		ShelfLifeFridgeDays:  raw.ShelfLifeFridgeDays,
		ShelfLifeFreezerDays: raw.ShelfLifeFreezerDays,
		UnitType:             domain.UnitType(raw.UnitType),
	}

	// Mixed dishes are always counted, whatever the source said.
	if item.FoodGroup == domain.FoodGroupMixedDishes {
		item.UnitType = domain.UnitTypeCount
	}

	return item
}

// ExtractProductName picks a display name for a barcode product: the first
// non-empty localized name field, then brand plus the first category, then
// the first three keywords, then a literal placeholder.
func ExtractProductName(p *domain.BarcodeProduct) string {
	for _, name := range p.NameFields {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed
		}
	}

	if p.Brand != "" && len(p.Categories) > 0 {
		return p.Brand + " " + p.Categories[0]
	}

	if len(p.Keywords) > 0 {
		keywords := p.Keywords
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		return strings.Join(keywords, " ")
	}

	return "Unknown Product"
}

// ExtractProductInfo assembles the intermediate structure handed to the AI
// normalizer for barcode products.
func ExtractProductInfo(p *domain.BarcodeProduct) domain.ExtractedProductInfo {
	return domain.ExtractedProductInfo{
		Name:            ExtractProductName(p),
		Brand:           p.Brand,
		Categories:      p.Categories,
		FoodGroupHints:  p.FoodGroupHints,
		Quantity:        p.Quantity,
		ServingSize:     p.ServingSize,
		ServingQuantity: p.ServingQuantity,
		ProductQuantity: p.ProductQuantity,
		Ingredients:     p.Ingredients,
		Labels:          p.Labels,
		Packaging:       p.Packaging,
		Keywords:        p.Keywords,
		Nutriments:      p.Nutriments,
		NutriscoreGrade: p.NutriscoreGrade,
		NovaGroup:       p.NovaGroup,
		EcoscoreGrade:   p.EcoscoreGrade,
	}
}

type shelfLifeDefaults struct {
	pantry, fridge, freezer int
}

// Curated per-group storage defaults (days). Used only when the AI
// normalizer is unavailable for barcode products.
var groupShelfLife = map[domain.FoodGroup]shelfLifeDefaults{
	domain.FoodGroupMeat:              {0, 4, 365},
	domain.FoodGroupSeafood:           {0, 2, 180},
	domain.FoodGroupFruitsVegetables:  {7, 14, 365},
	domain.FoodGroupDairy:             {0, 10, 90},
	domain.FoodGroupCerealGrainsPasta: {365, 0, 0},
	domain.FoodGroupLegumesNutsSeeds:  {365, 0, 365},
	domain.FoodGroupFatsOils:          {365, 0, 0},
	domain.FoodGroupConfectionery:     {180, 0, 0},
	domain.FoodGroupBeverages:         {270, 7, 0},
	domain.FoodGroupCondiments:        {365, 60, 0},
	domain.FoodGroupMixedDishes:       {0, 4, 90},
}

var groupUnitType = map[domain.FoodGroup]domain.UnitType{
	domain.FoodGroupBeverages:   domain.UnitTypeVolume,
	domain.FoodGroupFatsOils:    domain.UnitTypeVolume,
	domain.FoodGroupMixedDishes: domain.UnitTypeCount,
}

var groupPatterns = []struct {
	group   domain.FoodGroup
	pattern *regexp.Regexp
}{
	{domain.FoodGroupSeafood, regexp.MustCompile(`(?i)\b(fish|seafood|salmon|tuna|shrimp|prawn|crab|squid|sardine|anchov|mussel|oyster)`)},
	{domain.FoodGroupMeat, regexp.MustCompile(`(?i)\b(meat|beef|pork|chicken|poultry|lamb|turkey|ham|bacon|sausage|salami)`)},
	{domain.FoodGroupDairy, regexp.MustCompile(`(?i)\b(milk|dairy|cheese|yogurt|yoghurt|butter|cream|kefir)`)},
	{domain.FoodGroupFruitsVegetables, regexp.MustCompile(`(?i)\b(fruit|vegetable|apple|banana|orange|tomato|carrot|spinach|lettuce|berr|mango|grape|onion|potato)`)},
	{domain.FoodGroupCerealGrainsPasta, regexp.MustCompile(`(?i)\b(cereal|grain|pasta|noodle|rice|bread|flour|oat|wheat|barley|quinoa)`)},
	{domain.FoodGroupLegumesNutsSeeds, regexp.MustCompile(`(?i)\b(bean|lentil|legume|chickpea|nut|almond|cashew|peanut|seed|soy|tofu)`)},
	{domain.FoodGroupFatsOils, regexp.MustCompile(`(?i)\b(oil|margarine|lard|ghee|shortening)`)},
	{domain.FoodGroupConfectionery, regexp.MustCompile(`(?i)\b(chocolate|candy|cand(y|ies)|sweet|confection|biscuit|cookie|cake|pastry|dessert|gum)`)},
	{domain.FoodGroupBeverages, regexp.MustCompile(`(?i)\b(beverage|drink|juice|soda|cola|water|tea|coffee|beer|wine|smoothie)`)},
	{domain.FoodGroupCondiments, regexp.MustCompile(`(?i)\b(sauce|condiment|ketchup|mustard|mayonnaise|vinegar|spice|seasoning|salt|pepper|dressing|syrup)`)},
}

// ClassifyProductHeuristically assigns a food group by keyword matching over
// the product's name, categories, hints and keywords, then fills unit type
// and shelf lives from the per-group defaults. Deterministic; no I/O.
func ClassifyProductHeuristically(info domain.ExtractedProductInfo) domain.RawScanItem {
	var sb strings.Builder
	sb.WriteString(info.Name)
	sb.WriteByte(' ')
	sb.WriteString(strings.Join(info.Categories, " "))
	sb.WriteByte(' ')
	sb.WriteString(strings.Join(info.FoodGroupHints, " "))
	sb.WriteByte(' ')
	sb.WriteString(strings.Join(info.Keywords, " "))
	text := sb.String()

	group := domain.FoodGroupMixedDishes
	for _, gp := range groupPatterns {
		if gp.pattern.MatchString(text) {
			group = gp.group
			break
		}
	}

	unit, ok := groupUnitType[group]
	if !ok {
		unit = domain.UnitTypeWeight
	}
	life := groupShelfLife[group]

	notes := ""
	if info.Brand != "" {
		notes = "Brand: " + info.Brand
	}

	return domain.RawScanItem{
		Name:                 info.Name,
		FoodGroup:            string(group),
		Notes:                notes,
		ShelfLifePantryDays:  life.pantry,
		ShelfLifeFridgeDays:  life.fridge,
		ShelfLifeFreezerDays: life.freezer,
		UnitType:             string(unit),
	}
}
