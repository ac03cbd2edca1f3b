package domain

import "errors"

// Feature codes gated by entitlements.
const (
	FeatureFoodScan    = "FOOD_SCAN"
	FeatureReceiptScan = "RECEIPT_SCAN"
	FeatureBarcodeScan = "BARCODE_SCAN"
	FeatureAIChef      = "AI_CHEF"
	FeatureGroceryMap  = "GROCERY_MAP"
)

var (
	MessageSuccessScanFood    = "food image scanned successfully"
	MessageSuccessScanReceipt = "receipt scanned successfully"
	MessageSuccessScanBarcode = "barcode scanned successfully"

	MessageFailedScanFood    = "failed to scan food image"
	MessageFailedScanReceipt = "failed to scan receipt"
	MessageFailedScanBarcode = "failed to scan barcode"

	MessageNoFoodDetected  = "no food items detected in the image"
	MessageNoReceiptItems  = "no food items could be extracted from the receipt"
	MessageAllItemsMatched = "all scanned items matched existing food references"

	ErrOCRFailed          = errors.New("receipt text extraction failed")
	ErrProductNotFound    = errors.New("product not found for barcode")
	ErrReferenceNotFound  = errors.New("food reference not found")
	ErrInvalidScanPayload = errors.New("scan result payload is malformed")
)

type (
	// RawScanItem is one strictly decoded item from the AI collaborator.
	// Decoding fails closed: a missing name or an enum value outside the
	// closed sets rejects the whole payload.
	RawScanItem struct {
		Name                 string `json:"name" validate:"required"`
		FoodGroup            string `json:"foodGroup" validate:"required,oneof=Meat Seafood FruitsVegetables Dairy CerealGrainsPasta LegumesNutsSeeds FatsOils Confectionery Beverages Condiments MixedDishes"`
		Notes                string `json:"notes"`
		ShelfLifePantryDays  int    `json:"typicalShelfLifeDays_Pantry" validate:"min=0"`
		ShelfLifeFridgeDays  int    `json:"typicalShelfLifeDays_Fridge" validate:"min=0"`
		ShelfLifeFreezerDays int    `json:"typicalShelfLifeDays_Freezer" validate:"min=0"`
		UnitType             string `json:"unitType" validate:"required,oneof=Weight Count Volume"`
	}

	// ObservedItem is one normalized food observation, not yet reconciled
	// against the catalog. Produced from exactly one source record and
	// consumed once by the resolver.
	ObservedItem struct {
		Name                 string
		FoodGroup            FoodGroup
		Notes                string
		ShelfLifePantryDays  int
		ShelfLifeFridgeDays  int
		ShelfLifeFreezerDays int
		UnitType             UnitType
		Barcode              string
		ImageURL             string
	}

	// ResolvedItem is the per-item display payload returned to the caller.
	// IsExistingReference true means no catalog write happened for it.
	ResolvedItem struct {
		Name                 string    `json:"name"`
		FoodGroup            FoodGroup `json:"foodGroup"`
		Notes                string    `json:"notes"`
		ShelfLifePantryDays  int       `json:"typicalShelfLifeDays_Pantry"`
		ShelfLifeFridgeDays  int       `json:"typicalShelfLifeDays_Fridge"`
		ShelfLifeFreezerDays int       `json:"typicalShelfLifeDays_Freezer"`
		UnitType             UnitType  `json:"unitType"`
		ImageURL             string    `json:"imageUrl,omitempty"`
		Barcode              string    `json:"barcode,omitempty"`
		ReferenceID          string    `json:"referenceId"`
		IsExistingReference  bool      `json:"isExistingReference"`
	}

	ScanResponse struct {
		Success    bool           `json:"success"`
		Items      []ResolvedItem `json:"items"`
		CreatedIDs []string       `json:"createdIds"`
		Error      string         `json:"error,omitempty"`
	}

	BarcodeScanRequest struct {
		Barcode string `json:"barcode" validate:"required,numeric,min=8,max=14"`
	}

	BarcodeScanResponse struct {
		Success   bool          `json:"success"`
		Item      *ResolvedItem `json:"item"`
		CreatedID *string       `json:"createdId"`
		Error     string        `json:"error,omitempty"`
	}

	// BarcodeProduct is the product payload returned by the product-lookup
	// collaborator, already lifted out of its wire shape. NameFields keeps
	// the localized name candidates in priority order.
	BarcodeProduct struct {
		NameFields      []string
		Brand           string
		Categories      []string
		FoodGroupHints  []string
		Quantity        string
		ServingSize     string
		ServingQuantity float64
		ProductQuantity float64
		Ingredients     string
		Labels          []string
		Packaging       []string
		Keywords        []string
		Nutriments      map[string]any
		NutriscoreGrade string
		NovaGroup       int
		EcoscoreGrade   string
		ImageURL        string
	}

	// ExtractedProductInfo is the intermediate structure handed to the AI
	// normalizer (and to the heuristic fallback) for barcode products.
	ExtractedProductInfo struct {
		Name            string         `json:"name"`
		Brand           string         `json:"brand,omitempty"`
		Categories      []string       `json:"categories,omitempty"`
		FoodGroupHints  []string       `json:"foodGroupHints,omitempty"`
		Quantity        string         `json:"quantity,omitempty"`
		ServingSize     string         `json:"servingSize,omitempty"`
		ServingQuantity float64        `json:"servingQuantity,omitempty"`
		ProductQuantity float64        `json:"productQuantity,omitempty"`
		Ingredients     string         `json:"ingredients,omitempty"`
		Labels          []string       `json:"labels,omitempty"`
		Packaging       []string       `json:"packaging,omitempty"`
		Keywords        []string       `json:"keywords,omitempty"`
		Nutriments      map[string]any `json:"nutriments,omitempty"`
		NutriscoreGrade string         `json:"nutriscoreGrade,omitempty"`
		NovaGroup       int            `json:"novaGroup,omitempty"`
		EcoscoreGrade   string         `json:"ecoscoreGrade,omitempty"`
	}

	// ImageResult is one image-search hit for a food name.
	ImageResult struct {
		ImageURL string `json:"imageUrl"`
		Title    string `json:"title"`
	}
)
