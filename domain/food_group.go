package domain

import "strings"

// FoodGroup is the closed 11-value food classification used across the
// catalog and every scan source.
type FoodGroup string

const (
	FoodGroupMeat              FoodGroup = "Meat"
	FoodGroupSeafood           FoodGroup = "Seafood"
	FoodGroupFruitsVegetables  FoodGroup = "FruitsVegetables"
	FoodGroupDairy             FoodGroup = "Dairy"
	FoodGroupCerealGrainsPasta FoodGroup = "CerealGrainsPasta"
	FoodGroupLegumesNutsSeeds  FoodGroup = "LegumesNutsSeeds"
	FoodGroupFatsOils          FoodGroup = "FatsOils"
	FoodGroupConfectionery     FoodGroup = "Confectionery"
	FoodGroupBeverages         FoodGroup = "Beverages"
	FoodGroupCondiments        FoodGroup = "Condiments"
	FoodGroupMixedDishes       FoodGroup = "MixedDishes"
)

// UnitType is how a food is measured.
type UnitType string

const (
	UnitTypeWeight UnitType = "Weight"
	UnitTypeCount  UnitType = "Count"
	UnitTypeVolume UnitType = "Volume"
)

var FoodGroups = []FoodGroup{
	FoodGroupMeat,
	FoodGroupSeafood,
	FoodGroupFruitsVegetables,
	FoodGroupDairy,
	FoodGroupCerealGrainsPasta,
	FoodGroupLegumesNutsSeeds,
	FoodGroupFatsOils,
	FoodGroupConfectionery,
	FoodGroupBeverages,
	FoodGroupCondiments,
	FoodGroupMixedDishes,
}

var UnitTypes = []UnitType{UnitTypeWeight, UnitTypeCount, UnitTypeVolume}

// FoodGroupEnumString and UnitTypeEnumString are the comma-joined enum lists
// interpolated into Gemini prompts.
var (
	FoodGroupEnumString = joinFoodGroups()
	UnitTypeEnumString  = "Weight, Count, Volume"
)

func joinFoodGroups() string {
	names := make([]string, 0, len(FoodGroups))
	for _, g := range FoodGroups {
		names = append(names, string(g))
	}
	return strings.Join(names, ", ")
}

func (g FoodGroup) Valid() bool {
	for _, known := range FoodGroups {
		if g == known {
			return true
		}
	}
	return false
}

func (u UnitType) Valid() bool {
	return u == UnitTypeWeight || u == UnitTypeCount || u == UnitTypeVolume
}
