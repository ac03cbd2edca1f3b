package domain

var (
	MessageSuccessGetNearbyPlaces = "nearby places fetched successfully"
	MessageFailedGetNearbyPlaces  = "failed to fetch nearby places"
)

type (
	NearbyPlacesRequest struct {
		FoodGroup    string  `query:"foodGroup" validate:"required,oneof=Meat Seafood FruitsVegetables Dairy CerealGrainsPasta LegumesNutsSeeds FatsOils Confectionery Beverages Condiments MixedDishes"`
		Latitude     float64 `query:"lat" validate:"latitude"`
		Longitude    float64 `query:"lng" validate:"longitude"`
		RadiusMeters int     `query:"radius" validate:"omitempty,min=1,max=50000"`
	}

	PlaceLocation struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}

	// NearbyPlace is one shop, market or restaurant near the user that sells
	// the requested food group.
	NearbyPlace struct {
		PlaceID          string        `json:"placeId"`
		Name             string        `json:"name"`
		Address          string        `json:"address,omitempty"`
		Location         PlaceLocation `json:"location"`
		Rating           float64       `json:"rating,omitempty"`
		UserRatingsTotal int           `json:"userRatingsTotal,omitempty"`
		Types            []string      `json:"types,omitempty"`
		Vicinity         string        `json:"vicinity,omitempty"`
	}
)
