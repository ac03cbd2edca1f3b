package googleplaces

import (
	"Pento-Service/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// foodGroupKeywords maps each food group to the localized search keywords
// used against the Places API.
var foodGroupKeywords = map[domain.FoodGroup][]string{
	domain.FoodGroupMeat:              {"cửa hàng thịt", "tiệm thịt", "chợ thịt", "siêu thị"},
	domain.FoodGroupSeafood:           {"hải sản", "cửa hàng hải sản", "chợ cá"},
	domain.FoodGroupFruitsVegetables:  {"cửa hàng trái cây", "trái cây", "rau củ", "cửa hàng rau củ"},
	domain.FoodGroupDairy:             {"sữa", "cửa hàng sữa", "sản phẩm từ sữa", "siêu thị"},
	domain.FoodGroupCerealGrainsPasta: {"tạp hóa", "cửa hàng tạp hóa", "siêu thị", "gạo", "mì pasta"},
	domain.FoodGroupLegumesNutsSeeds:  {"hạt dinh dưỡng", "cửa hàng hạt", "organic", "hạt điều"},
	domain.FoodGroupFatsOils:          {"dầu ăn", "siêu thị", "tạp hóa"},
	domain.FoodGroupConfectionery:     {"bánh kẹo", "tiệm bánh", "cửa hàng kẹo"},
	domain.FoodGroupBeverages:         {"đồ uống", "cửa hàng đồ uống", "tạp hóa", "siêu thị"},
	domain.FoodGroupCondiments:        {"gia vị", "nước chấm", "siêu thị", "tạp hóa"},
	domain.FoodGroupMixedDishes:       {"nhà hàng", "quán ăn", "đồ ăn mang đi"},
}

type (
	// PlacesClient finds food-related places around a coordinate. It is a
	// plain API wrapper; gating and usage accounting live in the caller.
	PlacesClient interface {
		SearchNearby(ctx context.Context, latitude, longitude float64, radiusMeters int, keyword string) ([]domain.NearbyPlace, error)
	}

	googlePlaces struct {
		apiKey     string
		httpClient *http.Client
	}
)

func NewPlacesClient(apiKey string) PlacesClient {
	return &googlePlaces{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// KeywordsForFoodGroup returns the search keywords for a food group, nil for
// an unknown group.
func KeywordsForFoodGroup(group domain.FoodGroup) []string {
	return foodGroupKeywords[group]
}

func (c *googlePlaces) SearchNearby(ctx context.Context, latitude, longitude float64, radiusMeters int, keyword string) ([]domain.NearbyPlace, error) {
	if c.apiKey == "" {
		return nil, domain.NewFailure(domain.KindConfiguration, "GOOGLE_PLACES_API_KEY is not configured", nil)
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", latitude, longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("keyword", keyword)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nearbySearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewFailure(domain.KindUpstreamUnavailable, "places request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewFailure(
			domain.KindUpstreamUnavailable,
			fmt.Sprintf("places API returned status %d", resp.StatusCode),
			nil,
		)
	}

	var placesResp struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
		Results      []struct {
			PlaceID  string `json:"place_id"`
			Name     string `json:"name"`
			Vicinity string `json:"vicinity"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
			Rating           float64  `json:"rating"`
			UserRatingsTotal int      `json:"user_ratings_total"`
			Types            []string `json:"types"`
			FormattedAddress string   `json:"formatted_address"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&placesResp); err != nil {
		return nil, domain.NewFailure(domain.KindUpstreamUnavailable, "failed to decode places response", err)
	}

	if placesResp.Status != "OK" && placesResp.Status != "ZERO_RESULTS" {
		return nil, domain.NewFailure(
			domain.KindUpstreamUnavailable,
			fmt.Sprintf("places API error: %s - %s", placesResp.Status, placesResp.ErrorMessage),
			nil,
		)
	}

	places := make([]domain.NearbyPlace, 0, len(placesResp.Results))
	for _, r := range placesResp.Results {
		address := r.Vicinity
		if address == "" {
			address = r.FormattedAddress
		}
		places = append(places, domain.NearbyPlace{
			PlaceID:          r.PlaceID,
			Name:             r.Name,
			Address:          address,
			Location:         domain.PlaceLocation{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			Types:            r.Types,
			Vicinity:         r.Vicinity,
		})
	}
	return places, nil
}
