package places

import (
	"Pento-Service/domain"
	"Pento-Service/pkg/entitlement"
	"Pento-Service/pkg/googleplaces"
	"context"
	"strings"
)

const defaultRadiusMeters = 2000

type (
	// PlacesService returns nearby shops and markets for a food group,
	// gated on the GROCERY_MAP entitlement.
	PlacesService interface {
		GetNearbyPlaces(ctx context.Context, req domain.NearbyPlacesRequest, userID string) ([]domain.NearbyPlace, error)
	}

	placesService struct {
		places       googleplaces.PlacesClient
		entitlements entitlement.EntitlementService
	}
)

func NewPlacesService(placesClient googleplaces.PlacesClient, entitlements entitlement.EntitlementService) PlacesService {
	return &placesService{
		places:       placesClient,
		entitlements: entitlements,
	}
}

func (s *placesService) GetNearbyPlaces(ctx context.Context, req domain.NearbyPlacesRequest, userID string) ([]domain.NearbyPlace, error) {
	if err := s.entitlements.CheckAndReserve(ctx, userID, domain.FeatureGroceryMap); err != nil {
		return nil, err
	}

	keywords := googleplaces.KeywordsForFoodGroup(domain.FoodGroup(req.FoodGroup))
	if len(keywords) == 0 {
		// Nothing to search for; the lookup never happened so usage is not
		// counted.
		return []domain.NearbyPlace{}, nil
	}

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	results, err := s.places.SearchNearby(ctx, req.Latitude, req.Longitude, radius, strings.Join(keywords, "|"))
	if err != nil {
		return nil, err
	}

	if err := s.entitlements.Commit(ctx, userID, domain.FeatureGroceryMap); err != nil {
		return nil, err
	}

	return results, nil
}
