package foodref

import (
	"Pento-Service/domain"
	"Pento-Service/entities"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type (
	// FoodRefService is the read-only catalog surface. Mutation happens only
	// through the scan flows.
	FoodRefService interface {
		GetFoodReferences(ctx context.Context, sort string) ([]entities.FoodReference, error)
		GetFoodReferenceByID(ctx context.Context, id string) (*entities.FoodReference, error)
		SearchFoodReferences(ctx context.Context, query string) ([]entities.FoodReference, error)
	}

	foodRefService struct {
		foodRefRepository FoodRefRepository
	}
)

func NewFoodRefService(foodRefRepository FoodRefRepository) FoodRefService {
	return &foodRefService{foodRefRepository: foodRefRepository}
}

func (s *foodRefService) GetFoodReferences(ctx context.Context, sort string) ([]entities.FoodReference, error) {
	refs, err := s.foodRefRepository.FindAll(ctx, sort)
	if err != nil {
		return nil, domain.NewFailure(domain.KindPersistenceFailure, "failed to fetch food references", err)
	}
	return refs, nil
}

func (s *foodRefService) GetFoodReferenceByID(ctx context.Context, id string) (*entities.FoodReference, error) {
	ref, err := s.foodRefRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewFailure(
				domain.KindNotFound,
				fmt.Sprintf("food reference with ID %s not found", id),
				domain.ErrReferenceNotFound,
			)
		}
		return nil, domain.NewFailure(domain.KindPersistenceFailure, "failed to fetch food reference", err)
	}
	return ref, nil
}

func (s *foodRefService) SearchFoodReferences(ctx context.Context, query string) ([]entities.FoodReference, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entities.FoodReference{}, nil
	}

	refs, err := s.foodRefRepository.Search(ctx, query)
	if err != nil {
		return nil, domain.NewFailure(domain.KindPersistenceFailure, "failed to search food references", err)
	}
	return refs, nil
}
