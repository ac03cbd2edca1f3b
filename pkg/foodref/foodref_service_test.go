package foodref_test

import (
	"Pento-Service/domain"
	"Pento-Service/entities"
	"Pento-Service/pkg/foodref"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeFoodRefRepo struct {
	refs        []entities.FoodReference
	lastSort    string
	searchCalls int
}

func (r *fakeFoodRefRepo) FindAll(ctx context.Context, sort string) ([]entities.FoodReference, error) {
	r.lastSort = sort
	return r.refs, nil
}

func (r *fakeFoodRefRepo) FindByID(ctx context.Context, id string) (*entities.FoodReference, error) {
	for i := range r.refs {
		if r.refs[i].ID.String() == id {
			return &r.refs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFoodRefRepo) Search(ctx context.Context, query string) ([]entities.FoodReference, error) {
	r.searchCalls++
	return r.refs, nil
}

func TestGetFoodReferencesPassesSortThrough(t *testing.T) {
	repo := &fakeFoodRefRepo{refs: []entities.FoodReference{{ID: uuid.New(), Name: "Apple"}}}
	svc := foodref.NewFoodRefService(repo)

	refs, err := svc.GetFoodReferences(context.Background(), domain.SortNewest)
	if err != nil {
		t.Fatalf("GetFoodReferences: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1", len(refs))
	}
	if repo.lastSort != domain.SortNewest {
		t.Fatalf("sort = %q, want %q", repo.lastSort, domain.SortNewest)
	}
}

func TestGetFoodReferenceByIDNotFound(t *testing.T) {
	svc := foodref.NewFoodRefService(&fakeFoodRefRepo{})

	_, err := svc.GetFoodReferenceByID(context.Background(), uuid.NewString())
	if domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("err = %v, want not-found failure", err)
	}
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("err must wrap ErrReferenceNotFound, got %v", err)
	}
}

func TestGetFoodReferenceByIDFound(t *testing.T) {
	id := uuid.New()
	repo := &fakeFoodRefRepo{refs: []entities.FoodReference{{ID: id, Name: "Milk"}}}
	svc := foodref.NewFoodRefService(repo)

	ref, err := svc.GetFoodReferenceByID(context.Background(), id.String())
	if err != nil {
		t.Fatalf("GetFoodReferenceByID: %v", err)
	}
	if ref.Name != "Milk" {
		t.Fatalf("name = %q, want Milk", ref.Name)
	}
}

func TestSearchFoodReferencesBlankQuery(t *testing.T) {
	repo := &fakeFoodRefRepo{refs: []entities.FoodReference{{ID: uuid.New(), Name: "Apple"}}}
	svc := foodref.NewFoodRefService(repo)

	refs, err := svc.SearchFoodReferences(context.Background(), "   ")
	if err != nil {
		t.Fatalf("SearchFoodReferences: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("blank query must return nothing, got %d refs", len(refs))
	}
	if repo.searchCalls != 0 {
		t.Fatal("blank query must not hit the repository")
	}
}
