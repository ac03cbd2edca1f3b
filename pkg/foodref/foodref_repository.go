package foodref

import (
	"Pento-Service/domain"
	"Pento-Service/entities"
	"context"

	"gorm.io/gorm"
)

const searchLimit = 50

type (
	FoodRefRepository interface {
		FindAll(ctx context.Context, sort string) ([]entities.FoodReference, error)
		FindByID(ctx context.Context, id string) (*entities.FoodReference, error)
		Search(ctx context.Context, query string) ([]entities.FoodReference, error)
	}

	foodRefRepository struct {
		db *gorm.DB
	}
)

func NewFoodRefRepository(db *gorm.DB) FoodRefRepository {
	return &foodRefRepository{db: db}
}

func (r *foodRefRepository) FindAll(ctx context.Context, sort string) ([]entities.FoodReference, error) {
	order := "name asc"
	if sort == domain.SortNewest {
		order = "created_at desc"
	}

	var refs []entities.FoodReference
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order(order).
		Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *foodRefRepository) FindByID(ctx context.Context, id string) (*entities.FoodReference, error) {
	var ref entities.FoodReference
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *foodRefRepository) Search(ctx context.Context, query string) ([]entities.FoodReference, error) {
	pattern := "%" + query + "%"

	var refs []entities.FoodReference
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND (name ILIKE ? OR barcode ILIKE ?)", false, pattern, pattern).
		Order("name asc").
		Limit(searchLimit).
		Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}
