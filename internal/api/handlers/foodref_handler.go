package handlers

import (
	"Pento-Service/domain"
	"Pento-Service/internal/api/presenters"
	"Pento-Service/pkg/foodref"

	"github.com/gofiber/fiber/v2"
)

type (
	FoodRefHandler interface {
		GetFoodReferences(c *fiber.Ctx) error
		GetFoodReferenceDetails(c *fiber.Ctx) error
		SearchFoodReferences(c *fiber.Ctx) error
	}

	foodRefHandler struct {
		foodRefService foodref.FoodRefService
	}
)

func NewFoodRefHandler(foodRefService foodref.FoodRefService) FoodRefHandler {
	return &foodRefHandler{foodRefService: foodRefService}
}

func (h *foodRefHandler) GetFoodReferences(c *fiber.Ctx) error {
	sort := c.Query("sort")

	refs, err := h.foodRefService.GetFoodReferences(c.Context(), sort)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedGetFoodRefs, err)
	}

	return presenters.SuccessResponse(c, refs, fiber.StatusOK, domain.MessageSuccessGetFoodRefs)
}

func (h *foodRefHandler) GetFoodReferenceDetails(c *fiber.Ctx) error {
	refID := c.Params("id")

	ref, err := h.foodRefService.GetFoodReferenceByID(c.Context(), refID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedGetFoodRefs, err)
	}

	return presenters.SuccessResponse(c, ref, fiber.StatusOK, domain.MessageSuccessGetFoodRefs)
}

func (h *foodRefHandler) SearchFoodReferences(c *fiber.Ctx) error {
	query := c.Query("q")

	refs, err := h.foodRefService.SearchFoodReferences(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedSearchFoodRef, err)
	}

	return presenters.SuccessResponse(c, refs, fiber.StatusOK, domain.MessageSuccessSearchFoodRef)
}
