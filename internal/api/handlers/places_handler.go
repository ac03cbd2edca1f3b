package handlers

import (
	"Pento-Service/domain"
	"Pento-Service/internal/api/presenters"
	"Pento-Service/pkg/places"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlacesHandler interface {
		GetNearbyPlaces(c *fiber.Ctx) error
	}

	placesHandler struct {
		placesService places.PlacesService
		validator     *validator.Validate
	}
)

func NewPlacesHandler(placesService places.PlacesService, validator *validator.Validate) PlacesHandler {
	return &placesHandler{
		placesService: placesService,
		validator:     validator,
	}
}

func (h *placesHandler) GetNearbyPlaces(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.NearbyPlacesRequest)

	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyPlaces, err)
	}

	results, err := h.placesService.GetNearbyPlaces(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedGetNearbyPlaces, err)
	}

	return presenters.SuccessResponse(c, results, fiber.StatusOK, domain.MessageSuccessGetNearbyPlaces)
}
