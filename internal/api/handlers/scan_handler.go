package handlers

import (
	"Pento-Service/domain"
	"Pento-Service/internal/api/presenters"
	"Pento-Service/pkg/scan"
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ScanHandler interface {
		ScanFoodImage(c *fiber.Ctx) error
		ScanReceipt(c *fiber.Ctx) error
		ScanBarcode(c *fiber.Ctx) error
	}

	scanHandler struct {
		scanService scan.ScanService
		validator   *validator.Validate
	}
)

func NewScanHandler(scanService scan.ScanService, validator *validator.Validate) ScanHandler {
	return &scanHandler{
		scanService: scanService,
		validator:   validator,
	}
}

func (h *scanHandler) ScanFoodImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	image, mimeType, err := readUpload(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.scanService.ScanFoodImage(c.Context(), image, mimeType, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedScanFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanFood)
}

func (h *scanHandler) ScanReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	image, mimeType, err := readUpload(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.scanService.ScanReceipt(c.Context(), image, mimeType, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedScanReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanReceipt)
}

func (h *scanHandler) ScanBarcode(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BarcodeScanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanBarcode, err)
	}

	res, err := h.scanService.ScanBarcode(c.Context(), req.Barcode, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForScanError(err), domain.MessageFailedScanBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanBarcode)
}

func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}
	return data, file.Header.Get("Content-Type"), nil
}

func statusForScanError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindEntitlementMissing, domain.KindQuotaExceeded:
		return fiber.StatusForbidden
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindUpstreamUnavailable:
		return fiber.StatusBadGateway
	case domain.KindConfiguration, domain.KindPersistenceFailure:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
