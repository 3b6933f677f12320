package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"swiftregistry/internal/model"
	"swiftregistry/internal/service"
)

// SwiftHandler handles API requests for SWIFT codes
type SwiftHandler struct {
	service service.SwiftService
	log     *zap.Logger
}

// NewSwiftHandler creates a new handler instance
func NewSwiftHandler(service service.SwiftService, log *zap.Logger) *SwiftHandler {
	return &SwiftHandler{service: service, log: log}
}

// GetByCode handles requests for a specific SWIFT code
func (h *SwiftHandler) GetByCode(c fiber.Ctx) error {
	code := strings.ToUpper(c.Params("swiftCode"))

	bank, err := h.service.GetSwiftCodeDetails(c.Context(), code)
	if err != nil {
		h.log.Info("get by code failed", zap.String("swiftCode", code), zap.Error(err))
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(bank)
}

// GetByCountry handles requests for all SWIFT codes by country
func (h *SwiftHandler) GetByCountry(c fiber.Ctx) error {
	countryCode := strings.ToUpper(c.Params("countryISO2code"))

	codes, err := h.service.GetSwiftCodesByCountry(c.Context(), countryCode)
	if err != nil {
		h.log.Info("get by country failed", zap.String("countryISO2", countryCode), zap.Error(err))
		return handleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(codes)
}

// Create handles creation of a new SWIFT code
func (h *SwiftHandler) Create(c fiber.Ctx) error {
	var bank model.SwiftBank

	if err := c.Bind().Body(&bank); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.service.CreateSwiftCode(c.Context(), &bank); err != nil {
		h.log.Info("create failed", zap.String("swiftCode", bank.SwiftCode), zap.Error(err))
		return handleError(c, err)
	}

	h.log.Info("swift code created", zap.String("swiftCode", bank.SwiftCode))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "SWIFT code created successfully",
	})
}

// Delete handles deletion of a SWIFT code
func (h *SwiftHandler) Delete(c fiber.Ctx) error {
	code := strings.ToUpper(c.Params("swiftCode"))

	if err := h.service.DeleteSwiftCode(c.Context(), code); err != nil {
		h.log.Info("delete failed", zap.String("swiftCode", code), zap.Error(err))
		return handleError(c, err)
	}

	h.log.Info("swift code deleted", zap.String("swiftCode", code))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "SWIFT code deleted successfully",
	})
}

// Helper function for error handling
func handleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "SWIFT code not found",
		})
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input provided",
		})
	case errors.Is(err, service.ErrHeadquarterMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Headquarters SWIFT codes must end with XXX and branch codes must not",
		})
	case errors.Is(err, service.ErrCountryConflict):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Country name does not match existing entries for this ISO2 code",
		})
	case errors.Is(err, service.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "SWIFT code already exists",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
