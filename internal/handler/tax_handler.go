package handler

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type TaxHandler struct {
	taxService *service.TaxService
	validator  *utils.Validator
}

func NewTaxHandler(taxService *service.TaxService, validator *utils.Validator) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
		validator:  validator,
	}
}

func (h *TaxHandler) GetTaxes(c *fiber.Ctx) error {
	taxes, err := h.taxService.GetTaxes()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(taxes, "Taxes retrieved successfully"))
}

func (h *TaxHandler) GetByProductType(c *fiber.Ctx) error {
	tax, err := h.taxService.GetByProductType(c.Params("productType"))
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(tax, "Tax retrieved successfully"))
}

func (h *TaxHandler) CreateTax(c *fiber.Ctx) error {
	var req models.TaxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	tax, err := h.taxService.CreateTax(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(tax, "Tax created successfully"))
}

func (h *TaxHandler) UpdateTax(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tax ID"))
	}

	var req models.TaxRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	tax, err := h.taxService.UpdateTax(id, req)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(tax, "Tax updated successfully"))
}

func (h *TaxHandler) DeleteTax(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tax ID"))
	}

	if err := h.taxService.DeleteTax(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Tax deleted successfully"))
}
