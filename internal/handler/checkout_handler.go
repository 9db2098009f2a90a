package handler

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *utils.Validator
}

func NewCheckoutHandler(checkoutService *service.CheckoutService, validator *utils.Validator) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
	}
}

func (h *CheckoutHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	order, err := h.checkoutService.CreateOrder(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(order, "Order created"))
}

// RecordPurchase is called by the client after the gateway widget reports
// payment success with its payment reference.
func (h *CheckoutHandler) RecordPurchase(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.RecordPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	purchases, err := h.checkoutService.RecordPurchase(userID, req)
	if err != nil {
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(purchases, "Purchase recorded"))
}

func (h *CheckoutHandler) GetPurchaseHistory(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	purchases, err := h.checkoutService.GetPurchaseHistory(userID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(purchases, "Purchase history retrieved successfully"))
}
