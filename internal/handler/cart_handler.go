package handler

import (
	"errors"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *utils.Validator
}

func NewCartHandler(cartService *service.CartService, validator *utils.Validator) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	item, err := h.cartService.AddItem(userID, req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCartItem) {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(item, "Item added to cart"))
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	items, err := h.cartService.GetCart(userID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(items, "Cart retrieved successfully"))
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid cart item ID"))
	}

	if err := h.cartService.RemoveItem(userID, id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Item removed from cart"))
}

// Count backs the cart badge the client header polls every few seconds.
func (h *CartHandler) Count(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	count, err := h.cartService.Count(userID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(fiber.Map{"count": count}, ""))
}
