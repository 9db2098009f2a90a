package handler

import (
	"errors"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	commentService *service.CommentService
	validator      *utils.Validator
}

func NewCommentHandler(commentService *service.CommentService, validator *utils.Validator) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *CommentHandler) GetByProduct(c *fiber.Ctx) error {
	productType := c.Params("productType")
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid product ID"))
	}

	comments, err := h.commentService.GetByProduct(productType, productID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(comments, "Comments retrieved successfully"))
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	comment, err := h.commentService.Create(userID, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(comment, "Comment created successfully"))
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid comment ID"))
	}

	var req models.CommentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	comment, err := h.commentService.Update(userID, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotCommentOwner) {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
		}
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(comment, "Comment updated successfully"))
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid comment ID"))
	}

	if err := h.commentService.Delete(userID, id); err != nil {
		if errors.Is(err, service.ErrNotCommentOwner) {
			return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
		}
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Comment deleted successfully"))
}
