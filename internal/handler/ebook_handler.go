package handler

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type EbookHandler struct {
	ebookService *service.EbookService
	validator    *utils.Validator
}

func NewEbookHandler(ebookService *service.EbookService, validator *utils.Validator) *EbookHandler {
	return &EbookHandler{
		ebookService: ebookService,
		validator:    validator,
	}
}

func (h *EbookHandler) GetEbooks(c *fiber.Ctx) error {
	ebooks, err := h.ebookService.GetEbooks()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(ebooks, "Ebooks retrieved successfully"))
}

func (h *EbookHandler) GetEbook(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ebook ID"))
	}

	ebook, err := h.ebookService.GetEbook(id)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(ebook, "Ebook retrieved successfully"))
}

func (h *EbookHandler) CreateEbook(c *fiber.Ctx) error {
	var req models.EbookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	cover, _ := c.FormFile("cover")
	file, _ := c.FormFile("file")

	ebook, err := h.ebookService.CreateEbook(req, cover, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(ebook, "Ebook created successfully"))
}

func (h *EbookHandler) UpdateEbook(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ebook ID"))
	}

	var req models.EbookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	cover, _ := c.FormFile("cover")
	file, _ := c.FormFile("file")

	ebook, err := h.ebookService.UpdateEbook(id, req, cover, file)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(ebook, "Ebook updated successfully"))
}

func (h *EbookHandler) DeleteEbook(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid ebook ID"))
	}

	if err := h.ebookService.DeleteEbook(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Ebook deleted successfully"))
}
