package handler

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves blogs, testimonials, site FAQs and content blocks.
type ContentHandler struct {
	contentService *service.ContentService
	validator      *utils.Validator
}

func NewContentHandler(contentService *service.ContentService, validator *utils.Validator) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		validator:      validator,
	}
}

func (h *ContentHandler) GetBlogs(c *fiber.Ctx) error {
	blogs, err := h.contentService.GetBlogs()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(blogs, "Blogs retrieved successfully"))
}

func (h *ContentHandler) GetBlog(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid blog ID"))
	}

	blog, err := h.contentService.GetBlog(id)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(blog, "Blog retrieved successfully"))
}

func (h *ContentHandler) CreateBlog(c *fiber.Ctx) error {
	var req models.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	image, _ := c.FormFile("image")

	blog, err := h.contentService.CreateBlog(req, image)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(blog, "Blog created successfully"))
}

func (h *ContentHandler) UpdateBlog(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid blog ID"))
	}

	var req models.BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	image, _ := c.FormFile("image")

	blog, err := h.contentService.UpdateBlog(id, req, image)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(blog, "Blog updated successfully"))
}

func (h *ContentHandler) DeleteBlog(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid blog ID"))
	}

	if err := h.contentService.DeleteBlog(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Blog deleted successfully"))
}

func (h *ContentHandler) GetTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.contentService.GetTestimonials()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(testimonials, "Testimonials retrieved successfully"))
}

func (h *ContentHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req models.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	testimonial, err := h.contentService.CreateTestimonial(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(testimonial, "Testimonial created successfully"))
}

func (h *ContentHandler) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid testimonial ID"))
	}

	var req models.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	testimonial, err := h.contentService.UpdateTestimonial(id, req)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(testimonial, "Testimonial updated successfully"))
}

func (h *ContentHandler) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid testimonial ID"))
	}

	if err := h.contentService.DeleteTestimonial(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Testimonial deleted successfully"))
}

func (h *ContentHandler) GetFAQs(c *fiber.Ctx) error {
	faqs, err := h.contentService.GetFAQs()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(faqs, "FAQs retrieved successfully"))
}

func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var req models.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	faq, err := h.contentService.CreateFAQ(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(faq, "FAQ created successfully"))
}

func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid FAQ ID"))
	}

	var req models.FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	faq, err := h.contentService.UpdateFAQ(id, req)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(faq, "FAQ updated successfully"))
}

func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid FAQ ID"))
	}

	if err := h.contentService.DeleteFAQ(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "FAQ deleted successfully"))
}

func (h *ContentHandler) GetPageContent(c *fiber.Ctx) error {
	blocks, err := h.contentService.GetPageContent(c.Params("page"))
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(blocks, "Content retrieved successfully"))
}

func (h *ContentHandler) UpsertContent(c *fiber.Ctx) error {
	var req models.ContentBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	block, err := h.contentService.UpsertContent(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.JSON(models.SuccessResponse(block, "Content saved successfully"))
}
