package handler

import (
	"mime/multipart"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	courseService *service.CourseService
	validator     *utils.Validator
}

func NewCourseHandler(courseService *service.CourseService, validator *utils.Validator) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validator:     validator,
	}
}

func (h *CourseHandler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.courseService.GetCourses()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(courses, "Courses retrieved successfully"))
}

func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	course, err := h.courseService.GetCourse(id)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(course, "Course retrieved successfully"))
}

func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	req, thumbnail, err := h.parseCourseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	course, err := h.courseService.CreateCourse(*req, thumbnail)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(course, "Course created successfully"))
}

func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	req, thumbnail, err := h.parseCourseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	course, err := h.courseService.UpdateCourse(id, *req, thumbnail)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(course, "Course updated successfully"))
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	if err := h.courseService.DeleteCourse(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Course deleted successfully"))
}

func (h *CourseHandler) GetModules(c *fiber.Ctx) error {
	courseID, err := parseIDParam(c, "courseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	modules, err := h.courseService.GetModules(courseID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(modules, "Modules retrieved successfully"))
}

func (h *CourseHandler) CreateModule(c *fiber.Ctx) error {
	courseID, err := parseIDParam(c, "courseId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid course ID"))
	}

	var req models.CourseModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	video, _ := c.FormFile("video")

	module, err := h.courseService.CreateModule(courseID, req, video)
	if err != nil {
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(module, "Module created successfully"))
}

func (h *CourseHandler) UpdateModule(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid module ID"))
	}

	var req models.CourseModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	video, _ := c.FormFile("video")

	module, err := h.courseService.UpdateModule(id, req, video)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(module, "Module updated successfully"))
}

func (h *CourseHandler) DeleteModule(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid module ID"))
	}

	if err := h.courseService.DeleteModule(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Module deleted successfully"))
}

func (h *CourseHandler) parseCourseForm(c *fiber.Ctx) (*models.CourseRequest, *multipart.FileHeader, error) {
	var req models.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, nil, err
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, nil, err
	}

	// Thumbnail is optional on update, present on most creates.
	thumbnail, _ := c.FormFile("thumbnail")
	return &req, thumbnail, nil
}
