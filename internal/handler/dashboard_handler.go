package handler

import (
	"strconv"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "6"))
	if err != nil || months < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid months parameter"))
	}

	stats, err := h.dashboardService.Stats(months)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(stats, "Dashboard stats retrieved successfully"))
}
