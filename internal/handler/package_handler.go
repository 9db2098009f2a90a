package handler

import (
	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type PackageHandler struct {
	packageService *service.PackageService
	validator      *utils.Validator
}

func NewPackageHandler(packageService *service.PackageService, validator *utils.Validator) *PackageHandler {
	return &PackageHandler{
		packageService: packageService,
		validator:      validator,
	}
}

func (h *PackageHandler) GetPackages(c *fiber.Ctx) error {
	packages, err := h.packageService.GetPackages()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(packages, "Packages retrieved successfully"))
}

func (h *PackageHandler) GetPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	pkg, err := h.packageService.GetPackage(id)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(pkg, "Package retrieved successfully"))
}

func (h *PackageHandler) CreatePackage(c *fiber.Ctx) error {
	var req models.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	pkg, err := h.packageService.CreatePackage(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(pkg, "Package created successfully"))
}

func (h *PackageHandler) UpdatePackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	var req models.PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	pkg, err := h.packageService.UpdatePackage(id, req)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(pkg, "Package updated successfully"))
}

func (h *PackageHandler) DeletePackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid package ID"))
	}

	if err := h.packageService.DeletePackage(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Package deleted successfully"))
}

// RecordPurchase appends a row to the package ledger once the gateway
// widget reports success client-side.
func (h *PackageHandler) RecordPurchase(c *fiber.Ctx) error {
	var req models.PackagePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	purchase, err := h.packageService.RecordPurchase(req)
	if err != nil {
		return dataError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(purchase, "Package purchase recorded"))
}

func (h *PackageHandler) GetUserPurchases(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user ID"))
	}

	purchases, err := h.packageService.GetUserPurchases(userID)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(purchases, "Package purchases retrieved successfully"))
}
