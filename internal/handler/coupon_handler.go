package handler

import (
	"errors"

	"github.com/finversity/finversity-backend/internal/models"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CouponHandler struct {
	couponService *service.CouponService
	validator     *utils.Validator
}

func NewCouponHandler(couponService *service.CouponService, validator *utils.Validator) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		validator:     validator,
	}
}

func (h *CouponHandler) GetCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.GetCoupons()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(coupons, "Coupons retrieved successfully"))
}

func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var req models.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	coupon, err := h.couponService.CreateCoupon(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(coupon, "Coupon created successfully"))
}

func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid coupon ID"))
	}

	var req models.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	coupon, err := h.couponService.UpdateCoupon(id, req)
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(coupon, "Coupon updated successfully"))
}

func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid coupon ID"))
	}

	if err := h.couponService.DeleteCoupon(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Coupon deleted successfully"))
}

// Apply validates a code against an order amount and returns the pricing
// breakdown the client shows before checkout.
func (h *CouponHandler) Apply(c *fiber.Ctx) error {
	var req models.ApplyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	quote, err := h.couponService.Apply(req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Coupon not found"))
		}
		if errors.Is(err, service.ErrCouponNotActive) ||
			errors.Is(err, service.ErrCouponExhausted) ||
			errors.Is(err, service.ErrBelowMinimumAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(quote, "Coupon applied"))
}

func (h *CouponHandler) Redeem(c *fiber.Ctx) error {
	var req models.RedeemCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.couponService.Redeem(req.Code); err != nil {
		if errors.Is(err, service.ErrCouponExhausted) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(nil, "Coupon redeemed"))
}

func (h *CouponHandler) GetCustomCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.GetCustomCoupons()
	if err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(coupons, "Custom coupons retrieved successfully"))
}

func (h *CouponHandler) CreateCustomCoupon(c *fiber.Ctx) error {
	var req models.CustomCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	coupon, err := h.couponService.CreateCustomCoupon(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(coupon, "Custom coupon created successfully"))
}

func (h *CouponHandler) DeleteCustomCoupon(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid coupon ID"))
	}

	if err := h.couponService.DeleteCustomCoupon(id); err != nil {
		return dataError(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Custom coupon deleted successfully"))
}
