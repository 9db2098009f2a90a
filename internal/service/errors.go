package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateCartItem  = errors.New("product is already in the cart")
	ErrCouponNotActive    = errors.New("coupon is not active")
	ErrCouponExhausted    = errors.New("coupon usage limit reached")
	ErrBelowMinimumAmount = errors.New("order amount is below the coupon minimum")
)
