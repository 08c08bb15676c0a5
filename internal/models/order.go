package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	Email           string          `json:"email"`
	OriginalPrice   decimal.Decimal `json:"originalPrice"`
	FinalPrice      decimal.Decimal `json:"finalPrice"`
	CouponID        *string         `json:"couponId"`
	LicenseID       *string         `json:"licenseId"`
	Status          OrderStatus     `json:"status"`
	PaymentIntentID *string         `json:"paymentIntentId,omitempty"`
	LicenseKey      string          `json:"licenseKey,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type CreateOrderRequest struct {
	ProductID  string `json:"productId" validate:"required"`
	Email      string `json:"email" validate:"required,email,max=254"`
	CouponCode string `json:"couponCode,omitempty" validate:"max=64"`
}

type CheckoutResponse struct {
	Order        *Order `json:"order"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

// Quote is the price of one unit of a product after discount and coupon.
type Quote struct {
	OriginalPrice decimal.Decimal
	FinalPrice    decimal.Decimal
	Coupon        *Coupon
}
