package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	ValidFrom     *time.Time      `json:"validFrom"`
	ValidUntil    *time.Time      `json:"validUntil"`
	IsReusable    bool            `json:"isReusable"`
	IsUsed        bool            `json:"isUsed"`
	UseCount      int             `json:"useCount"`
	ProductID     *string         `json:"productId"`
	CategoryID    *string         `json:"categoryId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NormalizeCouponCode is the canonical stored form of a code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCouponRequest is intentionally untagged: a blank code has its own
// rejection reason rather than a generic validation failure.
type ValidateCouponRequest struct {
	Code      string `json:"code"`
	ProductID string `json:"productId"`
}

type CouponAcceptance struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
}

type CreateCouponRequest struct {
	Code          string          `json:"code" validate:"required,min=1,max=64"`
	DiscountType  DiscountType    `json:"discountType" validate:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue decimal.Decimal `json:"discountValue" validate:"gt=0"`
	ValidFrom     *FlexibleTime   `json:"validFrom,omitempty"`
	ValidUntil    *FlexibleTime   `json:"validUntil,omitempty"`
	IsReusable    bool            `json:"isReusable"`
	ProductID     *string         `json:"productId,omitempty" validate:"omitempty,min=1"`
	CategoryID    *string         `json:"categoryId,omitempty" validate:"omitempty,min=1"`
}

type UpdateCouponRequest struct {
	DiscountType  *DiscountType    `json:"discountType,omitempty" validate:"omitempty,oneof=PERCENTAGE FIXED"`
	DiscountValue *decimal.Decimal `json:"discountValue,omitempty" validate:"omitempty,gt=0"`
	ValidFrom     *FlexibleTime    `json:"validFrom,omitempty"`
	ValidUntil    *FlexibleTime    `json:"validUntil,omitempty"`
	IsReusable    *bool            `json:"isReusable,omitempty"`
	IsUsed        *bool            `json:"isUsed,omitempty"`
	ProductID     *string          `json:"productId,omitempty"`
	CategoryID    *string          `json:"categoryId,omitempty"`
}
