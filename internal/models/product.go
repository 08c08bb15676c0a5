package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	IsActive      bool            `json:"isActive"`
	CategoryID    *string         `json:"categoryId"`
	DiscountID    *string         `json:"discountId"`
	EnableCoupons bool            `json:"enableCoupons"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description,omitempty" validate:"max=5000"`
	Price         decimal.Decimal `json:"price" validate:"gte=0"`
	IsActive      *bool           `json:"isActive,omitempty"`
	CategoryID    *string         `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	EnableCoupons *bool           `json:"enableCoupons,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price         *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool            `json:"isActive,omitempty"`
	CategoryID    *string          `json:"categoryId,omitempty"`
	EnableCoupons *bool            `json:"enableCoupons,omitempty"`
}
