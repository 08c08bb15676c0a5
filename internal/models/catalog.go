package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CatalogDiscount struct {
	Type      DiscountType    `json:"type"`
	Value     decimal.Decimal `json:"value"`
	IsActive  bool            `json:"isActive"`
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
}

type CatalogProduct struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	FinalPrice    decimal.Decimal  `json:"finalPrice"`
	Stock         int              `json:"stock"`
	EnableCoupons bool             `json:"enableCoupons"`
	Discount      *CatalogDiscount `json:"discount"`
}

type CatalogCategory struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Priority int              `json:"priority"`
	Products []CatalogProduct `json:"products"`
}

// EffectiveAt mirrors Discount.EffectiveAt for the catalog projection.
func (d *CatalogDiscount) EffectiveAt(t time.Time) bool {
	return d.IsActive && !t.Before(d.StartDate) && !t.After(d.EndDate)
}
