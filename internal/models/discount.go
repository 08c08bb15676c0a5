package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// Apply reduces price by value according to the discount type. The result is
// not clamped or rounded; callers finish with RoundPrice.
func (t DiscountType) Apply(price, value decimal.Decimal) decimal.Decimal {
	switch t {
	case DiscountTypePercentage:
		return price.Mul(decimal.NewFromInt(100).Sub(value)).Div(decimal.NewFromInt(100))
	case DiscountTypeFixed:
		return price.Sub(value)
	default:
		return price
	}
}

type Discount struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         DiscountType    `json:"type"`
	Value        decimal.Decimal `json:"value"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	IsActive     bool            `json:"isActive"`
	ProductCount int             `json:"productCount"`
	ProductIDs   []string        `json:"productIds,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// EffectiveAt reports whether the discount applies at t. Both bounds are inclusive.
func (d *Discount) EffectiveAt(t time.Time) bool {
	return d.IsActive && !t.Before(d.StartDate) && !t.After(d.EndDate)
}

// FlexibleTime accepts either an RFC3339 timestamp or a bare YYYY-MM-DD date.
type FlexibleTime struct {
	time.Time
	DateOnly bool
}

const dateLayout = "2006-01-02"

func (f *FlexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		f.Time, f.DateOnly = t, false
		return nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", raw)
	}

	f.Time, f.DateOnly = t, true

	return nil
}

func (f FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Time)
}

// Start is the first instant the value covers.
func (f FlexibleTime) Start() time.Time {
	return f.Time
}

// End is the last instant the value covers; a bare date covers the whole day.
func (f FlexibleTime) End() time.Time {
	if f.DateOnly {
		return f.Time.Add(24*time.Hour - time.Microsecond)
	}

	return f.Time
}

type CreateDiscountRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	Type       DiscountType    `json:"type" validate:"required,oneof=PERCENTAGE FIXED"`
	Value      decimal.Decimal `json:"value" validate:"gt=0"`
	StartDate  *FlexibleTime   `json:"startDate" validate:"required"`
	EndDate    *FlexibleTime   `json:"endDate" validate:"required"`
	IsActive   *bool           `json:"isActive,omitempty"`
	ProductIDs []string        `json:"productIds,omitempty" validate:"omitempty,dive,required"`
}

type UpdateDiscountRequest struct {
	Name       *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type       *DiscountType    `json:"type,omitempty" validate:"omitempty,oneof=PERCENTAGE FIXED"`
	Value      *decimal.Decimal `json:"value,omitempty" validate:"omitempty,gt=0"`
	StartDate  *FlexibleTime    `json:"startDate,omitempty"`
	EndDate    *FlexibleTime    `json:"endDate,omitempty"`
	IsActive   *bool            `json:"isActive,omitempty"`
	ProductIDs *[]string        `json:"productIds,omitempty" validate:"omitempty,dive,required"`
}
