package models

import "time"

type LicenseStatus string

const (
	LicenseStatusAvailable LicenseStatus = "AVAILABLE"
	LicenseStatusReserved  LicenseStatus = "RESERVED"
	LicenseStatusSold      LicenseStatus = "SOLD"
)

type License struct {
	ID        string        `json:"id"`
	ProductID string        `json:"productId"`
	Key       string        `json:"key"`
	Status    LicenseStatus `json:"status"`
	OrderID   *string       `json:"orderId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ImportLicensesRequest takes keys either as a list or as newline separated text.
type ImportLicensesRequest struct {
	Keys []string `json:"keys,omitempty" validate:"omitempty,max=5000,dive,max=512"`
	Text string   `json:"text,omitempty"`
}

type ImportLicensesResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
