package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Offset converts a 1-based page into a row offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
