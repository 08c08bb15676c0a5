package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Priority int    `json:"priority"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Priority *int    `json:"priority,omitempty"`
}
