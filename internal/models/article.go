package models

import "time"

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateArticleRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"isPublished"`
}

type UpdateArticleRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug        *string `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
	Content     *string `json:"content,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}
