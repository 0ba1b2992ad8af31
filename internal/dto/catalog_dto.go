package dto

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type MenuCategoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItemRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=150"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Price       float64    `json:"price" validate:"required,gt=0"`
	CategoryId  *uuid.UUID `json:"category_id"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	IsAvailable bool       `json:"is_available"`
	IsVisible   bool       `json:"is_visible"`
}

type MenuItemResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Price        float64    `json:"price"`
	CategoryId   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name"`
	ImageURL     string     `json:"image_url,omitempty"`
	IsAvailable  bool       `json:"is_available"`
	CreatedAt    time.Time  `json:"created_at"`
}

type FestivalSpecialRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=150"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Price       float64    `json:"price" validate:"gte=0"`
	ImageURL    string     `json:"image_url" validate:"omitempty,url"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	IsActive    bool       `json:"is_active"`
}

type FestivalSpecialResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image_url,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// MenuResponse groups visible items under their categories. Items whose
// category no longer exists land in a synthetic "Uncategorized" bucket.
type MenuResponse struct {
	Categories []MenuCategorySection `json:"categories"`
	Specials   []FestivalSpecialResponse `json:"specials"`
}

type MenuCategorySection struct {
	Id    *uuid.UUID         `json:"id,omitempty"`
	Name  string             `json:"name"`
	Items []MenuItemResponse `json:"items"`
}
