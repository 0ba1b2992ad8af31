package entity

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategory struct {
	Id        uuid.UUID
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuItem's category reference is soft: deleting a category leaves its items
// orphaned, and the read path surfaces them under an "Uncategorized" bucket.
type MenuItem struct {
	Id          uuid.UUID
	Name        string
	Description string
	Price       float64
	CategoryId  *uuid.UUID
	ImageURL    string
	IsAvailable bool
	IsVisible   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type FestivalSpecial struct {
	Id          uuid.UUID
	Name        string
	Description string
	Price       float64
	ImageURL    string
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
