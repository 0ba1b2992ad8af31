package model

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	SortOrder int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}

// CategoryId has no FK constraint on purpose: category deletion orphans the
// item rather than cascading, and the read path buckets orphans separately.
type MenuItem struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Price       float64    `gorm:"not null;default:0"`
	CategoryId  *uuid.UUID `gorm:"type:uuid;index"`
	ImageURL    string     `gorm:"type:text"`
	IsAvailable bool       `gorm:"default:true"`
	IsVisible   bool       `gorm:"default:true"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

type FestivalSpecial struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null;default:0"`
	ImageURL    string    `gorm:"type:text"`
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (FestivalSpecial) TableName() string {
	return "festival_specials"
}
