package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName  string     `gorm:"type:varchar(255);not null"`
	CustomerPhone string     `gorm:"type:varchar(20);not null"`
	CustomerTier  string     `gorm:"type:varchar(20);not null;default:'guest'"`
	Address       string     `gorm:"type:text"`
	Notes         string     `gorm:"type:text"`
	ItemName      string     `gorm:"type:varchar(255)"`
	OrderType     string     `gorm:"type:varchar(30);not null;index"`
	Amount        float64    `gorm:"not null;default:0"`
	Quantity      int        `gorm:"not null;default:1"`
	PaymentMode   string     `gorm:"type:varchar(20);not null;default:'cash'"`
	Status        string     `gorm:"type:varchar(30);not null;default:'pending';index"`

	PointsUsed     int     `gorm:"default:0"`
	PointsValue    float64 `gorm:"default:0"`
	PointsDeducted bool    `gorm:"default:false"`
	PointsEarned   int     `gorm:"default:0"`
	PointsCredited bool    `gorm:"default:false"`

	Reason      *string `gorm:"type:text"`
	CancelledBy *string `gorm:"type:varchar(10)"`

	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	AcceptedAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

func (Order) TableName() string {
	return "orders"
}
