package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionRequest struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Plan           string     `gorm:"type:varchar(20);not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	TransactionRef *string    `gorm:"type:varchar(100)"`
	Amount         float64    `gorm:"not null;default:0"`
	PaymentStatus  string     `gorm:"type:varchar(20);not null;default:'pending'"`
	RequestedAt    time.Time  `gorm:"not null"`
	DecidedAt      *time.Time
	DecidedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectReason   *string    `gorm:"type:text"`
	ExpiryDate     *time.Time
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (SubscriptionRequest) TableName() string {
	return "subscription_requests"
}
