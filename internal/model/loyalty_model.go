package model

import (
	"time"

	"github.com/google/uuid"
)

// PointsTransaction rows are append-only. The unique index on IdempotencyKey
// is what makes a retried credit a no-op instead of a double-credit.
type PointsTransaction struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Direction      string    `gorm:"type:varchar(10);not null"`
	Amount         int       `gorm:"not null"`
	SourceTag      string    `gorm:"type:varchar(50);not null"`
	IdempotencyKey *string   `gorm:"type:varchar(100);uniqueIndex"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (PointsTransaction) TableName() string {
	return "points_transactions"
}

type ReferralReward struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InviterId uuid.UUID `gorm:"type:uuid;not null;index"`
	InviteeId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Code      string    `gorm:"type:varchar(20);not null"`
	Amount    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ReferralReward) TableName() string {
	return "referral_rewards"
}
