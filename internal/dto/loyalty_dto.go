package dto

import (
	"time"

	"github.com/google/uuid"
)

type PointsBalanceResponse struct {
	UserId         uuid.UUID `json:"user_id"`
	Points         int       `json:"points"`
	TotalReferrals int       `json:"total_referrals"`
	ReferralCode   string    `json:"referral_code"`
}

type PointsHistoryEntry struct {
	Id        uuid.UUID `json:"id"`
	Direction string    `json:"direction"`
	Amount    int       `json:"amount"`
	SourceTag string    `json:"source_tag"`
	CreatedAt time.Time `json:"created_at"`
}

type PointsHistoryResponse struct {
	Balance int                  `json:"balance"`
	History []PointsHistoryEntry `json:"history"`
}

type AdminAdjustPointsRequest struct {
	UserId    uuid.UUID `json:"user_id" validate:"required"`
	Direction string    `json:"direction" validate:"required,oneof=earned spent"`
	Amount    int       `json:"amount" validate:"required,gt=0"`
	Note      string    `json:"note" validate:"omitempty,max=200"`
}

type ReferralRewardResponse struct {
	Id        uuid.UUID `json:"id"`
	InviterId uuid.UUID `json:"inviter_id"`
	InviteeId uuid.UUID `json:"invitee_id"`
	Code      string    `json:"code"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
