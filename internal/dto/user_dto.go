package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Phone          string     `json:"phone"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	Points         int        `json:"points"`
	ReferralCode   string     `json:"referral_code"`
	ReferredBy     *string    `json:"referred_by,omitempty"`
	TotalReferrals int        `json:"total_referrals"`
	Subscription   *MySubscriptionResponse `json:"subscription,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=15"`
}
