package entity

import (
	"time"

	"github.com/google/uuid"
)

type PointsDirection string

const (
	PointsDirectionEarned PointsDirection = "earned"
	PointsDirectionSpent  PointsDirection = "spent"
)

// Common source tags. Free-form strings are allowed, these are the ones the
// system itself writes.
const (
	PointsSourceReferralSignup   = "referral_signup"
	PointsSourceDeliveryCashback = "delivery_cashback"
	PointsSourceOrderPayment     = "order_payment"
	PointsSourceAdminAdjustment  = "admin_adjustment"
)

// PointsTransaction is one ledger entry. The user's balance is the signed sum
// of these rows; IdempotencyKey carries a unique index so a retried credit
// lands at most once.
type PointsTransaction struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Direction      PointsDirection
	Amount         int // always positive; Direction carries the sign
	SourceTag      string
	IdempotencyKey *string
	CreatedAt      time.Time
}

// Signed returns the entry's contribution to the balance.
func (t *PointsTransaction) Signed() int {
	if t.Direction == PointsDirectionSpent {
		return -t.Amount
	}
	return t.Amount
}

// ReferralReward is the audit record written when an inviter is credited for
// a signup. Exactly one per invitee.
type ReferralReward struct {
	Id        uuid.UUID
	InviterId uuid.UUID
	InviteeId uuid.UUID
	Code      string
	Amount    int
	CreatedAt time.Time
}
