package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type SubscriptionPlan string
type RequestStatus string
type PaymentStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"

	SubscriptionPlanYearly   SubscriptionPlan = "yearly"
	SubscriptionPlanLifetime SubscriptionPlan = "lifetime"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusActive   RequestStatus = "active"
	RequestStatusRejected RequestStatus = "rejected"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// SubscriptionRequest is a premium-membership application. Status moves
// exactly once, from pending to active or rejected, and is immutable after.
type SubscriptionRequest struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Plan           SubscriptionPlan
	Status         RequestStatus
	TransactionRef *string
	Amount         float64
	PaymentStatus  PaymentStatus
	RequestedAt    time.Time
	DecidedAt      *time.Time
	DecidedBy      *uuid.UUID
	RejectReason   *string    // present iff rejected
	ExpiryDate     *time.Time // present iff active and plan is time-bounded
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
