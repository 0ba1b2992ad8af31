package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleRegistered UserRole = "registered"
	UserRoleSubscriber UserRole = "subscriber"
	UserRoleAdmin      UserRole = "admin"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  *string
	FullName      string
	Phone         string
	Role          UserRole
	Status        UserStatus
	EmailVerified bool

	// Loyalty. Points is derived state: it must equal the signed sum of the
	// user's points transactions. Only the loyalty ledger writes it.
	Points              int
	ReferralCode        string  // unique, stable, upper-cased
	ReferredBy          *string // inviter's code, set once at signup
	TotalReferrals      int
	FirstOrderCompleted bool

	// Subscription mirror, written only by the membership workflow.
	SubscriptionStatus  *SubscriptionStatus
	SubscriptionPlan    *SubscriptionPlan
	SubscriptionStart   *time.Time
	SubscriptionExpiry  *time.Time
	SubscriptionExpired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	IpAddress string
	UserAgent string
}
