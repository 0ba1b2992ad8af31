package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string
type OrderType string
type PaymentMode string
type CustomerTier string
type CancelActor string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusAccepted       OrderStatus = "accepted"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusRejected       OrderStatus = "rejected"
	OrderStatusCancelledAdmin OrderStatus = "cancelled_by_admin"
	OrderStatusCancelledUser  OrderStatus = "cancelled_by_user"

	OrderTypeDelivery      OrderType = "delivery"
	OrderTypeTableBooking  OrderType = "table_booking"
	OrderTypeCabinBooking  OrderType = "cabin_booking"
	OrderTypeKittyParty    OrderType = "kitty_party"
	OrderTypeBirthdayParty OrderType = "birthday_party"
	OrderTypeClubMeeting   OrderType = "club_meeting"

	PaymentModeCash   PaymentMode = "cash"
	PaymentModeUPI    PaymentMode = "upi"
	PaymentModePoints PaymentMode = "points"

	CustomerTierGuest      CustomerTier = "guest"
	CustomerTierRegistered CustomerTier = "registered"
	CustomerTierSubscriber CustomerTier = "subscriber"

	CancelActorAdmin CancelActor = "admin"
	CancelActorUser  CancelActor = "user"
)

// Order is a single fulfillment or booking request. Name and phone are
// denormalized at creation so the kitchen view survives profile edits.
type Order struct {
	Id            uuid.UUID
	UserId        *uuid.UUID // nil for guest orders
	CustomerName  string
	CustomerPhone string
	CustomerTier  CustomerTier
	Address       string
	Notes         string
	ItemName      string
	OrderType     OrderType
	Amount        float64
	Quantity      int
	PaymentMode   PaymentMode
	Status        OrderStatus

	// Loyalty bookkeeping. PointsDeducted and PointsCredited are write-once:
	// once true, no further ledger mutation for this order may happen.
	PointsUsed     int
	PointsValue    float64
	PointsDeducted bool
	PointsEarned   int
	PointsCredited bool

	Reason      *string
	CancelledBy *CancelActor

	CreatedAt   time.Time
	UpdatedAt   time.Time
	AcceptedAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// IsEventBooking reports whether the order is one of the party/event types
// whose amount is priced by staff after the fact (zero at creation is legal).
func (o *Order) IsEventBooking() bool {
	switch o.OrderType {
	case OrderTypeKittyParty, OrderTypeBirthdayParty, OrderTypeClubMeeting:
		return true
	}
	return false
}
