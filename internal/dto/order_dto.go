package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	CustomerName  string  `json:"customer_name" validate:"required,min=2"`
	CustomerPhone string  `json:"customer_phone" validate:"required,min=7,max=15"`
	Address       string  `json:"address" validate:"omitempty,max=500"`
	Notes         string  `json:"notes" validate:"omitempty,max=500"`
	ItemName      string  `json:"item_name" validate:"required"`
	OrderType     string  `json:"order_type" validate:"required,oneof=delivery table_booking cabin_booking kitty_party birthday_party club_meeting"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	PaymentMode   string  `json:"payment_mode" validate:"required,oneof=cash upi points"`
	PointsUsed    int     `json:"points_used" validate:"gte=0"`
}

type OrderResponse struct {
	Id            uuid.UUID  `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerTier  string     `json:"customer_tier"`
	Address       string     `json:"address,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	ItemName      string     `json:"item_name"`
	OrderType     string     `json:"order_type"`
	Amount        float64    `json:"amount"`
	Quantity      int        `json:"quantity"`
	PaymentMode   string     `json:"payment_mode"`
	Status        string     `json:"status"`
	PointsUsed    int        `json:"points_used"`
	PointsEarned  int        `json:"points_earned"`
	Reason        *string    `json:"reason,omitempty"`
	CancelledBy   *string    `json:"cancelled_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

type TransitionOrderRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type ListOrdersQuery struct {
	Status    string `query:"status"`
	OrderType string `query:"order_type"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}
