package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubscriptionRequestRequest struct {
	Plan string `json:"plan" validate:"required,oneof=yearly lifetime"`
}

type CreateSubscriptionRequestResponse struct {
	RequestId   uuid.UUID `json:"request_id"`
	Plan        string    `json:"plan"`
	Amount      float64   `json:"amount"`
	SnapToken   string    `json:"snap_token,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`
}

type SubscriptionRequestResponse struct {
	Id            uuid.UUID  `json:"id"`
	UserId        uuid.UUID  `json:"user_id"`
	Plan          string     `json:"plan"`
	Status        string     `json:"status"`
	Amount        float64    `json:"amount"`
	PaymentStatus string     `json:"payment_status"`
	RequestedAt   time.Time  `json:"requested_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	RejectReason  *string    `json:"reject_reason,omitempty"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
}

type MySubscriptionResponse struct {
	Status     string     `json:"status"`
	Plan       *string    `json:"plan,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	IsExpired  bool       `json:"is_expired"`
}

type RejectSubscriptionRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// MidtransWebhookRequest mirrors the notification payload midtrans posts to
// the callback endpoint.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	TransactionId     string `json:"transaction_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status"`
}
