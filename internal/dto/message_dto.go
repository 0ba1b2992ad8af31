package dto

import "github.com/google/uuid"

// PublishOrderDeliveredMessage is the payload carried on the internal queue
// between the order service and the cashback consumer.
type PublishOrderDeliveredMessage struct {
	OrderId uuid.UUID `json:"order_id"`
}
