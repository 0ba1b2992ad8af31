// Package orders implements the order lifecycle state machine. All status
// mutation goes through Transition; services persist the result inside a
// unit of work.
package orders

import (
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/entity"
)

// ActorRole identifies who is asking for a transition.
type ActorRole string

const (
	ActorStaff    ActorRole = "staff"
	ActorCustomer ActorRole = "customer"
)

// transitions lists every legal edge. Absence means InvalidTransition.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending: {
		entity.OrderStatusAccepted,
		entity.OrderStatusRejected,
		entity.OrderStatusCancelledAdmin,
		entity.OrderStatusCancelledUser,
	},
	entity.OrderStatusAccepted: {
		entity.OrderStatusPreparing,
		entity.OrderStatusCancelledAdmin,
		entity.OrderStatusCancelledUser,
	},
	entity.OrderStatusPreparing: {
		entity.OrderStatusReady,
		entity.OrderStatusCancelledAdmin,
	},
	entity.OrderStatusReady: {
		entity.OrderStatusOutForDelivery,
		entity.OrderStatusCancelledAdmin,
	},
	entity.OrderStatusOutForDelivery: {
		entity.OrderStatusDelivered,
	},
}

// staffOnly edges a customer may never trigger. The only customer edge is
// cancelled_by_user; everything else belongs to staff.
func allowedFor(role ActorRole, target entity.OrderStatus) bool {
	if target == entity.OrderStatusCancelledUser {
		return role == ActorCustomer
	}
	return role == ActorStaff
}

// reasonRequired targets that must carry a non-empty reason.
var reasonRequired = map[entity.OrderStatus]bool{
	entity.OrderStatusRejected:       true,
	entity.OrderStatusCancelledAdmin: true,
	entity.OrderStatusCancelledUser:  true,
}

var terminal = map[entity.OrderStatus]bool{
	entity.OrderStatusDelivered:      true,
	entity.OrderStatusRejected:       true,
	entity.OrderStatusCancelledAdmin: true,
	entity.OrderStatusCancelledUser:  true,
}

// IsTerminal reports whether no further transition is possible from status.
func IsTerminal(status entity.OrderStatus) bool {
	return terminal[status]
}

// CanTransition reports whether the edge from -> to exists, regardless of actor.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NeedsReason reports whether target requires a reason.
func NeedsReason(target entity.OrderStatus) bool {
	return reasonRequired[target]
}

// ValidStatus reports whether s is one of the nine known statuses.
func ValidStatus(s entity.OrderStatus) bool {
	if terminal[s] {
		return true
	}
	_, ok := transitions[s]
	return ok
}

// Transition validates and applies a status change on the entity in place.
// It stamps acceptedAt/deliveredAt/cancelledAt and the cancellation actor,
// but does not persist; the caller owns the write.
func Transition(o *entity.Order, target entity.OrderStatus, role ActorRole, reason string, now time.Time) error {
	if !ValidStatus(target) {
		return apperr.Withf(apperr.ErrValidation, "unknown order status %q", target)
	}
	if !CanTransition(o.Status, target) {
		return apperr.Withf(apperr.ErrInvalidTransition, "cannot move order from %s to %s", o.Status, target)
	}
	if !allowedFor(role, target) {
		return apperr.Withf(apperr.ErrForbidden, "role %s may not set status %s", role, target)
	}
	if NeedsReason(target) && reason == "" {
		return apperr.Withf(apperr.ErrReasonRequired, "status %s requires a reason", target)
	}

	o.Status = target
	o.UpdatedAt = now

	switch target {
	case entity.OrderStatusAccepted:
		t := now
		o.AcceptedAt = &t
	case entity.OrderStatusDelivered:
		t := now
		o.DeliveredAt = &t
	case entity.OrderStatusRejected, entity.OrderStatusCancelledAdmin:
		t := now
		o.CancelledAt = &t
		o.Reason = &reason
		actor := entity.CancelActorAdmin
		o.CancelledBy = &actor
	case entity.OrderStatusCancelledUser:
		t := now
		o.CancelledAt = &t
		o.Reason = &reason
		actor := entity.CancelActorUser
		o.CancelledBy = &actor
	}
	return nil
}

// ValidateNew checks order creation input. Amount may be zero only for event
// bookings priced by staff later.
func ValidateNew(o *entity.Order) error {
	if o.CustomerName == "" || o.CustomerPhone == "" {
		return apperr.Withf(apperr.ErrValidation, "customer name and phone are required")
	}
	if o.Quantity <= 0 {
		return apperr.Withf(apperr.ErrValidation, "quantity must be positive")
	}
	if o.Amount < 0 {
		return apperr.Withf(apperr.ErrValidation, "amount must not be negative")
	}
	if o.Amount == 0 && !o.IsEventBooking() {
		return apperr.Withf(apperr.ErrValidation, "amount is required for %s orders", o.OrderType)
	}
	return nil
}

// EnsureDeletable gates hard deletion: only terminal orders may be removed.
func EnsureDeletable(o *entity.Order) error {
	if !IsTerminal(o.Status) {
		return apperr.Withf(apperr.ErrNotTerminal, "order in status %s cannot be deleted", o.Status)
	}
	return nil
}
