package orders

import (
	"errors"
	"testing"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/entity"
)

func newOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		CustomerName:  "Asha",
		CustomerPhone: "9800000001",
		ItemName:      "Paneer Tikka",
		OrderType:     entity.OrderTypeDelivery,
		Amount:        450,
		Quantity:      1,
		PaymentMode:   entity.PaymentModeCash,
		Status:        status,
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.OrderStatus
		to      entity.OrderStatus
		role    ActorRole
		reason  string
		wantErr *apperr.Error
	}{
		{name: "pending to accepted", from: entity.OrderStatusPending, to: entity.OrderStatusAccepted, role: ActorStaff},
		{name: "accepted to preparing", from: entity.OrderStatusAccepted, to: entity.OrderStatusPreparing, role: ActorStaff},
		{name: "preparing to ready", from: entity.OrderStatusPreparing, to: entity.OrderStatusReady, role: ActorStaff},
		{name: "ready to out_for_delivery", from: entity.OrderStatusReady, to: entity.OrderStatusOutForDelivery, role: ActorStaff},
		{name: "out_for_delivery to delivered", from: entity.OrderStatusOutForDelivery, to: entity.OrderStatusDelivered, role: ActorStaff},
		{name: "pending rejected with reason", from: entity.OrderStatusPending, to: entity.OrderStatusRejected, role: ActorStaff, reason: "Out of stock"},
		{name: "ready admin cancel with reason", from: entity.OrderStatusReady, to: entity.OrderStatusCancelledAdmin, role: ActorStaff, reason: "Kitchen closed"},
		{name: "accepted user cancel with reason", from: entity.OrderStatusAccepted, to: entity.OrderStatusCancelledUser, role: ActorCustomer, reason: "Changed my mind"},

		{name: "skip a stage", from: entity.OrderStatusPending, to: entity.OrderStatusPreparing, role: ActorStaff, wantErr: apperr.ErrInvalidTransition},
		{name: "status regression", from: entity.OrderStatusReady, to: entity.OrderStatusAccepted, role: ActorStaff, wantErr: apperr.ErrInvalidTransition},
		{name: "reject after accept", from: entity.OrderStatusAccepted, to: entity.OrderStatusRejected, role: ActorStaff, wantErr: apperr.ErrInvalidTransition},
		{name: "user cancel too late", from: entity.OrderStatusPreparing, to: entity.OrderStatusCancelledUser, role: ActorCustomer, reason: "Too slow", wantErr: apperr.ErrInvalidTransition},
		{name: "admin cancel out_for_delivery", from: entity.OrderStatusOutForDelivery, to: entity.OrderStatusCancelledAdmin, role: ActorStaff, reason: "x", wantErr: apperr.ErrInvalidTransition},

		{name: "customer cannot accept", from: entity.OrderStatusPending, to: entity.OrderStatusAccepted, role: ActorCustomer, wantErr: apperr.ErrForbidden},
		{name: "customer cannot progress", from: entity.OrderStatusAccepted, to: entity.OrderStatusPreparing, role: ActorCustomer, wantErr: apperr.ErrForbidden},
		{name: "staff cannot user-cancel", from: entity.OrderStatusPending, to: entity.OrderStatusCancelledUser, role: ActorStaff, reason: "x", wantErr: apperr.ErrForbidden},

		{name: "reject without reason", from: entity.OrderStatusPending, to: entity.OrderStatusRejected, role: ActorStaff, wantErr: apperr.ErrReasonRequired},
		{name: "admin cancel without reason", from: entity.OrderStatusPending, to: entity.OrderStatusCancelledAdmin, role: ActorStaff, wantErr: apperr.ErrReasonRequired},
		{name: "user cancel without reason", from: entity.OrderStatusPending, to: entity.OrderStatusCancelledUser, role: ActorCustomer, wantErr: apperr.ErrReasonRequired},

		{name: "unknown target", from: entity.OrderStatusPending, to: entity.OrderStatus("shipped"), role: ActorStaff, wantErr: apperr.ErrValidation},
	}

	now := time.Now()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder(tt.from)
			err := Transition(o, tt.to, tt.role, tt.reason, now)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Transition() error = %v, want nil", err)
				}
				if o.Status != tt.to {
					t.Errorf("Status = %s, want %s", o.Status, tt.to)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Transition() error = %v, want code %s", err, tt.wantErr.Code)
			}
			if o.Status != tt.from {
				t.Errorf("Status mutated to %s on failed transition", o.Status)
			}
		})
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	terminals := []entity.OrderStatus{
		entity.OrderStatusDelivered,
		entity.OrderStatusRejected,
		entity.OrderStatusCancelledAdmin,
		entity.OrderStatusCancelledUser,
	}
	all := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusAccepted,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
		entity.OrderStatusOutForDelivery,
		entity.OrderStatusDelivered,
		entity.OrderStatusRejected,
		entity.OrderStatusCancelledAdmin,
		entity.OrderStatusCancelledUser,
	}

	for _, from := range terminals {
		if !IsTerminal(from) {
			t.Errorf("IsTerminal(%s) = false", from)
		}
		for _, to := range all {
			o := newOrder(from)
			err := Transition(o, to, ActorStaff, "reason", time.Now())
			if err == nil {
				t.Errorf("Transition(%s -> %s) succeeded, terminal states must be final", from, to)
			}
		}
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	o := newOrder(entity.OrderStatusPending)
	if err := Transition(o, entity.OrderStatusAccepted, ActorStaff, "", now); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if o.AcceptedAt == nil || !o.AcceptedAt.Equal(now) {
		t.Errorf("AcceptedAt = %v, want %v", o.AcceptedAt, now)
	}

	o = newOrder(entity.OrderStatusOutForDelivery)
	if err := Transition(o, entity.OrderStatusDelivered, ActorStaff, "", now); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if o.DeliveredAt == nil || !o.DeliveredAt.Equal(now) {
		t.Errorf("DeliveredAt = %v, want %v", o.DeliveredAt, now)
	}

	o = newOrder(entity.OrderStatusPending)
	if err := Transition(o, entity.OrderStatusRejected, ActorStaff, "Out of stock", now); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if o.Reason == nil || *o.Reason != "Out of stock" {
		t.Errorf("Reason = %v, want Out of stock", o.Reason)
	}
	if o.CancelledBy == nil || *o.CancelledBy != entity.CancelActorAdmin {
		t.Errorf("CancelledBy = %v, want admin", o.CancelledBy)
	}
	if o.CancelledAt == nil {
		t.Error("CancelledAt not stamped")
	}

	o = newOrder(entity.OrderStatusAccepted)
	if err := Transition(o, entity.OrderStatusCancelledUser, ActorCustomer, "Plans changed", now); err != nil {
		t.Fatalf("user cancel: %v", err)
	}
	if o.CancelledBy == nil || *o.CancelledBy != entity.CancelActorUser {
		t.Errorf("CancelledBy = %v, want user", o.CancelledBy)
	}
}

func TestValidateNew(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.Order)
		wantErr bool
	}{
		{name: "valid delivery order", mutate: func(o *entity.Order) {}},
		{name: "missing name", mutate: func(o *entity.Order) { o.CustomerName = "" }, wantErr: true},
		{name: "missing phone", mutate: func(o *entity.Order) { o.CustomerPhone = "" }, wantErr: true},
		{name: "zero quantity", mutate: func(o *entity.Order) { o.Quantity = 0 }, wantErr: true},
		{name: "negative amount", mutate: func(o *entity.Order) { o.Amount = -10 }, wantErr: true},
		{name: "zero amount delivery", mutate: func(o *entity.Order) { o.Amount = 0 }, wantErr: true},
		{name: "zero amount kitty party", mutate: func(o *entity.Order) {
			o.Amount = 0
			o.OrderType = entity.OrderTypeKittyParty
		}},
		{name: "zero amount birthday party", mutate: func(o *entity.Order) {
			o.Amount = 0
			o.OrderType = entity.OrderTypeBirthdayParty
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder(entity.OrderStatusPending)
			tt.mutate(o)
			err := ValidateNew(o)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNew() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("error = %v, want validation code", err)
			}
		})
	}
}

func TestEnsureDeletable(t *testing.T) {
	if err := EnsureDeletable(newOrder(entity.OrderStatusRejected)); err != nil {
		t.Errorf("terminal order should be deletable: %v", err)
	}
	err := EnsureDeletable(newOrder(entity.OrderStatusPreparing))
	if !errors.Is(err, apperr.ErrNotTerminal) {
		t.Errorf("EnsureDeletable(preparing) = %v, want NOT_TERMINAL", err)
	}
}
