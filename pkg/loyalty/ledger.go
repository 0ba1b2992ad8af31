// Package loyalty owns all points balance mutation and referral resolution.
// The balance on the user row is derived state: it is updated only here,
// together with the ledger row, inside the caller's transaction.
package loyalty

import (
	"context"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Credit appends an earned entry and increments the user's balance. The uow
// must already be inside Begin; commit/rollback stays with the caller so the
// credit can join a larger atomic write (signup, delivery cashback).
//
// A non-empty idempotencyKey makes the credit land at most once: a second
// invocation with the same key is a no-op returning the current balance.
func (l *Ledger) Credit(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amount int, sourceTag, idempotencyKey string) (int, error) {
	if amount <= 0 {
		return 0, apperr.Withf(apperr.ErrInvalidAmount, "credit amount must be positive, got %d", amount)
	}

	if idempotencyKey != "" {
		existing, err := uow.PointsRepository().FindOne(ctx, specification.ByIdempotencyKey{Key: idempotencyKey})
		if err != nil {
			return 0, apperr.Persistence(err)
		}
		if existing != nil {
			user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
			if err != nil {
				return 0, apperr.Persistence(err)
			}
			if user == nil {
				return 0, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
			}
			return user.Points, nil
		}
	}

	// Lock the row: two concurrent credits with distinct keys must both land,
	// and an unlocked read-modify-write lets the second overwrite the first.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}, specification.ForUpdate{})
	if err != nil {
		return 0, apperr.Persistence(err)
	}
	if user == nil {
		return 0, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}

	entry := &entity.PointsTransaction{
		UserId:    userId,
		Direction: entity.PointsDirectionEarned,
		Amount:    amount,
		SourceTag: sourceTag,
	}
	if idempotencyKey != "" {
		entry.IdempotencyKey = &idempotencyKey
	}
	if err := uow.PointsRepository().Create(ctx, entry); err != nil {
		return 0, apperr.Persistence(err)
	}

	user.Points += amount
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return 0, apperr.Persistence(err)
	}
	return user.Points, nil
}

// Debit appends a spent entry and decrements the balance. Fails with
// InsufficientBalance before writing anything when the balance is too low.
func (l *Ledger) Debit(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amount int, sourceTag string) (int, error) {
	if amount <= 0 {
		return 0, apperr.Withf(apperr.ErrInvalidAmount, "debit amount must be positive, got %d", amount)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}, specification.ForUpdate{})
	if err != nil {
		return 0, apperr.Persistence(err)
	}
	if user == nil {
		return 0, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}
	if user.Points < amount {
		return 0, apperr.Withf(apperr.ErrInsufficientBalance, "balance %d is below %d", user.Points, amount)
	}

	entry := &entity.PointsTransaction{
		UserId:    userId,
		Direction: entity.PointsDirectionSpent,
		Amount:    amount,
		SourceTag: sourceTag,
	}
	if err := uow.PointsRepository().Create(ctx, entry); err != nil {
		return 0, apperr.Persistence(err)
	}

	user.Points -= amount
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return 0, apperr.Persistence(err)
	}
	return user.Points, nil
}

// CashbackFor computes the delivery cashback for an order amount.
func CashbackFor(orderAmount float64, rate float64) int {
	if orderAmount <= 0 || rate <= 0 {
		return 0
	}
	return int(orderAmount * rate)
}
