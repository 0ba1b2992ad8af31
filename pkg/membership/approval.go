// Package membership implements the subscription approval workflow: a
// one-shot pending -> active/rejected decision mirrored atomically onto the
// requester's profile.
package membership

import (
	"context"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// ExpiryFor computes a plan's expiry from its activation time. Lifetime
// plans never expire.
func ExpiryFor(plan entity.SubscriptionPlan, now time.Time) *time.Time {
	if plan == entity.SubscriptionPlanLifetime {
		return nil
	}
	t := now.AddDate(1, 0, 0)
	return &t
}

// Approve flips a pending request to active and mirrors the subscription
// onto the requester's profile. The request row is read under FOR UPDATE so
// of two concurrent admins the second blocks, then re-reads the decided row
// and gets AlreadyDecided.
func (m *Manager) Approve(ctx context.Context, uow unitofwork.UnitOfWork, requestId, adminId uuid.UUID, now time.Time) (*entity.SubscriptionRequest, error) {
	req, err := uow.SubscriptionRequestRepository().FindOne(ctx, specification.ByID{ID: requestId}, specification.ForUpdate{})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if req == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "subscription request %s not found", requestId)
	}
	if req.Status != entity.RequestStatusPending {
		return nil, apperr.Withf(apperr.ErrAlreadyDecided, "request is already %s", req.Status)
	}

	expiry := ExpiryFor(req.Plan, now)
	req.Status = entity.RequestStatusActive
	req.DecidedAt = &now
	req.DecidedBy = &adminId
	req.ExpiryDate = expiry
	if err := uow.SubscriptionRequestRepository().Update(ctx, req); err != nil {
		return nil, apperr.Persistence(err)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId}, specification.ForUpdate{})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", req.UserId)
	}

	status := entity.SubscriptionStatusActive
	plan := req.Plan
	start := now
	user.Role = entity.UserRoleSubscriber
	user.SubscriptionStatus = &status
	user.SubscriptionPlan = &plan
	user.SubscriptionStart = &start
	user.SubscriptionExpiry = expiry
	user.SubscriptionExpired = false
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Persistence(err)
	}

	return req, nil
}

// Reject flips a pending request to rejected with a mandatory reason and
// mirrors the inactive status onto the profile.
func (m *Manager) Reject(ctx context.Context, uow unitofwork.UnitOfWork, requestId, adminId uuid.UUID, reason string, now time.Time) (*entity.SubscriptionRequest, error) {
	if reason == "" {
		return nil, apperr.Withf(apperr.ErrReasonRequired, "a rejection reason is required")
	}

	req, err := uow.SubscriptionRequestRepository().FindOne(ctx, specification.ByID{ID: requestId}, specification.ForUpdate{})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if req == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "subscription request %s not found", requestId)
	}
	if req.Status != entity.RequestStatusPending {
		return nil, apperr.Withf(apperr.ErrAlreadyDecided, "request is already %s", req.Status)
	}

	req.Status = entity.RequestStatusRejected
	req.DecidedAt = &now
	req.DecidedBy = &adminId
	req.RejectReason = &reason
	if err := uow.SubscriptionRequestRepository().Update(ctx, req); err != nil {
		return nil, apperr.Persistence(err)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId}, specification.ForUpdate{})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", req.UserId)
	}

	status := entity.SubscriptionStatusInactive
	user.Role = entity.UserRoleRegistered
	user.SubscriptionStatus = &status
	user.SubscriptionPlan = nil
	user.SubscriptionStart = nil
	user.SubscriptionExpiry = nil
	user.SubscriptionExpired = false
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Persistence(err)
	}

	return req, nil
}

// IsExpired reports whether an active subscription with the given expiry has
// lapsed at now. Nil expiry means lifetime.
func IsExpired(expiry *time.Time, now time.Time) bool {
	return expiry != nil && expiry.Before(now)
}
