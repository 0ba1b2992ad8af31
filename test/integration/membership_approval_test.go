package integration

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/model"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/membership"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedSubscriptionRequest(t *testing.T, db *gorm.DB, userId uuid.UUID, plan string) uuid.UUID {
	t.Helper()
	req := &model.SubscriptionRequest{
		Id:          uuid.New(),
		UserId:      userId,
		Plan:        plan,
		Status:      "pending",
		Amount:      999,
		RequestedAt: time.Now(),
	}
	if err := db.Create(req).Error; err != nil {
		t.Fatalf("Failed to seed subscription request: %v", err)
	}
	return req.Id
}

func TestSubscriptionApprovalOneShot(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	adminId := seedUser(t, db, "approver@example.com", "admin", nil)
	userId := seedUser(t, db, "applicant@example.com", "registered", nil)
	requestId := seedSubscriptionRequest(t, db, userId, "yearly")

	factory := unitofwork.NewRepositoryFactory(db)
	manager := membership.NewManager()
	now := time.Now()

	// First approval wins.
	uow := factory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.Begin(ctx))
	req, err := manager.Approve(ctx, uow, requestId, adminId, now)
	assert.NoError(t, err)
	assert.NoError(t, uow.Commit())

	if assert.NotNil(t, req) {
		assert.NotNil(t, req.DecidedAt)
		if assert.NotNil(t, req.ExpiryDate) {
			assert.WithinDuration(t, now.AddDate(1, 0, 0), *req.ExpiryDate, time.Minute)
		}
	}

	// Profile mirror was written in the same transaction.
	var role, subStatus, subPlan string
	db.Raw("SELECT role FROM users WHERE id = ?", userId).Scan(&role)
	db.Raw("SELECT subscription_status FROM users WHERE id = ?", userId).Scan(&subStatus)
	db.Raw("SELECT subscription_plan FROM users WHERE id = ?", userId).Scan(&subPlan)
	assert.Equal(t, "subscriber", role)
	assert.Equal(t, "active", subStatus)
	assert.Equal(t, "yearly", subPlan)

	// Second decision, either direction, is refused.
	uow = factory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.Begin(ctx))
	_, err = manager.Approve(ctx, uow, requestId, adminId, time.Now())
	assert.ErrorIs(t, err, apperr.ErrAlreadyDecided)
	_, err = manager.Reject(ctx, uow, requestId, adminId, "changed my mind", time.Now())
	assert.ErrorIs(t, err, apperr.ErrAlreadyDecided)
	assert.NoError(t, uow.Rollback())
}

// An approve and a reject racing on the same pending request: exactly one
// decision commits and the loser gets AlreadyDecided. The row lock on the
// request read is what forces the loser to observe the winner's write.
func TestConcurrentDecisionsOneWins(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	adminA := seedUser(t, db, "race-admin-a@example.com", "admin", nil)
	adminB := seedUser(t, db, "race-admin-b@example.com", "admin", nil)
	userId := seedUser(t, db, "race-applicant@example.com", "registered", nil)
	requestId := seedSubscriptionRequest(t, db, userId, "yearly")

	factory := unitofwork.NewRepositoryFactory(db)
	manager := membership.NewManager()

	decide := func(run func(uow unitofwork.UnitOfWork) error) error {
		uow := factory.NewUnitOfWork(ctx)
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		if err := run(uow); err != nil {
			uow.Rollback()
			return err
		}
		return uow.Commit()
	}

	var wg sync.WaitGroup
	var approveErr, rejectErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		approveErr = decide(func(uow unitofwork.UnitOfWork) error {
			_, err := manager.Approve(ctx, uow, requestId, adminA, time.Now())
			return err
		})
	}()
	go func() {
		defer wg.Done()
		rejectErr = decide(func(uow unitofwork.UnitOfWork) error {
			_, err := manager.Reject(ctx, uow, requestId, adminB, "lost the race", time.Now())
			return err
		})
	}()
	wg.Wait()

	winners := 0
	for _, err := range []error{approveErr, rejectErr} {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, apperr.ErrAlreadyDecided)
		}
	}
	assert.Equal(t, 1, winners, "exactly one decision must commit")

	// Request and profile mirror agree with whichever decision won.
	var reqStatus string
	db.Raw("SELECT status FROM subscription_requests WHERE id = ?", requestId).Scan(&reqStatus)

	var role string
	db.Raw("SELECT role FROM users WHERE id = ?", userId).Scan(&role)

	if errors.Is(rejectErr, apperr.ErrAlreadyDecided) {
		assert.Equal(t, "active", reqStatus)
		assert.Equal(t, "subscriber", role)
	} else {
		assert.Equal(t, "rejected", reqStatus)
		assert.Equal(t, "registered", role)
	}
}

func TestSubscriptionRejection(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	adminId := seedUser(t, db, "rejector@example.com", "admin", nil)
	userId := seedUser(t, db, "rejectee@example.com", "registered", nil)
	requestId := seedSubscriptionRequest(t, db, userId, "yearly")

	factory := unitofwork.NewRepositoryFactory(db)
	manager := membership.NewManager()

	t.Run("reason is mandatory", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		_, err := manager.Reject(ctx, uow, requestId, adminId, "", time.Now())
		assert.ErrorIs(t, err, apperr.ErrReasonRequired)
		assert.NoError(t, uow.Rollback())
	})

	t.Run("rejection mirrors inactive status", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		req, err := manager.Reject(ctx, uow, requestId, adminId, "payment unverified", time.Now())
		assert.NoError(t, err)
		assert.NoError(t, uow.Commit())

		if assert.NotNil(t, req) && assert.NotNil(t, req.RejectReason) {
			assert.Equal(t, "payment unverified", *req.RejectReason)
		}

		var role, subStatus string
		db.Raw("SELECT role FROM users WHERE id = ?", userId).Scan(&role)
		db.Raw("SELECT subscription_status FROM users WHERE id = ?", userId).Scan(&subStatus)
		assert.Equal(t, "registered", role)
		assert.Equal(t, "inactive", subStatus)
	})
}

func TestLifetimePlanHasNoExpiry(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	adminId := seedUser(t, db, "lifetime-admin@example.com", "admin", nil)
	userId := seedUser(t, db, "lifetime-user@example.com", "registered", nil)
	requestId := seedSubscriptionRequest(t, db, userId, "lifetime")

	factory := unitofwork.NewRepositoryFactory(db)
	manager := membership.NewManager()

	uow := factory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.Begin(ctx))
	req, err := manager.Approve(ctx, uow, requestId, adminId, time.Now())
	assert.NoError(t, err)
	assert.NoError(t, uow.Commit())

	if assert.NotNil(t, req) {
		assert.Nil(t, req.ExpiryDate)
	}

	var expiry sql.NullTime
	db.Raw("SELECT subscription_expiry FROM users WHERE id = ?", userId).Scan(&expiry)
	assert.False(t, expiry.Valid)
}
