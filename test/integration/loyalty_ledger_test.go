package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/loyalty"

	"github.com/stretchr/testify/assert"
)

func TestLedgerCreditIdempotency(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	userId := seedUser(t, db, "ledger-idem@example.com", "registered", nil)

	factory := unitofwork.NewRepositoryFactory(db)
	ledger := loyalty.NewLedger()
	key := fmt.Sprintf("test-credit:%s", userId)

	// First credit lands.
	uow := factory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.Begin(ctx))
	balance, err := ledger.Credit(ctx, uow, userId, 100, "admin_adjustment", key)
	assert.NoError(t, err)
	assert.Equal(t, 100, balance)
	assert.NoError(t, uow.Commit())

	// Same key again is a no-op returning the unchanged balance.
	uow = factory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.Begin(ctx))
	balance, err = ledger.Credit(ctx, uow, userId, 100, "admin_adjustment", key)
	assert.NoError(t, err)
	assert.Equal(t, 100, balance)
	assert.NoError(t, uow.Commit())

	// Exactly one ledger row carries the key.
	var count int64
	db.Raw("SELECT COUNT(*) FROM points_transactions WHERE idempotency_key = ?", key).Scan(&count)
	assert.Equal(t, int64(1), count)

	var stored int
	db.Raw("SELECT points FROM users WHERE id = ?", userId).Scan(&stored)
	assert.Equal(t, 100, stored)
}

// Two credits with distinct keys racing on the same user must both land.
// Without the row lock on the balance read the second writer computes from a
// stale base and one increment vanishes.
func TestLedgerConcurrentCredits(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	userId := seedUser(t, db, "ledger-race@example.com", "registered", nil)

	factory := unitofwork.NewRepositoryFactory(db)
	ledger := loyalty.NewLedger()

	amounts := []int{50, 70}
	errs := make([]error, len(amounts))

	var wg sync.WaitGroup
	for i, amount := range amounts {
		wg.Add(1)
		go func(i, amount int) {
			defer wg.Done()
			uow := factory.NewUnitOfWork(ctx)
			if err := uow.Begin(ctx); err != nil {
				errs[i] = err
				return
			}
			key := fmt.Sprintf("race-credit-%d:%s", i, userId)
			if _, err := ledger.Credit(ctx, uow, userId, amount, "admin_adjustment", key); err != nil {
				errs[i] = err
				uow.Rollback()
				return
			}
			errs[i] = uow.Commit()
		}(i, amount)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "credit %d", i)
	}

	var stored int
	db.Raw("SELECT points FROM users WHERE id = ?", userId).Scan(&stored)
	assert.Equal(t, 120, stored)

	uow := factory.NewUnitOfWork(ctx)
	sum, err := uow.PointsRepository().SumByUser(ctx, userId)
	assert.NoError(t, err)
	assert.Equal(t, stored, sum, "balance must equal signed sum of ledger entries")
}

func TestLedgerDebit(t *testing.T) {
	db, _ := requireDB(t)
	ctx := context.Background()

	userId := seedUser(t, db, "ledger-debit@example.com", "registered", nil)

	factory := unitofwork.NewRepositoryFactory(db)
	ledger := loyalty.NewLedger()

	uow := factory.NewUnitOfWork(ctx)
	assert.NoError(t, uow.Begin(ctx))
	_, err := ledger.Credit(ctx, uow, userId, 50, "admin_adjustment", "")
	assert.NoError(t, err)
	assert.NoError(t, uow.Commit())

	t.Run("insufficient balance writes nothing", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		_, err := ledger.Debit(ctx, uow, userId, 80, "order_payment")
		assert.ErrorIs(t, err, apperr.ErrInsufficientBalance)
		assert.NoError(t, uow.Rollback())

		var stored int
		db.Raw("SELECT points FROM users WHERE id = ?", userId).Scan(&stored)
		assert.Equal(t, 50, stored)
	})

	t.Run("successful debit", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		balance, err := ledger.Debit(ctx, uow, userId, 30, "order_payment")
		assert.NoError(t, err)
		assert.Equal(t, 20, balance)
		assert.NoError(t, uow.Commit())
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		_, err := ledger.Debit(ctx, uow, userId, 0, "order_payment")
		assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
		_, err = ledger.Credit(ctx, uow, userId, -5, "admin_adjustment", "")
		assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
		assert.NoError(t, uow.Rollback())
	})

	// Final invariant: stored balance equals the signed ledger sum.
	uow = factory.NewUnitOfWork(ctx)
	sum, err := uow.PointsRepository().SumByUser(ctx, userId)
	assert.NoError(t, err)

	var stored int
	db.Raw("SELECT points FROM users WHERE id = ?", userId).Scan(&stored)
	assert.Equal(t, stored, sum, "balance must equal signed sum of ledger entries")
	assert.Equal(t, 20, stored)
}
