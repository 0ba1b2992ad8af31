package integration

import (
	"context"
	"testing"

	"restro-orders-be/internal/model"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/loyalty"

	"github.com/stretchr/testify/assert"
)

func TestReferralSignupFlow(t *testing.T) {
	db, cfg := requireDB(t)
	ctx := context.Background()

	inviterId := seedUser(t, db, "inviter@example.com", "registered", func(u *model.User) {
		u.ReferralCode = "INVITER-9001"
	})
	inviteeId := seedUser(t, db, "invitee@example.com", "registered", nil)

	factory := unitofwork.NewRepositoryFactory(db)
	engine := loyalty.NewEngine(loyalty.NewLedger(), cfg.Loyalty.SignupReward)

	t.Run("unknown code resolves to no inviter", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		inviter, err := engine.ResolveInviter(ctx, uow, "NOSUCH-0000", "invitee@example.com")
		assert.NoError(t, err)
		assert.Nil(t, inviter)
	})

	t.Run("self-referral resolves to no inviter", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		inviter, err := engine.ResolveInviter(ctx, uow, "inviter-9001", "INVITER@example.com")
		assert.NoError(t, err)
		assert.Nil(t, inviter)
	})

	t.Run("code resolution is case-insensitive", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		inviter, err := engine.ResolveInviter(ctx, uow, "  inviter-9001 ", "invitee@example.com")
		assert.NoError(t, err)
		if assert.NotNil(t, inviter) {
			assert.Equal(t, inviterId, inviter.Id)
		}
	})

	t.Run("apply credits inviter and stamps invitee", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		inviter, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: inviterId})
		assert.NoError(t, err)
		invitee, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: inviteeId})
		assert.NoError(t, err)

		assert.NoError(t, engine.Apply(ctx, uow, invitee, inviter))
		assert.NoError(t, uow.Commit())

		var points, referrals int
		db.Raw("SELECT points FROM users WHERE id = ?", inviterId).Scan(&points)
		db.Raw("SELECT total_referrals FROM users WHERE id = ?", inviterId).Scan(&referrals)
		assert.Equal(t, cfg.Loyalty.SignupReward, points)
		assert.Equal(t, 1, referrals)

		var referredBy string
		db.Raw("SELECT referred_by FROM users WHERE id = ?", inviteeId).Scan(&referredBy)
		assert.Equal(t, "INVITER-9001", referredBy)

		var rewardCount int64
		db.Raw("SELECT COUNT(*) FROM referral_rewards WHERE invitee_id = ?", inviteeId).Scan(&rewardCount)
		assert.Equal(t, int64(1), rewardCount)
	})

	t.Run("replaying apply does not double-credit", func(t *testing.T) {
		uow := factory.NewUnitOfWork(ctx)
		assert.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		inviter, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: inviterId})
		assert.NoError(t, err)
		invitee, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: inviteeId})
		assert.NoError(t, err)

		// The ledger idempotency key absorbs the credit; the unique index on
		// the reward row rejects the second audit insert.
		err = engine.Apply(ctx, uow, invitee, inviter)
		assert.Error(t, err)

		var points int
		db.Raw("SELECT points FROM users WHERE id = ?", inviterId).Scan(&points)
		assert.Equal(t, cfg.Loyalty.SignupReward, points)
	})
}
