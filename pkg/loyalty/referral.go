package loyalty

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
)

// NormalizeCode upper-cases and trims a referral code. Codes are compared
// and stored in this form only.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GenerateCode builds a new referral code from the user's name, e.g.
// "JOHN-1234". Uniqueness is enforced by the column index; callers retry on
// conflict.
func GenerateCode(fullName string) string {
	base := "GUEST"
	fields := strings.Fields(strings.ToUpper(fullName))
	if len(fields) > 0 {
		first := fields[0]
		cleaned := make([]rune, 0, len(first))
		for _, r := range first {
			if r >= 'A' && r <= 'Z' {
				cleaned = append(cleaned, r)
			}
		}
		if len(cleaned) > 8 {
			cleaned = cleaned[:8]
		}
		if len(cleaned) > 0 {
			base = string(cleaned)
		}
	}
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken
		n = big.NewInt(0)
	}
	return fmt.Sprintf("%s-%04d", base, n.Int64())
}

// Engine resolves inviters and applies the signup referral bonus.
type Engine struct {
	ledger       *Ledger
	rewardAmount int
}

func NewEngine(ledger *Ledger, rewardAmount int) *Engine {
	return &Engine{
		ledger:       ledger,
		rewardAmount: rewardAmount,
	}
}

// ResolveInviter finds the account owning the given referral code. An
// unknown code returns (nil, nil): signup proceeds without a bonus. A
// self-referral (the invitee supplying their own email's account code) is
// also treated as no inviter.
func (e *Engine) ResolveInviter(ctx context.Context, uow unitofwork.UnitOfWork, code string, inviteeEmail string) (*entity.User, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, nil
	}
	inviter, err := uow.UserRepository().FindOne(ctx, specification.ByReferralCode{Code: normalized})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if inviter == nil {
		return nil, nil
	}
	if strings.EqualFold(inviter.Email, inviteeEmail) {
		return nil, nil
	}
	return inviter, nil
}

// Apply credits the inviter, bumps their referral counter, records the audit
// row, and stamps the invitee's lineage. Runs inside the same transaction
// that creates the invitee; the unique index on the audit row's invitee
// column keeps it from ever running twice for one signup.
func (e *Engine) Apply(ctx context.Context, uow unitofwork.UnitOfWork, invitee *entity.User, inviter *entity.User) error {
	if invitee.Id == inviter.Id {
		return apperr.Withf(apperr.ErrValidation, "self-referral is not allowed")
	}

	code := NormalizeCode(inviter.ReferralCode)
	key := "referral:" + invitee.Id.String()
	if _, err := e.ledger.Credit(ctx, uow, inviter.Id, e.rewardAmount, entity.PointsSourceReferralSignup, key); err != nil {
		return err
	}

	// Credit reloaded and saved the inviter; re-read so the counter bump does
	// not clobber the fresh balance.
	fresh, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: inviter.Id})
	if err != nil {
		return apperr.Persistence(err)
	}
	if fresh == nil {
		return apperr.Withf(apperr.ErrNotFound, "inviter %s not found", inviter.Id)
	}
	fresh.TotalReferrals++
	if err := uow.UserRepository().Update(ctx, fresh); err != nil {
		return apperr.Persistence(err)
	}

	reward := &entity.ReferralReward{
		InviterId: inviter.Id,
		InviteeId: invitee.Id,
		Code:      code,
		Amount:    e.rewardAmount,
	}
	if err := uow.ReferralRewardRepository().Create(ctx, reward); err != nil {
		return apperr.Persistence(err)
	}

	invitee.ReferredBy = &code
	if err := uow.UserRepository().Update(ctx, invitee); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}
