package contract

import (
	"context"

	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PointsRepository interface {
	Create(ctx context.Context, tx *entity.PointsTransaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PointsTransaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PointsTransaction, error)
	// SumByUser returns the signed sum of the user's ledger entries. Used by
	// invariant checks, never as the balance source of truth at runtime.
	SumByUser(ctx context.Context, userId uuid.UUID) (int, error)
}

type ReferralRewardRepository interface {
	Create(ctx context.Context, reward *entity.ReferralReward) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferralReward, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferralReward, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
