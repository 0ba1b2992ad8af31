package unitofwork

import (
	"context"

	"restro-orders-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	OrderRepository() contract.OrderRepository
	PointsRepository() contract.PointsRepository
	ReferralRewardRepository() contract.ReferralRewardRepository
	SubscriptionRequestRepository() contract.SubscriptionRequestRepository
	CatalogRepository() contract.CatalogRepository
}
