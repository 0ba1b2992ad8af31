package contract

import (
	"context"

	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRequestRepository interface {
	Create(ctx context.Context, req *entity.SubscriptionRequest) error
	Update(ctx context.Context, req *entity.SubscriptionRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
