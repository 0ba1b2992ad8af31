package mapper

import (
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) RequestToEntity(r *model.SubscriptionRequest) *entity.SubscriptionRequest {
	if r == nil {
		return nil
	}
	return &entity.SubscriptionRequest{
		Id:             r.Id,
		UserId:         r.UserId,
		Plan:           entity.SubscriptionPlan(r.Plan),
		Status:         entity.RequestStatus(r.Status),
		TransactionRef: r.TransactionRef,
		Amount:         r.Amount,
		PaymentStatus:  entity.PaymentStatus(r.PaymentStatus),
		RequestedAt:    r.RequestedAt,
		DecidedAt:      r.DecidedAt,
		DecidedBy:      r.DecidedBy,
		RejectReason:   r.RejectReason,
		ExpiryDate:     r.ExpiryDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *SubscriptionMapper) RequestToModel(r *entity.SubscriptionRequest) *model.SubscriptionRequest {
	if r == nil {
		return nil
	}
	return &model.SubscriptionRequest{
		Id:             r.Id,
		UserId:         r.UserId,
		Plan:           string(r.Plan),
		Status:         string(r.Status),
		TransactionRef: r.TransactionRef,
		Amount:         r.Amount,
		PaymentStatus:  string(r.PaymentStatus),
		RequestedAt:    r.RequestedAt,
		DecidedAt:      r.DecidedAt,
		DecidedBy:      r.DecidedBy,
		RejectReason:   r.RejectReason,
		ExpiryDate:     r.ExpiryDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (m *SubscriptionMapper) RequestsToEntities(models []*model.SubscriptionRequest) []*entity.SubscriptionRequest {
	entities := make([]*entity.SubscriptionRequest, len(models))
	for i, mdl := range models {
		entities[i] = m.RequestToEntity(mdl)
	}
	return entities
}
