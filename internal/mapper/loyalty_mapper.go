package mapper

import (
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/model"
)

type LoyaltyMapper struct{}

func NewLoyaltyMapper() *LoyaltyMapper {
	return &LoyaltyMapper{}
}

func (m *LoyaltyMapper) TransactionToEntity(t *model.PointsTransaction) *entity.PointsTransaction {
	if t == nil {
		return nil
	}
	return &entity.PointsTransaction{
		Id:             t.Id,
		UserId:         t.UserId,
		Direction:      entity.PointsDirection(t.Direction),
		Amount:         t.Amount,
		SourceTag:      t.SourceTag,
		IdempotencyKey: t.IdempotencyKey,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *LoyaltyMapper) TransactionToModel(t *entity.PointsTransaction) *model.PointsTransaction {
	if t == nil {
		return nil
	}
	return &model.PointsTransaction{
		Id:             t.Id,
		UserId:         t.UserId,
		Direction:      string(t.Direction),
		Amount:         t.Amount,
		SourceTag:      t.SourceTag,
		IdempotencyKey: t.IdempotencyKey,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *LoyaltyMapper) TransactionsToEntities(models []*model.PointsTransaction) []*entity.PointsTransaction {
	entities := make([]*entity.PointsTransaction, len(models))
	for i, mdl := range models {
		entities[i] = m.TransactionToEntity(mdl)
	}
	return entities
}

func (m *LoyaltyMapper) RewardToEntity(r *model.ReferralReward) *entity.ReferralReward {
	if r == nil {
		return nil
	}
	return &entity.ReferralReward{
		Id:        r.Id,
		InviterId: r.InviterId,
		InviteeId: r.InviteeId,
		Code:      r.Code,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
}

func (m *LoyaltyMapper) RewardToModel(r *entity.ReferralReward) *model.ReferralReward {
	if r == nil {
		return nil
	}
	return &model.ReferralReward{
		Id:        r.Id,
		InviterId: r.InviterId,
		InviteeId: r.InviteeId,
		Code:      r.Code,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
}

func (m *LoyaltyMapper) RewardsToEntities(models []*model.ReferralReward) []*entity.ReferralReward {
	entities := make([]*entity.ReferralReward, len(models))
	for i, mdl := range models {
		entities[i] = m.RewardToEntity(mdl)
	}
	return entities
}
