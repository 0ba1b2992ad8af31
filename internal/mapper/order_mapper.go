package mapper

import (
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	var cancelledBy *entity.CancelActor
	if o.CancelledBy != nil {
		actor := entity.CancelActor(*o.CancelledBy)
		cancelledBy = &actor
	}
	return &entity.Order{
		Id:             o.Id,
		UserId:         o.UserId,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		CustomerTier:   entity.CustomerTier(o.CustomerTier),
		Address:        o.Address,
		Notes:          o.Notes,
		ItemName:       o.ItemName,
		OrderType:      entity.OrderType(o.OrderType),
		Amount:         o.Amount,
		Quantity:       o.Quantity,
		PaymentMode:    entity.PaymentMode(o.PaymentMode),
		Status:         entity.OrderStatus(o.Status),
		PointsUsed:     o.PointsUsed,
		PointsValue:    o.PointsValue,
		PointsDeducted: o.PointsDeducted,
		PointsEarned:   o.PointsEarned,
		PointsCredited: o.PointsCredited,
		Reason:         o.Reason,
		CancelledBy:    cancelledBy,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		AcceptedAt:     o.AcceptedAt,
		DeliveredAt:    o.DeliveredAt,
		CancelledAt:    o.CancelledAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	var cancelledBy *string
	if o.CancelledBy != nil {
		actor := string(*o.CancelledBy)
		cancelledBy = &actor
	}
	return &model.Order{
		Id:             o.Id,
		UserId:         o.UserId,
		CustomerName:   o.CustomerName,
		CustomerPhone:  o.CustomerPhone,
		CustomerTier:   string(o.CustomerTier),
		Address:        o.Address,
		Notes:          o.Notes,
		ItemName:       o.ItemName,
		OrderType:      string(o.OrderType),
		Amount:         o.Amount,
		Quantity:       o.Quantity,
		PaymentMode:    string(o.PaymentMode),
		Status:         string(o.Status),
		PointsUsed:     o.PointsUsed,
		PointsValue:    o.PointsValue,
		PointsDeducted: o.PointsDeducted,
		PointsEarned:   o.PointsEarned,
		PointsCredited: o.PointsCredited,
		Reason:         o.Reason,
		CancelledBy:    cancelledBy,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		AcceptedAt:     o.AcceptedAt,
		DeliveredAt:    o.DeliveredAt,
		CancelledAt:    o.CancelledAt,
	}
}

func (m *OrderMapper) ToEntities(models []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(models))
	for i, mdl := range models {
		entities[i] = m.ToEntity(mdl)
	}
	return entities
}
