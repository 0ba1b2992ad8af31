package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/pkg/mailer"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/events"
	"restro-orders-be/pkg/loyalty"
	"restro-orders-be/pkg/orders"

	pktNats "restro-orders-be/pkg/nats"

	"github.com/google/uuid"
)

type IOrderService interface {
	Create(ctx context.Context, userId *uuid.UUID, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, orderId uuid.UUID, requesterId *uuid.UUID, isAdmin bool) (*dto.OrderResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.OrderResponse, error)
	ListAll(ctx context.Context, q *dto.ListOrdersQuery) ([]*dto.OrderResponse, error)
	Transition(ctx context.Context, orderId uuid.UUID, target string, reason string, actorId uuid.UUID, isAdmin bool) (*dto.OrderResponse, error)
	Delete(ctx context.Context, orderId uuid.UUID) error
}

type orderService struct {
	uowFactory       unitofwork.RepositoryFactory
	ledger           *loyalty.Ledger
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	emailService     mailer.IEmailService
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	ledger *loyalty.Ledger,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
) IOrderService {
	return &orderService{
		uowFactory:       uowFactory,
		ledger:           ledger,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		emailService:     emailService,
	}
}

func tierFor(user *entity.User) entity.CustomerTier {
	if user == nil {
		return entity.CustomerTierGuest
	}
	if user.Role == entity.UserRoleSubscriber {
		return entity.CustomerTierSubscriber
	}
	return entity.CustomerTierRegistered
}

// Create validates the request and writes the order in pending. A points
// payment debits the ledger in the same transaction: the order and the spend
// commit or roll back together.
func (s *orderService) Create(ctx context.Context, userId *uuid.UUID, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var user *entity.User
	if userId != nil {
		var err error
		user, err = uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, apperr.Persistence(err)
		}
	}

	order := &entity.Order{
		Id:            uuid.New(),
		UserId:        userId,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerTier:  tierFor(user),
		Address:       req.Address,
		Notes:         req.Notes,
		ItemName:      req.ItemName,
		OrderType:     entity.OrderType(req.OrderType),
		Amount:        req.Amount,
		Quantity:      req.Quantity,
		PaymentMode:   entity.PaymentMode(req.PaymentMode),
		Status:        entity.OrderStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := orders.ValidateNew(order); err != nil {
		return nil, err
	}

	if order.PaymentMode == entity.PaymentModePoints {
		if user == nil {
			return nil, apperr.Withf(apperr.ErrValidation, "points payment requires a signed-in account")
		}
		pointsUsed := req.PointsUsed
		if pointsUsed <= 0 {
			pointsUsed = int(order.Amount)
		}
		order.PointsUsed = pointsUsed
		order.PointsValue = float64(pointsUsed)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	if order.PointsUsed > 0 {
		if _, err := s.ledger.Debit(ctx, uow, *userId, order.PointsUsed, entity.PointsSourceOrderPayment); err != nil {
			return nil, err
		}
		order.PointsDeducted = true
	}

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, apperr.Persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	s.publishEvent("ORDER_CREATED", map[string]interface{}{
		"entity_type":   "order",
		"entity_id":     order.Id,
		"item_name":     order.ItemName,
		"order_type":    string(order.OrderType),
		"customer_name": order.CustomerName,
	})

	return mapOrderResponse(order), nil
}

func (s *orderService) Get(ctx context.Context, orderId uuid.UUID, requesterId *uuid.UUID, isAdmin bool) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if order == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "order %s not found", orderId)
	}
	if !isAdmin {
		if requesterId == nil || order.UserId == nil || *order.UserId != *requesterId {
			return nil, apperr.Withf(apperr.ErrForbidden, "not your order")
		}
	}
	return mapOrderResponse(order), nil
}

func (s *orderService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.OrderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return mapOrderResponses(list), nil
}

func (s *orderService) ListAll(ctx context.Context, q *dto.ListOrdersQuery) ([]*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if q.Status != "" {
		specs = append(specs, specification.ByStatus{Status: q.Status})
	}
	if q.OrderType != "" {
		specs = append(specs, specification.ByOrderType{OrderType: q.OrderType})
	}
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	specs = append(specs, specification.Pagination{Limit: limit, Offset: q.Offset})

	list, err := uow.OrderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return mapOrderResponses(list), nil
}

// Transition applies one state machine step. Customers may only act on their
// own orders; the state machine itself decides which edges each role may
// take. On delivered it hands the order to the cashback consumer.
func (s *orderService) Transition(ctx context.Context, orderId uuid.UUID, target string, reason string, actorId uuid.UUID, isAdmin bool) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	// Read under FOR UPDATE so concurrent staff actions serialize; the loser
	// re-reads the moved row and the state machine refuses the stale edge.
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId}, specification.ForUpdate{})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if order == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "order %s not found", orderId)
	}

	role := orders.ActorStaff
	if !isAdmin {
		role = orders.ActorCustomer
		if order.UserId == nil || *order.UserId != actorId {
			return nil, apperr.Withf(apperr.ErrForbidden, "not your order")
		}
	}

	if err := orders.Transition(order, entity.OrderStatus(target), role, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, apperr.Persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	if order.Status == entity.OrderStatusDelivered {
		s.enqueueCashback(ctx, order.Id)
	}

	s.publishEvent("ORDER_STATUS_CHANGED", map[string]interface{}{
		"entity_type": "order",
		"entity_id":   order.Id,
		"user_id":     order.UserId,
		"item_name":   order.ItemName,
		"status":      string(order.Status),
	})

	s.notifyOwnerByEmail(ctx, order)

	return mapOrderResponse(order), nil
}

func (s *orderService) Delete(ctx context.Context, orderId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return apperr.Persistence(err)
	}
	if order == nil {
		return apperr.Withf(apperr.ErrNotFound, "order %s not found", orderId)
	}
	if err := orders.EnsureDeletable(order); err != nil {
		return err
	}
	if err := uow.OrderRepository().Delete(ctx, orderId); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (s *orderService) enqueueCashback(ctx context.Context, orderId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.PublishOrderDeliveredMessage{OrderId: orderId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		// The startup sweep will pick it up; pointsCredited stays false.
		fmt.Printf("[WARN] Failed to enqueue cashback for order %s: %v\n", orderId, err)
	}
}

func (s *orderService) publishEvent(eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(context.Background(), evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
	}
}

func (s *orderService) notifyOwnerByEmail(ctx context.Context, order *entity.Order) {
	if s.emailService == nil || order.UserId == nil {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *order.UserId})
	if err != nil || owner == nil {
		return
	}
	go func(email, item, status string) {
		if emailErr := s.emailService.SendOrderStatusUpdate(email, item, status); emailErr != nil {
			fmt.Printf("Error sending order status email: %v\n", emailErr)
		}
	}(owner.Email, order.ItemName, string(order.Status))
}

func mapOrderResponse(o *entity.Order) *dto.OrderResponse {
	var cancelledBy *string
	if o.CancelledBy != nil {
		v := string(*o.CancelledBy)
		cancelledBy = &v
	}
	return &dto.OrderResponse{
		Id:            o.Id,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerTier:  string(o.CustomerTier),
		Address:       o.Address,
		Notes:         o.Notes,
		ItemName:      o.ItemName,
		OrderType:     string(o.OrderType),
		Amount:        o.Amount,
		Quantity:      o.Quantity,
		PaymentMode:   string(o.PaymentMode),
		Status:        string(o.Status),
		PointsUsed:    o.PointsUsed,
		PointsEarned:  o.PointsEarned,
		Reason:        o.Reason,
		CancelledBy:   cancelledBy,
		CreatedAt:     o.CreatedAt,
		AcceptedAt:    o.AcceptedAt,
		DeliveredAt:   o.DeliveredAt,
		CancelledAt:   o.CancelledAt,
	}
}

func mapOrderResponses(list []*entity.Order) []*dto.OrderResponse {
	result := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, mapOrderResponse(o))
	}
	return result
}
