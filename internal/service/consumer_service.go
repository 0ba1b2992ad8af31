package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/loyalty"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	SweepUncredited(ctx context.Context) error
}

// consumerService applies the delivery cashback asynchronously. The order's
// PointsCredited flag plus the ledger idempotency key make redelivery and the
// startup sweep safe to overlap.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	ledger       *loyalty.Ledger
	cashbackRate float64
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	ledger *loyalty.Ledger,
	cashbackRate float64,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		ledger:       ledger,
		cashbackRate: cashbackRate,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// SweepUncredited credits cashback for delivered orders the in-process queue
// missed, typically after a crash between commit and publish. Run once on
// startup before Consume.
func (cs *consumerService) SweepUncredited(ctx context.Context) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	orders, err := uow.OrderRepository().FindAll(ctx, specification.UncreditedDelivered{})
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	log.Printf("[INFO] Cashback sweep found %d uncredited delivered orders", len(orders))
	for _, order := range orders {
		if err := cs.creditOrder(ctx, order.Id); err != nil {
			log.Printf("[ERROR] Cashback sweep failed for order %s: %v", order.Id, err)
		}
	}
	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishOrderDeliveredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing delivery cashback for OrderId: %s", payload.OrderId)

	if err := cs.creditOrder(ctx, payload.OrderId); err != nil {
		log.Printf("[ERROR] Failed to credit cashback for order %s: %v", payload.OrderId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	msg.Ack()
}

func (cs *consumerService) creditOrder(ctx context.Context, orderId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// The sweep and the bus consumer can both pick up the same order; the
	// lock plus the credited flag keep the second pass a no-op.
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId}, specification.ForUpdate{})
	if err != nil {
		return err
	}
	if order == nil {
		// Deleted before the credit landed. Nothing to do.
		log.Printf("[WARN] Order not found for cashback: %s", orderId)
		return nil
	}
	if order.Status != entity.OrderStatusDelivered || order.PointsCredited {
		return nil
	}
	if order.UserId == nil {
		// Guest orders have no account to credit. Flag so the sweep stops
		// revisiting them.
		order.PointsCredited = true
		if err := uow.OrderRepository().Update(ctx, order); err != nil {
			return err
		}
		return uow.Commit()
	}

	cashback := loyalty.CashbackFor(order.Amount, cs.cashbackRate)
	if cashback > 0 {
		key := fmt.Sprintf("cashback:%s", order.Id)
		if _, err := cs.ledger.Credit(ctx, uow, *order.UserId, cashback, entity.PointsSourceDeliveryCashback, key); err != nil {
			return err
		}
	}

	order.PointsEarned = cashback
	order.PointsCredited = true
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	// A delivered order completes the account's first-order milestone.
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *order.UserId})
	if err != nil {
		return err
	}
	if user != nil && !user.FirstOrderCompleted {
		user.FirstOrderCompleted = true
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	log.Printf("[SUCCESS] Cashback of %d points credited for OrderId: %s", cashback, orderId)
	return nil
}
