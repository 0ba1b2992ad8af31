package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/config"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/pkg/mailer"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/events"
	"restro-orders-be/pkg/membership"

	pktNats "restro-orders-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type ISubscriptionService interface {
	CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequestRequest) (*dto.CreateSubscriptionRequestResponse, error)
	HandleWebhook(ctx context.Context, req *dto.MidtransWebhookRequest) error
	MySubscription(ctx context.Context, userId uuid.UUID) (*dto.MySubscriptionResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionRequestResponse, error)
	ListPending(ctx context.Context) ([]*dto.SubscriptionRequestResponse, error)
	Approve(ctx context.Context, requestId, adminId uuid.UUID) (*dto.SubscriptionRequestResponse, error)
	Reject(ctx context.Context, requestId, adminId uuid.UUID, reason string) (*dto.SubscriptionRequestResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	manager        *membership.Manager
	payment        config.PaymentConfig
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	manager *membership.Manager,
	payment config.PaymentConfig,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		manager:        manager,
		payment:        payment,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (s *subscriptionService) priceFor(plan entity.SubscriptionPlan) float64 {
	if plan == entity.SubscriptionPlanLifetime {
		return s.payment.LifetimePrice
	}
	return s.payment.YearlyPrice
}

// CreateRequest files a pending application and opens a midtrans snap
// session for it. The request row commits before the external call, so a
// midtrans failure leaves a retriable pending record rather than nothing.
func (s *subscriptionService) CreateRequest(ctx context.Context, userId uuid.UUID, req *dto.CreateSubscriptionRequestRequest) (*dto.CreateSubscriptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}

	pending, err := uow.SubscriptionRequestRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.RequestStatusPending)},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if pending != nil {
		return nil, apperr.Withf(apperr.ErrValidation, "you already have a pending membership request")
	}

	plan := entity.SubscriptionPlan(req.Plan)
	amount := s.priceFor(plan)

	request := &entity.SubscriptionRequest{
		Id:            uuid.New(),
		UserId:        userId,
		Plan:          plan,
		Status:        entity.RequestStatusPending,
		Amount:        amount,
		PaymentStatus: entity.PaymentStatusPending,
		RequestedAt:   time.Now(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRequestRepository().Create(ctx, request); err != nil {
		return nil, apperr.Persistence(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	resp := &dto.CreateSubscriptionRequestResponse{
		RequestId: request.Id,
		Plan:      string(plan),
		Amount:    amount,
	}

	// External call stays outside the transaction.
	if s.payment.MidtransServerKey != "" {
		var sClient snap.Client
		env := midtrans.Sandbox
		if s.payment.Production {
			env = midtrans.Production
		}
		sClient.New(s.payment.MidtransServerKey, env)

		snapReq := &snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  request.Id.String(),
				GrossAmt: int64(amount),
			},
			CustomerDetail: &midtrans.CustomerDetails{
				FName: user.FullName,
				Email: user.Email,
				Phone: user.Phone,
			},
			Items: &[]midtrans.ItemDetails{
				{
					ID:    string(plan),
					Price: int64(amount),
					Qty:   1,
					Name:  fmt.Sprintf("%s membership", plan),
				},
			},
			EnabledPayments: snap.AllSnapPaymentType,
		}

		snapResp, midErr := sClient.CreateTransaction(snapReq)
		if midErr != nil {
			return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
		}
		resp.SnapToken = snapResp.Token
		resp.RedirectURL = snapResp.RedirectURL
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "SUBSCRIPTION_REQUESTED",
			Data: map[string]interface{}{
				"entity_type": "subscription_request",
				"entity_id":   request.Id,
				"full_name":   user.FullName,
				"plan":        string(plan),
				"amount":      amount,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_REQUESTED event: %v\n", err)
		}
	}

	return resp, nil
}

// HandleWebhook records midtrans payment outcomes on the request. It never
// touches the approval status; activation stays an explicit staff decision.
func (s *subscriptionService) HandleWebhook(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := s.payment.MidtransServerKey
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		return apperr.Withf(apperr.ErrUnauthorized, "invalid signature")
	}

	requestId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return apperr.Withf(apperr.ErrValidation, "invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperr.Persistence(err)
	}
	defer uow.Rollback()

	request, err := uow.SubscriptionRequestRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return apperr.Persistence(err)
	}
	if request == nil {
		return apperr.Withf(apperr.ErrNotFound, "subscription request %s not found", requestId)
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		request.PaymentStatus = entity.PaymentStatusPaid
	case "pending":
		request.PaymentStatus = entity.PaymentStatusPending
	case "deny", "cancel", "expire", "failure":
		request.PaymentStatus = entity.PaymentStatusFailed
	default:
		// Unknown status; keep what we have and ack the webhook.
		return uow.Commit()
	}
	request.TransactionRef = &req.TransactionId
	request.UpdatedAt = time.Now()

	if err := uow.SubscriptionRequestRepository().Update(ctx, request); err != nil {
		return apperr.Persistence(err)
	}
	if err := uow.Commit(); err != nil {
		return apperr.Persistence(err)
	}

	if s.eventPublisher != nil && request.PaymentStatus == entity.PaymentStatusPaid {
		evt := events.BaseEvent{
			Type: "SUBSCRIPTION_PAID",
			Data: map[string]interface{}{
				"entity_type": "subscription_request",
				"entity_id":   request.Id,
				"plan":        string(request.Plan),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SUBSCRIPTION_PAID event: %v\n", err)
		}
	}

	return nil
}

func (s *subscriptionService) MySubscription(ctx context.Context, userId uuid.UUID) (*dto.MySubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}

	resp := &dto.MySubscriptionResponse{Status: string(entity.SubscriptionStatusInactive)}
	if user.SubscriptionStatus != nil {
		resp.Status = string(*user.SubscriptionStatus)
	}
	if user.SubscriptionPlan != nil {
		plan := string(*user.SubscriptionPlan)
		resp.Plan = &plan
	}
	resp.StartDate = user.SubscriptionStart
	resp.ExpiryDate = user.SubscriptionExpiry
	resp.IsExpired = membership.IsExpired(user.SubscriptionExpiry, time.Now())

	// Persist the expired flag lazily when it flips.
	if resp.IsExpired && !user.SubscriptionExpired {
		user.SubscriptionExpired = true
		_ = uow.UserRepository().Update(ctx, user)
	}

	return resp, nil
}

func (s *subscriptionService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.SubscriptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.SubscriptionRequestRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return mapRequestResponses(list), nil
}

func (s *subscriptionService) ListPending(ctx context.Context) ([]*dto.SubscriptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.SubscriptionRequestRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.RequestStatusPending)},
		specification.OrderBy{Field: "requested_at", Desc: false},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return mapRequestResponses(list), nil
}

func (s *subscriptionService) Approve(ctx context.Context, requestId, adminId uuid.UUID) (*dto.SubscriptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	request, err := s.manager.Approve(ctx, uow, requestId, adminId, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	s.notifyDecision(ctx, request, true, "")
	return mapRequestResponse(request), nil
}

func (s *subscriptionService) Reject(ctx context.Context, requestId, adminId uuid.UUID, reason string) (*dto.SubscriptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	request, err := s.manager.Reject(ctx, uow, requestId, adminId, reason, time.Now())
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	s.notifyDecision(ctx, request, false, reason)
	return mapRequestResponse(request), nil
}

func (s *subscriptionService) notifyDecision(ctx context.Context, request *entity.SubscriptionRequest, approved bool, reason string) {
	eventType := "SUBSCRIPTION_APPROVED"
	if !approved {
		eventType = "SUBSCRIPTION_REJECTED"
	}
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"entity_type": "subscription_request",
				"entity_id":   request.Id,
				"user_id":     request.UserId,
				"plan":        string(request.Plan),
				"reason":      reason,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", eventType, err)
		}
	}

	if s.emailService == nil {
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: request.UserId})
	if err != nil || user == nil {
		return
	}
	go func(email, plan string) {
		if emailErr := s.emailService.SendSubscriptionDecision(email, plan, approved, reason); emailErr != nil {
			fmt.Printf("Error sending subscription decision email: %v\n", emailErr)
		}
	}(user.Email, string(request.Plan))
}

func mapRequestResponse(r *entity.SubscriptionRequest) *dto.SubscriptionRequestResponse {
	return &dto.SubscriptionRequestResponse{
		Id:            r.Id,
		UserId:        r.UserId,
		Plan:          string(r.Plan),
		Status:        string(r.Status),
		Amount:        r.Amount,
		PaymentStatus: string(r.PaymentStatus),
		RequestedAt:   r.RequestedAt,
		DecidedAt:     r.DecidedAt,
		RejectReason:  r.RejectReason,
		ExpiryDate:    r.ExpiryDate,
	}
}

func mapRequestResponses(list []*entity.SubscriptionRequest) []*dto.SubscriptionRequestResponse {
	result := make([]*dto.SubscriptionRequestResponse, 0, len(list))
	for _, r := range list {
		result = append(result, mapRequestResponse(r))
	}
	return result
}
