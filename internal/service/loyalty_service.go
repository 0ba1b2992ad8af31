package service

import (
	"context"
	"fmt"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/events"
	"restro-orders-be/pkg/loyalty"

	pktNats "restro-orders-be/pkg/nats"

	"github.com/google/uuid"
)

type ILoyaltyService interface {
	GetBalance(ctx context.Context, userId uuid.UUID) (*dto.PointsBalanceResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) (*dto.PointsHistoryResponse, error)
	AdminAdjust(ctx context.Context, adminId uuid.UUID, req *dto.AdminAdjustPointsRequest) (*dto.PointsBalanceResponse, error)
	ListReferralRewards(ctx context.Context, inviterId uuid.UUID) ([]*dto.ReferralRewardResponse, error)
}

type loyaltyService struct {
	uowFactory     unitofwork.RepositoryFactory
	ledger         *loyalty.Ledger
	eventPublisher *pktNats.Publisher
}

func NewLoyaltyService(
	uowFactory unitofwork.RepositoryFactory,
	ledger *loyalty.Ledger,
	eventPublisher *pktNats.Publisher,
) ILoyaltyService {
	return &loyaltyService{
		uowFactory:     uowFactory,
		ledger:         ledger,
		eventPublisher: eventPublisher,
	}
}

func (s *loyaltyService) GetBalance(ctx context.Context, userId uuid.UUID) (*dto.PointsBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}
	return &dto.PointsBalanceResponse{
		UserId:         user.Id,
		Points:         user.Points,
		TotalReferrals: user.TotalReferrals,
		ReferralCode:   user.ReferralCode,
	}, nil
}

func (s *loyaltyService) GetHistory(ctx context.Context, userId uuid.UUID) (*dto.PointsHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}

	history, err := uow.PointsRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	entries := make([]dto.PointsHistoryEntry, 0, len(history))
	for _, tx := range history {
		entries = append(entries, dto.PointsHistoryEntry{
			Id:        tx.Id,
			Direction: string(tx.Direction),
			Amount:    tx.Amount,
			SourceTag: tx.SourceTag,
			CreatedAt: tx.CreatedAt,
		})
	}

	return &dto.PointsHistoryResponse{
		Balance: user.Points,
		History: entries,
	}, nil
}

// AdminAdjust lets staff correct a balance. The change goes through the
// ledger like any other mutation, so the balance invariant stays intact.
func (s *loyaltyService) AdminAdjust(ctx context.Context, adminId uuid.UUID, req *dto.AdminAdjustPointsRequest) (*dto.PointsBalanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	var balance int
	var err error
	if req.Direction == string(entity.PointsDirectionEarned) {
		balance, err = s.ledger.Credit(ctx, uow, req.UserId, req.Amount, entity.PointsSourceAdminAdjustment, "")
	} else {
		balance, err = s.ledger.Debit(ctx, uow, req.UserId, req.Amount, entity.PointsSourceAdminAdjustment)
	}
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "POINTS_ADJUSTED",
			Data: map[string]interface{}{
				"user_id":   req.UserId,
				"actor_id":  adminId,
				"direction": req.Direction,
				"amount":    req.Amount,
				"note":      req.Note,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish POINTS_ADJUSTED event: %v\n", err)
		}
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil || user == nil {
		return &dto.PointsBalanceResponse{UserId: req.UserId, Points: balance}, nil
	}
	return &dto.PointsBalanceResponse{
		UserId:         user.Id,
		Points:         user.Points,
		TotalReferrals: user.TotalReferrals,
		ReferralCode:   user.ReferralCode,
	}, nil
}

func (s *loyaltyService) ListReferralRewards(ctx context.Context, inviterId uuid.UUID) ([]*dto.ReferralRewardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rewards, err := uow.ReferralRewardRepository().FindAll(ctx,
		specification.FilterBy{Field: "inviter_id", Value: inviterId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	result := make([]*dto.ReferralRewardResponse, 0, len(rewards))
	for _, r := range rewards {
		result = append(result, &dto.ReferralRewardResponse{
			Id:        r.Id,
			InviterId: r.InviterId,
			InviteeId: r.InviteeId,
			Code:      r.Code,
			Amount:    r.Amount,
			CreatedAt: r.CreatedAt,
		})
	}
	return result, nil
}
