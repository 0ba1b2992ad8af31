package service

import (
	"context"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/pkg/logger"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error)
	SearchUsers(ctx context.Context, query *dto.AdminSearchUsersQuery) ([]dto.AdminUserSummary, error)
	UpdateUserStatus(ctx context.Context, userId uuid.UUID, req *dto.AdminUpdateUserStatusRequest) error
	GetLogs(query *dto.AdminLogsQuery) ([]logger.LogEntry, error)
	GetLogById(id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	activeUsers, err := uow.UserRepository().CountByStatus(ctx, string(entity.UserStatusActive))
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	subscribers, err := uow.UserRepository().CountByRole(ctx, string(entity.UserRoleSubscriber))
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	pendingOrders, err := uow.OrderRepository().CountByStatus(ctx, string(entity.OrderStatusPending))
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	deliveredOrders, err := uow.OrderRepository().CountByStatus(ctx, string(entity.OrderStatusDelivered))
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	pendingSubscriptions, err := uow.SubscriptionRequestRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.RequestStatusPending)},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	return &dto.AdminDashboardResponse{
		TotalUsers:           int(totalUsers),
		ActiveUsers:          activeUsers,
		Subscribers:          subscribers,
		PendingOrders:        pendingOrders,
		DeliveredOrders:      deliveredOrders,
		PendingSubscriptions: pendingSubscriptions,
	}, nil
}

func (s *adminService) SearchUsers(ctx context.Context, query *dto.AdminSearchUsersQuery) ([]dto.AdminUserSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	users, err := uow.UserRepository().SearchUsers(ctx, query.Query, limit, offset)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	summaries := make([]dto.AdminUserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, dto.AdminUserSummary{
			Id:             u.Id,
			Email:          u.Email,
			FullName:       u.FullName,
			Phone:          u.Phone,
			Role:           string(u.Role),
			Status:         string(u.Status),
			Points:         u.Points,
			TotalReferrals: u.TotalReferrals,
			CreatedAt:      u.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, userId uuid.UUID, req *dto.AdminUpdateUserStatusRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return apperr.Persistence(err)
	}
	if user == nil {
		return apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}
	if user.Role == entity.UserRoleAdmin {
		return apperr.Withf(apperr.ErrForbidden, "admin accounts cannot be blocked or downgraded here")
	}

	if err := uow.UserRepository().UpdateStatus(ctx, userId, req.Status); err != nil {
		return apperr.Persistence(err)
	}

	s.logger.Info("AdminService", "User status updated", map[string]interface{}{
		"user_id": userId.String(),
		"status":  req.Status,
	})
	return nil
}

func (s *adminService) GetLogs(query *dto.AdminLogsQuery) ([]logger.LogEntry, error) {
	limit := query.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(query.Level, limit, offset)
}

func (s *adminService) GetLogById(id string) (*logger.LogEntry, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "log entry %s not found", id)
	}
	return entry, nil
}
