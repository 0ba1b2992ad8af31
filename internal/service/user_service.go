package service

import (
	"context"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/membership"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}

	return mapProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrNotFound, "user %s not found", userId)
	}

	user.FullName = req.FullName
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperr.Persistence(err)
	}

	return mapProfileResponse(user), nil
}

func mapProfileResponse(user *entity.User) *dto.UserProfileResponse {
	resp := &dto.UserProfileResponse{
		Id:             user.Id,
		Email:          user.Email,
		FullName:       user.FullName,
		Phone:          user.Phone,
		Role:           string(user.Role),
		Status:         string(user.Status),
		Points:         user.Points,
		ReferralCode:   user.ReferralCode,
		ReferredBy:     user.ReferredBy,
		TotalReferrals: user.TotalReferrals,
		CreatedAt:      user.CreatedAt,
	}

	if user.SubscriptionStatus != nil {
		var plan *string
		if user.SubscriptionPlan != nil {
			p := string(*user.SubscriptionPlan)
			plan = &p
		}
		resp.Subscription = &dto.MySubscriptionResponse{
			Status:     string(*user.SubscriptionStatus),
			Plan:       plan,
			StartDate:  user.SubscriptionStart,
			ExpiryDate: user.SubscriptionExpiry,
			IsExpired:  membership.IsExpired(user.SubscriptionExpiry, time.Now()),
		}
	}

	return resp
}
