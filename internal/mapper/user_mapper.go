package mapper

import (
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	var subStatus *entity.SubscriptionStatus
	if u.SubscriptionStatus != nil {
		s := entity.SubscriptionStatus(*u.SubscriptionStatus)
		subStatus = &s
	}
	var subPlan *entity.SubscriptionPlan
	if u.SubscriptionPlan != nil {
		p := entity.SubscriptionPlan(*u.SubscriptionPlan)
		subPlan = &p
	}
	return &entity.User{
		Id:                  u.Id,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		FullName:            u.FullName,
		Phone:               u.Phone,
		Role:                entity.UserRole(u.Role),
		Status:              entity.UserStatus(u.Status),
		EmailVerified:       u.EmailVerified,
		Points:              u.Points,
		ReferralCode:        u.ReferralCode,
		ReferredBy:          u.ReferredBy,
		TotalReferrals:      u.TotalReferrals,
		FirstOrderCompleted: u.FirstOrderCompleted,
		SubscriptionStatus:  subStatus,
		SubscriptionPlan:    subPlan,
		SubscriptionStart:   u.SubscriptionStart,
		SubscriptionExpiry:  u.SubscriptionExpiry,
		SubscriptionExpired: u.SubscriptionExpired,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	var subStatus *string
	if u.SubscriptionStatus != nil {
		s := string(*u.SubscriptionStatus)
		subStatus = &s
	}
	var subPlan *string
	if u.SubscriptionPlan != nil {
		p := string(*u.SubscriptionPlan)
		subPlan = &p
	}
	return &model.User{
		Id:                  u.Id,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		FullName:            u.FullName,
		Phone:               u.Phone,
		Role:                string(u.Role),
		Status:              string(u.Status),
		EmailVerified:       u.EmailVerified,
		Points:              u.Points,
		ReferralCode:        u.ReferralCode,
		ReferredBy:          u.ReferredBy,
		TotalReferrals:      u.TotalReferrals,
		FirstOrderCompleted: u.FirstOrderCompleted,
		SubscriptionStatus:  subStatus,
		SubscriptionPlan:    subPlan,
		SubscriptionStart:   u.SubscriptionStart,
		SubscriptionExpiry:  u.SubscriptionExpiry,
		SubscriptionExpired: u.SubscriptionExpired,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, len(models))
	for i, mdl := range models {
		entities[i] = m.ToEntity(mdl)
	}
	return entities
}

func (m *UserMapper) PasswordResetTokenToModel(t *entity.PasswordResetToken) *model.PasswordResetToken {
	if t == nil {
		return nil
	}
	return &model.PasswordResetToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) PasswordResetTokenToEntity(t *model.PasswordResetToken) *entity.PasswordResetToken {
	if t == nil {
		return nil
	}
	return &entity.PasswordResetToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		Used:      t.Used,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) EmailVerificationTokenToModel(t *entity.EmailVerificationToken) *model.EmailVerificationToken {
	if t == nil {
		return nil
	}
	return &model.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) EmailVerificationTokenToEntity(t *model.EmailVerificationToken) *entity.EmailVerificationToken {
	if t == nil {
		return nil
	}
	return &entity.EmailVerificationToken{
		Id:        t.Id,
		UserId:    t.UserId,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
	}
}

func (m *UserMapper) UserRefreshTokenToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	if t == nil {
		return nil
	}
	return &model.UserRefreshToken{
		Id:        t.Id,
		UserId:    t.UserId,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt,
		Revoked:   t.Revoked,
		IpAddress: t.IpAddress,
		UserAgent: t.UserAgent,
		CreatedAt: t.CreatedAt,
	}
}
