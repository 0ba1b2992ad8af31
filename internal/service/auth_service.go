package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"time"

	"restro-orders-be/internal/apperr"
	"restro-orders-be/internal/dto"
	"restro-orders-be/internal/entity"
	"restro-orders-be/internal/pkg/mailer"
	"restro-orders-be/internal/repository/specification"
	"restro-orders-be/internal/repository/unitofwork"
	"restro-orders-be/pkg/events"
	"restro-orders-be/pkg/loyalty"

	pktNats "restro-orders-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Logout(ctx context.Context, refreshToken string) error
	LoginAdmin(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	referralEngine *loyalty.Engine
	eventPublisher *pktNats.Publisher
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	referralEngine *loyalty.Engine,
	eventPublisher *pktNats.Publisher,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		referralEngine: referralEngine,
		eventPublisher: eventPublisher,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func hashRefreshToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Register creates the account, its referral code, and the email OTP. When a
// valid inviter code is supplied, the inviter's bonus, counter bump, audit
// row, and the new user's lineage all land in the same transaction as the
// profile itself.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if existing != nil {
		return nil, apperr.Withf(apperr.ErrValidation, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	// 10k suffixes per name prefix; a handful of probes is enough. The unique
	// index still backstops a race between the probe and the insert.
	referralCode := loyalty.GenerateCode(req.FullName)
	for attempt := 0; attempt < 5; attempt++ {
		taken, err := uow.UserRepository().FindOne(ctx, specification.ByReferralCode{Code: referralCode})
		if err != nil {
			return nil, apperr.Persistence(err)
		}
		if taken == nil {
			break
		}
		referralCode = loyalty.GenerateCode(req.FullName)
	}

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		FullName:      req.FullName,
		Phone:         req.Phone,
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleRegistered,
		Status:        entity.UserStatusPending,
		EmailVerified: false,
		ReferralCode:  referralCode,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, apperr.Persistence(err)
	}
	defer uow.Rollback()

	// Resolve inside the transaction so the inviter's row and the new row
	// commit or roll back together.
	inviter, err := s.referralEngine.ResolveInviter(ctx, uow, req.ReferralCode, req.Email)
	if err != nil {
		return nil, err
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, apperr.Persistence(err)
	}

	if inviter != nil {
		if err := s.referralEngine.Apply(ctx, uow, user, inviter); err != nil {
			return nil, err
		}
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, err
	}
	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     otpCode,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return nil, apperr.Persistence(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperr.Persistence(err)
	}

	go func() {
		if emailErr := s.emailService.SendOTP(user.Email, otpCode); emailErr != nil {
			fmt.Printf("Error sending registration email: %v\n", emailErr)
		}
	}()

	if s.eventPublisher != nil && inviter != nil {
		evt := events.BaseEvent{
			Type: "REFERRAL_APPLIED",
			Data: map[string]interface{}{
				"user_id":      inviter.Id,
				"invitee_name": user.FullName,
				"code":         inviter.ReferralCode,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish REFERRAL_APPLIED event: %v\n", err)
		}
	}

	return &dto.RegisterResponse{
		Id:           user.Id,
		Email:        user.Email,
		ReferralCode: user.ReferralCode,
		ReferredBy:   user.ReferredBy,
	}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return apperr.Persistence(err)
	}
	if user == nil {
		return apperr.Withf(apperr.ErrNotFound, "user not found")
	}

	if user.Status == entity.UserStatusActive {
		return nil
	}

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByToken{Token: req.Token},
	)
	if err != nil {
		return apperr.Persistence(err)
	}
	if tokenEntity == nil {
		return apperr.Withf(apperr.ErrValidation, "invalid otp code")
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return apperr.Withf(apperr.ErrValidation, "otp code expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().ActivateUser(ctx, user.Id); err != nil {
		return apperr.Persistence(err)
	}
	_ = uow.UserRepository().DeleteEmailVerificationToken(ctx, tokenEntity.Id)

	return uow.Commit()
}

func (s *authService) login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string, adminOnly bool) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if user == nil {
		return nil, apperr.Withf(apperr.ErrUnauthorized, "invalid credentials")
	}

	if adminOnly && user.Role != entity.UserRoleAdmin {
		return nil, apperr.Withf(apperr.ErrForbidden, "access denied: admins only")
	}

	if user.PasswordHash == nil {
		return nil, apperr.Withf(apperr.ErrUnauthorized, "invalid credentials")
	}
	if !adminOnly && (user.Status == entity.UserStatusPending || !user.EmailVerified) {
		return nil, apperr.Withf(apperr.ErrUnauthorized, "email not verified. please check your inbox for the otp code")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Withf(apperr.ErrUnauthorized, "invalid credentials")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, apperr.Withf(apperr.ErrForbidden, "account is blocked")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string
	if req.RememberMe {
		rawRefreshToken = uuid.New().String()
		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashRefreshToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
			Revoked:   false,
			CreatedAt: time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}
		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, apperr.Wrap(apperr.ErrPersistence, "failed to create session", err)
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"device":  userAgent,
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
			Phone:    user.Phone,
			Role:     string(user.Role),
			Points:   user.Points,
		},
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	return s.login(ctx, req, ipAddress, userAgent, false)
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	return s.login(ctx, req, ipAddress, userAgent, true)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashRefreshToken(refreshToken))
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		// Don't leak account existence
		return nil
	}

	token := uuid.New().String()
	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     token,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
		Used:      false,
	}

	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return apperr.Persistence(err)
	}

	go func() {
		if emailErr := s.emailService.SendResetToken(user.Email, token); emailErr != nil {
			fmt.Printf("Error sending reset password email: %v\n", emailErr)
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tokenEntity, err := uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: req.Token})
	if err != nil {
		return apperr.Persistence(err)
	}
	if tokenEntity == nil {
		return apperr.Withf(apperr.ErrValidation, "invalid or expired token")
	}
	if tokenEntity.Used {
		return apperr.Withf(apperr.ErrValidation, "this password reset link has already been used")
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return apperr.Withf(apperr.ErrValidation, "this password reset link has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return apperr.Persistence(err)
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, tokenEntity.UserId, string(hash)); err != nil {
		return apperr.Persistence(err)
	}
	if err := uow.UserRepository().MarkTokenUsed(ctx, tokenEntity.Id); err != nil {
		return apperr.Persistence(err)
	}

	return uow.Commit()
}
