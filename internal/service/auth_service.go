package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perpus/internal/auth"
	"perpus/internal/errors"
	"perpus/internal/logger"
	"perpus/internal/mail"
	"perpus/internal/metrics"
	"perpus/internal/model"
	"perpus/internal/repository"
)

const bcryptCost = 10

// LoginResult carries the issued token back to the handler.
type LoginResult struct {
	Type      string    `json:"type"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService handles registration, OTP verification, and sessions.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)
	ConfirmOtp(ctx context.Context, email string, code int) error
	ResendOtp(ctx context.Context, email string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	SetProfile(ctx context.Context, userID uint, bio, address string) (*model.Profile, error)
}

type authService struct {
	userRepo    repository.UserRepository
	otpRepo     repository.OtpRepository
	profileRepo repository.ProfileRepository
	jwtService  *auth.JWTService
	tokenStore  auth.TokenStoreInterface
	mailer      mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.OtpRepository,
	profileRepo repository.ProfileRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	mailer mail.Mailer,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		tokenStore:  tokenStore,
		mailer:      mailer,
	}
}

// Register creates an unverified user and emails the verification code.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.issueOtp(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ConfirmOtp verifies the account when the submitted code matches.
func (s *authService) ConfirmOtp(ctx context.Context, email string, code int) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	otp, err := s.otpRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrOtpNotFound
		}
		return fmt.Errorf("find otp: %w", err)
	}

	if user.IsVerified {
		return errors.ErrAlreadyVerified
	}
	if otp.Code != code {
		return errors.ErrOtpMismatch
	}

	user.IsVerified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// ResendOtp replaces the stored code and re-sends the email.
func (s *authService) ResendOtp(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.IsVerified {
		return nil, errors.ErrAlreadyVerified
	}

	if err := s.issueOtp(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login gates on verification before comparing credentials, then issues a
// bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, errors.ErrNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	_, token, expiresAt, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{Type: "bearer", Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the caller's token for the remainder of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.tokenStore.RevokeToken(ctx, claims.ID, ttl)
}

// SetProfile upserts the caller's profile keyed by user id.
func (s *authService) SetProfile(ctx context.Context, userID uint, bio, address string) (*model.Profile, error) {
	profile := &model.Profile{
		Bio:     bio,
		Address: address,
		UserID:  userID,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return profile, nil
}

func (s *authService) issueOtp(ctx context.Context, user *model.User) error {
	code, err := GenerateOtpCode()
	if err != nil {
		return err
	}
	if err := s.otpRepo.Upsert(ctx, &model.Otp{Code: code, UserID: user.ID}); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	metrics.OtpIssuedTotal.Inc()

	// Mail delivery is best effort. The code stays retrievable via resend.
	if err := s.mailer.SendOtp(user.Email, code); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Str("email", user.Email).Msg("otp mail delivery failed")
	}
	return nil
}
