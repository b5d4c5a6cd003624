package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/domain"
	"github.com/juliocloud/s206-projeto-final/internal/modules/auth/infrastructure/jwt"
	"github.com/juliocloud/s206-projeto-final/internal/shared/logging"
	"github.com/juliocloud/s206-projeto-final/internal/shared/utils"
	"github.com/juliocloud/s206-projeto-final/internal/shared/validation"
	"golang.org/x/crypto/bcrypt"
)

// DTOs for registration and login
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginThrottle tracks failed logins. Implementations must not fail the
// login when their backing store is unavailable.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) bool
	RecordFailure(ctx context.Context, email string)
	Reset(ctx context.Context, email string)
}

type noopThrottle struct{}

func (noopThrottle) Blocked(context.Context, string) bool { return false }
func (noopThrottle) RecordFailure(context.Context, string) {}
func (noopThrottle) Reset(context.Context, string)         {}

// AuthService provides authentication operations
type AuthService struct {
	repo      domain.UserRepository
	throttle  LoginThrottle
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new auth service. A nil throttle disables login
// throttling.
func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration, throttle LoginThrottle) *AuthService {
	if throttle == nil {
		throttle = noopThrottle{}
	}
	return &AuthService{
		repo:      repo,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

// equalizeTiming spends one bcrypt comparison so an unknown email costs the
// same as a wrong password.
func equalizeTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, domain.ErrMissingField.Wrap(err)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(req.Password) > MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hashedPass),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials and returns a signed token. Unknown emails and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return "", domain.ErrMissingField.Wrap(err)
	}

	if s.throttle.Blocked(ctx, req.Email) {
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			equalizeTiming(req.Password)
			s.throttle.RecordFailure(ctx, req.Email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.throttle.RecordFailure(ctx, req.Email)
		return "", domain.ErrInvalidCredentials
	}
	s.throttle.Reset(ctx, req.Email)

	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
