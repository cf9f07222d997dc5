package service

import (
	"context"
	"time"

	"github.com/ThellaPrasanthi/complain-system/internal/auth"
	"github.com/ThellaPrasanthi/complain-system/internal/config"
	"github.com/ThellaPrasanthi/complain-system/internal/domain"
	"github.com/ThellaPrasanthi/complain-system/internal/repository"
	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

// AuthService coordinates the login flow: credential check against the user
// store, then stateless token issuance.
type AuthService struct {
	users    repository.UserStore
	tokenMgr *auth.TokenManager
	limiter  *auth.LoginLimiter
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserStore repository.UserStore
	Limiter   *auth.LoginLimiter
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:    deps.UserStore,
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		limiter:  deps.Limiter,
	}
}

// Login validates the presented credentials and issues a signed token
// carrying the username and role. Passwords are compared for exact equality;
// unknown usernames and wrong passwords fail identically.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.Role, time.Time, error) {
	if err := s.limiter.Allow(ctx, username); err != nil {
		return "", "", time.Time{}, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return "", "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", "", time.Time{}, err
	}
	if user.Password != password {
		return "", "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", "", time.Time{}, err
	}

	s.limiter.Reset(ctx, username)
	return token, user.Role, expiresAt, nil
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
