package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthConfig controls admin lockout.
type AuthConfig struct {
	MaxFailedAttempts int
	LockoutDuration   time.Duration
}

// AuthServiceImpl implements ports.AuthService for back-office admins.
type AuthServiceImpl struct {
	userRepo ports.AdminUserRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	security ports.SecurityLogger
	cfg      AuthConfig
	now      func() time.Time
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.AdminUserRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	security ports.SecurityLogger,
	cfg AuthConfig,
	log zerolog.Logger,
) *AuthServiceImpl {
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = 5
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = 15 * time.Minute
	}
	return &AuthServiceImpl{
		userRepo: userRepo,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		security: security,
		cfg:      cfg,
		now:      time.Now,
		log:      log,
	}
}

// Login validates credentials and returns a JWT token. Every outcome is
// recorded in the security log.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, client domain.ClientInfo) (string, time.Time, error) {
	email = normalizeEmail(email)
	now := s.now()

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find admin: %w", err))
	}
	if user == nil {
		s.security.LogEvent(ctx, domain.SecurityLoginFailed, domain.Actor{Email: &email}, client,
			map[string]interface{}{"reason": "unknown_email"})
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	actor := domain.Actor{UserID: &user.ID, Email: &user.Email}

	if user.IsLocked(now) {
		s.security.LogEvent(ctx, domain.SecurityLoginBlocked, actor, client,
			map[string]interface{}{"locked_until": user.LockedUntil.UTC().Format(time.RFC3339)})
		return "", time.Time{}, apperror.ErrAccountLocked()
	}
	dirty := user.FailedAttempts != 0 || user.LockedUntil != nil
	if user.LockedUntil != nil {
		// Lock expired: start counting afresh.
		user.LockedUntil = nil
		user.FailedAttempts = 0
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		s.recordFailure(ctx, user, actor, client, now)
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	s.security.DetectSuspiciousActivity(ctx, user.ID, deref(client.IPAddress), deref(client.UserAgent))
	s.security.LogEvent(ctx, domain.SecurityLoginSuccess, actor, client, nil)

	if dirty {
		user.FailedAttempts = 0
		user.UpdatedAt = now
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("admin_id", user.ID.String()).Msg("auth: failed to reset attempt counter")
		}
	}

	token, expiry, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

func (s *AuthServiceImpl) recordFailure(ctx context.Context, user *domain.AdminUser, actor domain.Actor, client domain.ClientInfo, now time.Time) {
	user.FailedAttempts++
	user.UpdatedAt = now

	s.security.LogEvent(ctx, domain.SecurityLoginFailed, actor, client,
		map[string]interface{}{"failed_attempts": user.FailedAttempts})

	if user.FailedAttempts >= s.cfg.MaxFailedAttempts {
		until := now.Add(s.cfg.LockoutDuration)
		user.LockedUntil = &until
		s.security.LogEvent(ctx, domain.SecurityAccountLocked, actor, client, map[string]interface{}{
			"failed_attempts": user.FailedAttempts,
			"locked_until":    until.UTC().Format(time.RFC3339),
		})
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error().Err(err).Str("admin_id", user.ID.String()).Msg("auth: failed to record failed login")
	}
}

// Unlock clears a lockout before it expires.
func (s *AuthServiceImpl) Unlock(ctx context.Context, userID uuid.UUID, by domain.Actor) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find admin: %w", err))
	}
	if user == nil {
		return apperror.ErrNotFound("Admin user")
	}

	user.FailedAttempts = 0
	user.LockedUntil = nil
	user.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return apperror.InternalError(fmt.Errorf("unlock admin: %w", err))
	}

	details := map[string]interface{}{}
	if by.UserID != nil {
		details["unlocked_by"] = by.UserID.String()
	}
	s.security.LogEvent(ctx, domain.SecurityAccountUnlocked,
		domain.Actor{UserID: &user.ID, Email: &user.Email}, domain.ClientInfo{}, details)
	return nil
}

// EnsureBootstrapAdmin creates the first admin when none exist. Empty
// credentials disable bootstrapping.
func (s *AuthServiceImpl) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	n, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := s.hashSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	now := s.now()
	user := &domain.AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	s.log.Info().Str("email", email).Msg("auth: bootstrap admin created")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
