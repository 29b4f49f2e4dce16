package service

import (
	"context"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/internal/observability"
	"wellness-dispatch/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SecurityConfig tunes the suspicious-login heuristics.
type SecurityConfig struct {
	FailedLoginThreshold int           // failed logins within the window that flag a user
	FailedLoginWindow    time.Duration // look-back for failed logins
	RecentLoginSample    int           // successful logins whose IP and UA count as known
}

// DefaultSecurityConfig is 5 failures in 30 minutes and the last 5 successful logins.
var DefaultSecurityConfig = SecurityConfig{
	FailedLoginThreshold: 5,
	FailedLoginWindow:    30 * time.Minute,
	RecentLoginSample:    5,
}

// Suspicious-activity reasons.
const (
	ReasonRepeatedFailedLogins = "repeated_failed_logins"
	ReasonNewIPAddress         = "new_ip_address"
	ReasonNewUserAgent         = "new_user_agent"
)

type securityService struct {
	repo    ports.SecurityLogRepository
	alerter ports.Alerter
	cfg     SecurityConfig
	metrics *observability.Metrics
	now     func() time.Time
	log     zerolog.Logger
}

// NewSecurityService creates the security event logger.
// If alerter is nil, no alerts are sent.
func NewSecurityService(
	repo ports.SecurityLogRepository,
	alerter ports.Alerter,
	cfg SecurityConfig,
	metrics *observability.Metrics,
	log zerolog.Logger,
) ports.SecurityLogger {
	if cfg.FailedLoginThreshold <= 0 {
		cfg.FailedLoginThreshold = DefaultSecurityConfig.FailedLoginThreshold
	}
	if cfg.FailedLoginWindow <= 0 {
		cfg.FailedLoginWindow = DefaultSecurityConfig.FailedLoginWindow
	}
	if cfg.RecentLoginSample <= 0 {
		cfg.RecentLoginSample = DefaultSecurityConfig.RecentLoginSample
	}
	return &securityService{
		repo:    repo,
		alerter: alerter,
		cfg:     cfg,
		metrics: metrics,
		now:     time.Now,
		log:     log,
	}
}

// LogEvent appends a security log entry. Persistence errors are logged and dropped.
func (s *securityService) LogEvent(
	ctx context.Context,
	eventType domain.SecurityEventType,
	actor domain.Actor,
	client domain.ClientInfo,
	details map[string]interface{},
) {
	entry := &domain.SecurityLogEntry{
		ID:        uuid.New(),
		EventType: eventType,
		Severity:  eventType.Severity(),
		UserID:    actor.UserID,
		Email:     actor.Email,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Details:   details,
		CreatedAt: s.now(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("event_type", string(eventType)).
			Msg("security: failed to persist security log")
	}

	s.metrics.SecurityEvent(string(eventType), string(entry.Severity))

	ev := s.log.Info()
	if entry.Severity == domain.SeverityHigh {
		ev = s.log.Warn()
	}
	ev.Str("event_type", string(eventType)).
		Str("severity", string(entry.Severity)).
		Interface("details", details).
		Msg("security event")

	if eventType.TriggersAlert() && s.alerter != nil {
		s.alerter.Notify(entry)
	}
}

// DetectSuspiciousActivity evaluates the login heuristics for userID. Every
// heuristic that fires logs its own suspicious_activity entry. Call it before
// logging the login being evaluated.
func (s *securityService) DetectSuspiciousActivity(ctx context.Context, userID uuid.UUID, ip, userAgent string) bool {
	uid := userID
	actor := domain.Actor{UserID: &uid}
	client := domain.ClientInfo{IPAddress: optional(ip), UserAgent: optional(userAgent)}
	suspicious := false

	since := s.now().Add(-s.cfg.FailedLoginWindow)
	failed, err := s.repo.CountByUserSince(ctx, userID, domain.SecurityLoginFailed, since)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("security: failed-login count unavailable")
	} else if failed >= int64(s.cfg.FailedLoginThreshold) {
		suspicious = true
		s.LogEvent(ctx, domain.SecuritySuspiciousActivity, actor, client, map[string]interface{}{
			"reason":          ReasonRepeatedFailedLogins,
			"failed_attempts": failed,
			"window_minutes":  int(s.cfg.FailedLoginWindow / time.Minute),
		})
	}

	recent, err := s.repo.RecentByUser(ctx, userID, domain.SecurityLoginSuccess, s.cfg.RecentLoginSample)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("security: login history unavailable")
		return suspicious
	}
	if len(recent) == 0 {
		return suspicious
	}

	knownIPs := make(map[string]struct{}, len(recent))
	knownAgents := make(map[string]struct{}, len(recent))
	for _, e := range recent {
		if e.IPAddress != nil {
			knownIPs[*e.IPAddress] = struct{}{}
		}
		if e.UserAgent != nil {
			knownAgents[*e.UserAgent] = struct{}{}
		}
	}

	if _, ok := knownIPs[ip]; !ok && ip != "" {
		suspicious = true
		s.LogEvent(ctx, domain.SecuritySuspiciousActivity, actor, client, map[string]interface{}{
			"reason":     ReasonNewIPAddress,
			"ip_address": ip,
		})
	}
	if _, ok := knownAgents[userAgent]; !ok && userAgent != "" {
		suspicious = true
		s.LogEvent(ctx, domain.SecuritySuspiciousActivity, actor, client, map[string]interface{}{
			"reason":     ReasonNewUserAgent,
			"user_agent": userAgent,
		})
	}
	return suspicious
}

func (s *securityService) ListEvents(ctx context.Context, filter domain.SecurityLogFilter, page ports.Pagination) ([]domain.SecurityLogEntry, int64, error) {
	entries, total, err := s.repo.List(ctx, filter, page.Normalize())
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(err)
	}
	return entries, total, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
