package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"
	"wellness-dispatch/pkg/apperror"

	"github.com/google/uuid"
)

type destinationService struct {
	destRepo ports.DestinationRepository
	encSvc   ports.EncryptionService
	now      func() time.Time
}

// NewDestinationService creates the destination registry. Secrets are sealed
// with encSvc before they reach the repository.
func NewDestinationService(
	destRepo ports.DestinationRepository,
	encSvc ports.EncryptionService,
) ports.DestinationService {
	return &destinationService{
		destRepo: destRepo,
		encSvc:   encSvc,
		now:      time.Now,
	}
}

func (s *destinationService) List(ctx context.Context) ([]domain.WebhookDestination, error) {
	dests, err := s.destRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return s.openAll(dests)
}

func (s *destinationService) Get(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error) {
	dest, err := s.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if dest == nil {
		return nil, nil
	}
	if err := s.open(dest); err != nil {
		return nil, err
	}
	return dest, nil
}

func (s *destinationService) ActiveFor(ctx context.Context, eventType string) ([]domain.WebhookDestination, error) {
	dests, err := s.destRepo.ListActiveFor(ctx, eventType)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return s.openAll(dests)
}

// Upsert creates a destination when in.ID is nil and otherwise replaces every
// mutable field. A nil secret generates one on create and keeps the stored one on update.
func (s *destinationService) Upsert(ctx context.Context, in ports.DestinationInput) (*domain.WebhookDestination, error) {
	if err := validateDestination(&in); err != nil {
		return nil, err
	}

	now := s.now()
	dest := &domain.WebhookDestination{
		ID:        uuid.New(),
		CreatedAt: now,
	}

	if in.ID != nil {
		existing, err := s.Get(ctx, *in.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperror.ErrNotFound("Destination")
		}
		dest = existing
	}

	switch {
	case in.Secret != nil:
		dest.Secret = *in.Secret
	case in.ID == nil:
		secret, err := generateSecret("whsec_", 24)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("generate secret: %w", err))
		}
		dest.Secret = secret
	}

	dest.Name = in.Name
	dest.URL = in.URL
	dest.EventTypes = in.EventTypes
	dest.Headers = in.Headers
	dest.Active = in.Active
	dest.RetryStrategy = in.RetryStrategy
	dest.MaxRetries = in.MaxRetries
	dest.UpdatedAt = now

	sealed := *dest
	if dest.Secret != "" {
		enc, err := s.encSvc.Encrypt(dest.Secret)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(err)
		}
		sealed.Secret = enc
	}

	if err := s.destRepo.Upsert(ctx, &sealed); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return dest, nil
}

func (s *destinationService) Delete(ctx context.Context, id uuid.UUID) error {
	dest, err := s.destRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if dest == nil {
		return apperror.ErrNotFound("Destination")
	}
	if err := s.destRepo.Delete(ctx, id); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

func (s *destinationService) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.WebhookDestination, error) {
	dest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, apperror.ErrNotFound("Destination")
	}

	dest.Active = !dest.Active
	dest.UpdatedAt = s.now()
	if err := s.destRepo.SetActive(ctx, id, dest.Active); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return dest, nil
}

func (s *destinationService) open(dest *domain.WebhookDestination) error {
	if dest.Secret == "" {
		return nil
	}
	plain, err := s.encSvc.Decrypt(dest.Secret)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("destination %s: %w", dest.ID, err))
	}
	dest.Secret = plain
	return nil
}

func (s *destinationService) openAll(dests []domain.WebhookDestination) ([]domain.WebhookDestination, error) {
	for i := range dests {
		if err := s.open(&dests[i]); err != nil {
			return nil, err
		}
	}
	return dests, nil
}

// validateDestination normalizes in and rejects anything the dispatcher cannot deliver to.
func validateDestination(in *ports.DestinationInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperror.ErrInvalidDestination("name is required")
	}

	u, err := url.Parse(strings.TrimSpace(in.URL))
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperror.ErrInvalidDestination("url must be an absolute http or https URL")
	}
	in.URL = u.String()

	types := make([]string, 0, len(in.EventTypes))
	seen := make(map[string]struct{}, len(in.EventTypes))
	for _, t := range in.EventTypes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	if len(types) == 0 {
		return apperror.ErrInvalidDestination("at least one event type is required")
	}
	in.EventTypes = types

	if in.RetryStrategy == "" {
		in.RetryStrategy = domain.RetryStrategyExponential
	}
	if !in.RetryStrategy.Valid() {
		return apperror.ErrInvalidDestination(fmt.Sprintf("unknown retry strategy %q", in.RetryStrategy))
	}
	if in.MaxRetries < 0 || in.MaxRetries > domain.MaxDestinationRetries {
		return apperror.ErrInvalidDestination(fmt.Sprintf("max_retries must be between 0 and %d", domain.MaxDestinationRetries))
	}
	return nil
}

func generateSecret(prefix string, length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(b), nil
}
