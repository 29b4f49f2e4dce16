package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"wellness-dispatch/internal/core/domain"
	"wellness-dispatch/internal/core/ports"

	"github.com/google/uuid"
)

// SecurityLogRepo implements ports.SecurityLogRepository.
type SecurityLogRepo struct {
	mu      sync.RWMutex
	entries []domain.SecurityLogEntry
}

func NewSecurityLogRepo() *SecurityLogRepo {
	return &SecurityLogRepo{}
}

func (r *SecurityLogRepo) Append(ctx context.Context, e *domain.SecurityLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *SecurityLogRepo) CountByUserSince(ctx context.Context, userID uuid.UUID, eventType domain.SecurityEventType, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, e := range r.entries {
		if e.EventType == eventType && e.UserID != nil && *e.UserID == userID && !e.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *SecurityLogRepo) RecentByUser(ctx context.Context, userID uuid.UUID, eventType domain.SecurityEventType, limit int) ([]domain.SecurityLogEntry, error) {
	uid := userID
	out, _ := r.newestFirst(domain.SecurityLogFilter{EventType: eventType, UserID: &uid})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SecurityLogRepo) List(ctx context.Context, f domain.SecurityLogFilter, page ports.Pagination) ([]domain.SecurityLogEntry, int64, error) {
	out, total := r.newestFirst(f)
	page = page.Normalize()
	return paginate(out, page.Offset(), page.PageSize), total, nil
}

// All returns every entry in insertion order.
func (r *SecurityLogRepo) All() []domain.SecurityLogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SecurityLogEntry(nil), r.entries...)
}

func (r *SecurityLogRepo) newestFirst(f domain.SecurityLogFilter) ([]domain.SecurityLogEntry, int64) {
	r.mu.RLock()
	var out []domain.SecurityLogEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if f.EventType != "" && e.EventType != f.EventType {
			continue
		}
		if f.UserID != nil && (e.UserID == nil || *e.UserID != *f.UserID) {
			continue
		}
		if f.Since != nil && e.CreatedAt.Before(*f.Since) {
			continue
		}
		out = append(out, e)
	}
	r.mu.RUnlock()

	// Insertion order breaks ties between equal timestamps.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out))
}

// AdminUserRepo implements ports.AdminUserRepository.
type AdminUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.AdminUser
}

func NewAdminUserRepo() *AdminUserRepo {
	return &AdminUserRepo{users: make(map[uuid.UUID]*domain.AdminUser)}
}

func (r *AdminUserRepo) Create(ctx context.Context, u *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return fmt.Errorf("admin user %s already exists", u.Email)
		}
	}
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r *AdminUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *AdminUserRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *AdminUserRepo) Update(ctx context.Context, u *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("admin user %s not found", u.ID)
	}
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r *AdminUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
