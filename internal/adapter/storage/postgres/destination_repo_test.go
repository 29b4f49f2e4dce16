package postgres

import (
	"context"
	"testing"
	"time"

	"wellness-dispatch/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDestination() *domain.WebhookDestination {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.WebhookDestination{
		ID:            uuid.New(),
		Name:          "CRM",
		URL:           "https://crm.example.com/hooks",
		Secret:        "ciphertext",
		EventTypes:    []string{"user.created"},
		Headers:       map[string]string{"X-Tenant": "acme"},
		Active:        true,
		RetryStrategy: domain.RetryStrategyExponential,
		MaxRetries:    3,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func destinationRow(d *domain.WebhookDestination) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "name", "url", "secret_enc", "event_types", "headers", "active",
		"retry_strategy", "max_retries", "created_at", "updated_at"}).
		AddRow(d.ID, d.Name, d.URL, d.Secret, d.EventTypes, []byte(`{"X-Tenant":"acme"}`), d.Active,
			d.RetryStrategy, d.MaxRetries, d.CreatedAt, d.UpdatedAt)
}

func TestDestinationRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDestinationRepo(mock)
	d := newTestDestination()

	mock.ExpectExec("INSERT INTO webhook_destinations .+ ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs(d.ID, d.Name, d.URL, d.Secret, d.EventTypes, pgxmock.AnyArg(), d.Active,
			d.RetryStrategy, d.MaxRetries, d.CreatedAt, d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Upsert(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepo_ListActiveFor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDestinationRepo(mock)
	d := newTestDestination()

	mock.ExpectQuery(`SELECT .+ FROM webhook_destinations WHERE active AND \$1 = ANY\(event_types\) ORDER BY name`).
		WithArgs("user.created").
		WillReturnRows(destinationRow(d))

	got, err := repo.ListActiveFor(context.Background(), "user.created")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, d.ID, got[0].ID)
	assert.Equal(t, "acme", got[0].Headers["X-Tenant"])
	assert.Equal(t, []string{"user.created"}, got[0].EventTypes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDestinationRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDestinationRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM webhook_destinations WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDestinationRepo_DeleteAndSetActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDestinationRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE webhook_destinations SET active").
		WithArgs(false, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM webhook_destinations").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.SetActive(context.Background(), id, false))
	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
