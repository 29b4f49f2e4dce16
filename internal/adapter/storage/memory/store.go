// Package memory provides process-local implementations of the repository
// ports. It backs the "memory" storage driver and service-level tests.
// Values are copied on the way in and out so callers never share state with
// the store.
package memory

// Store bundles every in-memory repository.
type Store struct {
	Events       *EventRepo
	Deliveries   *DeliveryRepo
	Logs         *WebhookLogRepo
	Destinations *DestinationRepo
	SecurityLogs *SecurityLogRepo
	AdminUsers   *AdminUserRepo
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		Events:       NewEventRepo(),
		Deliveries:   NewDeliveryRepo(),
		Logs:         NewWebhookLogRepo(),
		Destinations: NewDestinationRepo(),
		SecurityLogs: NewSecurityLogRepo(),
		AdminUsers:   NewAdminUserRepo(),
	}
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
