package reconciler

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/showdown/internal/services/reconciler Service

import "context"

// Service bridges live room state to the durable room store. Writes are
// debounced per room code; reads are synchronous and only happen on a
// registry cache-miss.
type Service interface {
	// ScheduleSave records the room's latest state and (re)starts the
	// room's debounce timer. The durable write happens later, once the
	// room has been quiet for the debounce window.
	ScheduleSave(ctx context.Context, input *ScheduleSaveInput) error

	// Load reads a room snapshot from the durable store for rehydration
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Flush performs all pending writes immediately
	Flush(ctx context.Context) error

	// Close flushes pending writes and stops all timers
	Close()
}
