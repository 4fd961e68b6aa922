package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/models"
	roomRepo "github.com/KirkDiggler/showdown/internal/repositories/room"
)

// Define errors
const (
	ErrSnapshotNotFound ReconcilerError = "no snapshot for room"
	ErrNilConfig        ReconcilerError = "config cannot be nil"
	ErrNilRepository    ReconcilerError = "room repository cannot be nil"
	ErrClosed           ReconcilerError = "reconciler is closed"
)

// ReconcilerError is a custom error type for reconciliation errors
type ReconcilerError string

// Error implements the error interface
func (e ReconcilerError) Error() string {
	return string(e)
}

// DefaultDebounceWindow is the write-collapse window used when none is configured
const DefaultDebounceWindow = 500 * time.Millisecond

// saveTimeout bounds a single durable write
const saveTimeout = 5 * time.Second

// Config holds configuration for the reconciler service
type Config struct {
	// Repository is the durable room store
	Repository roomRepo.Repository

	// DebounceWindow is how long a room must stay quiet before its
	// pending state is written. Repeated mutations inside the window
	// collapse into a single write reflecting the latest state.
	DebounceWindow time.Duration

	// Logger for write failures and lifecycle events
	Logger zerolog.Logger
}

// service implements the Service interface
type service struct {
	repo   roomRepo.Repository
	window time.Duration
	logger zerolog.Logger

	mu      sync.Mutex
	pending map[string]*models.Room
	timers  map[string]*time.Timer
	closed  bool
}

// NewService creates a new reconciler service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	window := cfg.DebounceWindow
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	return &service{
		repo:    cfg.Repository,
		window:  window,
		logger:  cfg.Logger,
		pending: make(map[string]*models.Room),
		timers:  make(map[string]*time.Timer),
	}, nil
}

// ScheduleSave records the room's latest state and restarts its debounce
// timer. The window is restarted, not stacked: a burst of N mutations
// produces one write reflecting the Nth state.
func (s *service) ScheduleSave(ctx context.Context, input *ScheduleSaveInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	roomCode := input.Room.Code
	snapshot := input.Room.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.pending[roomCode] = snapshot

	if timer, ok := s.timers[roomCode]; ok {
		timer.Stop()
	}

	s.timers[roomCode] = time.AfterFunc(s.window, func() {
		s.fire(roomCode)
	})

	return nil
}

// fire writes the pending state for one room, if any is still pending
func (s *service) fire(roomCode string) {
	s.mu.Lock()
	snapshot, ok := s.pending[roomCode]
	if ok {
		delete(s.pending, roomCode)
		delete(s.timers, roomCode)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	s.save(snapshot)
}

// save performs one durable write. Failures are logged and dropped; the
// in-memory room remains the source of truth for a live room.
func (s *service) save(snapshot *models.Room) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := s.repo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
		Room: snapshot,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("room_code", snapshot.Code).
			Msg("failed to persist room snapshot")
		return
	}

	s.logger.Debug().
		Str("room_code", snapshot.Code).
		Str("phase", string(snapshot.Phase)).
		Msg("persisted room snapshot")
}

// Load reads a room snapshot for rehydration. A snapshot written by an
// incompatible schema version is treated as absent, never reinterpreted.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	room, err := s.repo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomCode: input.RoomCode,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrSnapshotNotFound
		}

		if errors.Is(err, roomRepo.ErrSnapshotVersionMismatch) {
			s.logger.Warn().
				Str("room_code", input.RoomCode).
				Msg("rejecting room snapshot from incompatible schema version")
			return nil, ErrSnapshotNotFound
		}

		return nil, err
	}

	return &LoadOutput{
		Room: room,
	}, nil
}

// Flush performs all pending writes immediately
func (s *service) Flush(ctx context.Context) error {
	s.mu.Lock()
	snapshots := make([]*models.Room, 0, len(s.pending))
	for roomCode, snapshot := range s.pending {
		if timer, ok := s.timers[roomCode]; ok {
			timer.Stop()
		}
		snapshots = append(snapshots, snapshot)
	}
	s.pending = make(map[string]*models.Room)
	s.timers = make(map[string]*time.Timer)
	s.mu.Unlock()

	var firstErr error
	for _, snapshot := range snapshots {
		err := s.repo.SaveRoom(ctx, &roomRepo.SaveRoomInput{
			Room: snapshot,
		})
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("room_code", snapshot.Code).
				Msg("failed to flush room snapshot")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// Close flushes pending writes and refuses further scheduling
func (s *service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.Flush(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to flush on close")
	}
}
