package session

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/common/clock"
	"github.com/KirkDiggler/showdown/internal/models"
	roomRepo "github.com/KirkDiggler/showdown/internal/repositories/room"
	"github.com/KirkDiggler/showdown/internal/roomcode"
	"github.com/KirkDiggler/showdown/internal/services/messaging"
	"github.com/KirkDiggler/showdown/internal/services/reconciler"
)

const (
	// DefaultIdleWindow is how long a fully-disconnected room stays live
	// before being evicted from the registry
	DefaultIdleWindow = 5 * time.Minute

	// DefaultCodeRetries bounds room-code collision retries
	DefaultCodeRetries = 5
)

// Config holds configuration for the session service
type Config struct {
	// Reconciler bridges live rooms to the durable store
	Reconciler reconciler.Service

	// RoomRepo is the durable store, used directly for reads that are
	// not rehydration: code collision checks and open-room listings
	RoomRepo roomRepo.Repository

	// CodeGenerator produces candidate room codes
	CodeGenerator roomcode.Generator

	// Messaging supplies the human-readable strings for fan-out events
	Messaging messaging.Service

	// Clock is the time source for state timestamps
	Clock clock.Clock

	// IdleWindow overrides DefaultIdleWindow
	IdleWindow time.Duration

	// CodeRetries overrides DefaultCodeRetries
	CodeRetries int

	// Logger for lifecycle and fan-out failures
	Logger zerolog.Logger
}

// service implements the Service interface
type service struct {
	reconciler reconciler.Service
	roomRepo   roomRepo.Repository
	codeGen    roomcode.Generator
	messaging  messaging.Service
	clock      clock.Clock
	idleWindow time.Duration
	retries    int
	logger     zerolog.Logger

	mu    sync.RWMutex
	rooms map[string]*liveRoom
}

// NewService creates a new session service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Reconciler == nil {
		return nil, ErrNilReconciler
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	idleWindow := cfg.IdleWindow
	if idleWindow <= 0 {
		idleWindow = DefaultIdleWindow
	}

	retries := cfg.CodeRetries
	if retries <= 0 {
		retries = DefaultCodeRetries
	}

	return &service{
		reconciler: cfg.Reconciler,
		roomRepo:   cfg.RoomRepo,
		codeGen:    cfg.CodeGenerator,
		messaging:  cfg.Messaging,
		clock:      cfg.Clock,
		idleWindow: idleWindow,
		retries:    retries,
		logger:     cfg.Logger,
		rooms:      make(map[string]*liveRoom),
	}, nil
}

// ResolveOrCreate returns a live room for the code, rehydrating or
// creating as needed
func (s *service) ResolveOrCreate(ctx context.Context, input *ResolveOrCreateInput) (*ResolveOrCreateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.RoomCode == "" {
		return s.createWithGeneratedCode(ctx)
	}

	s.mu.RLock()
	_, live := s.rooms[input.RoomCode]
	s.mu.RUnlock()

	if live {
		return &ResolveOrCreateOutput{RoomCode: input.RoomCode}, nil
	}

	// Cache miss: try the durable store before constructing fresh state
	loaded, err := s.reconciler.Load(ctx, &reconciler.LoadInput{
		RoomCode: input.RoomCode,
	})

	switch {
	case err == nil:
		room := newLiveRoom(loaded.Room)
		inserted := s.insertRoom(input.RoomCode, room)
		if inserted {
			// Nobody is connected to a freshly rehydrated room yet;
			// arm the idle timer so an unclaimed room does not live forever
			room.mu.Lock()
			s.scheduleEviction(room, input.RoomCode)
			room.mu.Unlock()
		}
		return &ResolveOrCreateOutput{RoomCode: input.RoomCode, Rehydrated: inserted}, nil

	case errors.Is(err, reconciler.ErrSnapshotNotFound):
		// Fresh room under the requested code

	default:
		// A store failure must not take the room down; run fresh and live
		s.logger.Error().
			Err(err).
			Str("room_code", input.RoomCode).
			Msg("rehydration read failed, starting fresh room")
	}

	_, created := s.createRoom(ctx, input.RoomCode)
	return &ResolveOrCreateOutput{RoomCode: input.RoomCode, Created: created}, nil
}

// createWithGeneratedCode constructs a new room under a collision-checked code
func (s *service) createWithGeneratedCode(ctx context.Context) (*ResolveOrCreateOutput, error) {
	for attempt := 0; attempt < s.retries; attempt++ {
		candidate := s.codeGen.NewCode()

		s.mu.RLock()
		_, live := s.rooms[candidate]
		s.mu.RUnlock()

		if live {
			continue
		}

		_, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
			RoomCode: candidate,
		})

		if err == nil || errors.Is(err, roomRepo.ErrSnapshotVersionMismatch) {
			// Code is taken, even if by an unreadable old snapshot
			continue
		}

		if !errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Error().Err(err).Msg("room code collision check failed")
			continue
		}

		_, created := s.createRoom(ctx, candidate)
		return &ResolveOrCreateOutput{RoomCode: candidate, Created: created}, nil
	}

	return nil, ErrCodeGenerationExhausted
}

// createRoom constructs and registers a fresh lobby room. The second
// return is false when a concurrent insert won the code, in which case
// the adopted winning instance is returned instead.
func (s *service) createRoom(ctx context.Context, roomCode string) (*liveRoom, bool) {
	state := models.NewRoom(roomCode, s.clock.Now())
	room := newLiveRoom(state)

	if !s.insertRoom(roomCode, room) {
		s.mu.RLock()
		room = s.rooms[roomCode]
		s.mu.RUnlock()
		return room, false
	}

	room.mu.Lock()
	s.scheduleEviction(room, roomCode)
	s.scheduleSave(ctx, room)
	room.mu.Unlock()

	s.logger.Info().Str("room_code", roomCode).Msg("room created")

	return room, true
}

// insertRoom registers a live room, reporting false if the code was
// already taken by a concurrent insert
func (s *service) insertRoom(roomCode string, room *liveRoom) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[roomCode]; exists {
		return false
	}

	s.rooms[roomCode] = room
	return true
}

// getRoom returns the live instance for a code
func (s *service) getRoom(roomCode string) (*liveRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// BindTransport seats an identity in a room with a live transport
func (s *service) BindTransport(ctx context.Context, input *BindTransportInput) (*BindTransportOutput, error) {
	if input == nil || input.Transport == nil {
		return nil, ErrNilTransport
	}

	room, err := s.getRoom(input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	state := room.state
	entry, rejoining := state.Roster[input.Identity]

	if rejoining {
		// The same identity bound to a live, different transport means
		// two tabs racing for one seat
		if entry.Connected && room.transports[input.Identity] != nil {
			return nil, ErrIdentityConflict
		}

		// A rebind may carry a new display name; the rejoin rules for
		// name uniqueness match a fresh join's
		if input.DisplayName != "" && input.DisplayName != entry.DisplayName {
			for id, other := range state.Roster {
				if id != input.Identity && other.Connected && other.DisplayName == input.DisplayName {
					return nil, ErrIdentityConflict
				}
			}
			entry.DisplayName = input.DisplayName
		}
	} else {
		// A fresh identity may not claim a display name that a live
		// participant is already using
		for _, other := range state.Roster {
			if other.Connected && other.DisplayName == input.DisplayName {
				return nil, ErrIdentityConflict
			}
		}

		if state.IsFull() {
			return nil, ErrRoomFull
		}

		state.Roster[input.Identity] = &models.RosterEntry{
			DisplayName: input.DisplayName,
			Connected:   true,
		}
	}

	if rejoining {
		entry.Connected = true
	}

	room.transports[input.Identity] = input.Transport
	s.cancelEviction(room)

	state.UpdatedAt = s.clock.Now()
	s.scheduleSave(ctx, room)

	// Fan-out: ack and full snapshot to the joiner, roster to the room,
	// and a reconnect notice to the peer on a rejoin
	s.sendTo(room, input.Identity, &Event{
		Type: EventJoinAck,
		Data: &JoinAckPayload{
			RoomCode: state.Code,
			Identity: input.Identity,
			Rejoined: rejoining,
		},
	})
	s.sendTo(room, input.Identity, &Event{
		Type: EventStateSnapshot,
		Data: buildSnapshot(room, input.Identity),
	})
	s.broadcast(room, &Event{
		Type: EventRosterUpdate,
		Data: &RosterUpdatePayload{
			RoomCode:     state.Code,
			DisplayNames: room.displayNames(),
		},
	})

	if rejoining {
		if other := room.otherIdentity(input.Identity); other != "" {
			msg := s.presenceMessage(ctx, state.Roster[input.Identity].DisplayName, true)
			s.sendTo(room, other, &Event{
				Type: EventPeerReconnected,
				Data: &PresencePayload{
					DisplayName: state.Roster[input.Identity].DisplayName,
					Message:     msg,
				},
			})
		}
	}

	return &BindTransportOutput{Rejoined: rejoining}, nil
}

// UnbindTransport records a disconnect. The identity keeps its seat so
// the participant can rejoin with full state.
func (s *service) UnbindTransport(ctx context.Context, input *UnbindTransportInput) (*UnbindTransportOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(input.RoomCode)
	if err != nil {
		// The room may already be evicted; a late disconnect is not an error
		return &UnbindTransportOutput{}, nil
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	entry, ok := room.state.Roster[input.Identity]
	if !ok {
		return &UnbindTransportOutput{}, nil
	}

	entry.Connected = false
	delete(room.transports, input.Identity)

	if other := room.otherIdentity(input.Identity); other != "" {
		msg := s.presenceMessage(ctx, entry.DisplayName, false)
		s.sendTo(room, other, &Event{
			Type: EventPeerDisconnected,
			Data: &PresencePayload{
				DisplayName: entry.DisplayName,
				Message:     msg,
			},
		})
	}

	if room.state.ConnectedCount() == 0 {
		s.scheduleEviction(room, input.RoomCode)
	}

	return &UnbindTransportOutput{}, nil
}

// RemoveIdentity handles an explicit leave: the seat is deleted, not
// just disconnected
func (s *service) RemoveIdentity(ctx context.Context, input *RemoveIdentityInput) (*RemoveIdentityOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	room, ok := s.rooms[input.RoomCode]
	if !ok {
		s.mu.Unlock()
		return nil, ErrRoomNotFound
	}

	room.mu.Lock()

	state := room.state
	if _, seated := state.Roster[input.Identity]; !seated {
		room.mu.Unlock()
		s.mu.Unlock()
		return nil, ErrNotInRoom
	}

	delete(state.Roster, input.Identity)
	delete(room.transports, input.Identity)

	// Any round state referencing the leaver is void
	state.ResetRound()
	if state.Phase != models.RoomPhaseCompleted {
		state.Phase = models.RoomPhaseLobby
	}
	state.UpdatedAt = s.clock.Now()

	destroyed := len(state.Roster) == 0
	if destroyed {
		state.Phase = models.RoomPhaseCompleted
		if room.evictTimer != nil {
			room.evictTimer.Stop()
			room.evictTimer = nil
		}
		delete(s.rooms, input.RoomCode)
	}
	s.mu.Unlock()

	s.scheduleSave(ctx, room)

	if !destroyed {
		s.broadcast(room, &Event{
			Type: EventRosterUpdate,
			Data: &RosterUpdatePayload{
				RoomCode:     state.Code,
				DisplayNames: room.displayNames(),
			},
		})
	}

	room.mu.Unlock()

	if destroyed {
		s.logger.Info().Str("room_code", input.RoomCode).Msg("room destroyed by explicit leave")
	}

	return &RemoveIdentityOutput{RoomDestroyed: destroyed}, nil
}

// SubmitMove records a participant's move and resolves the round once
// both moves are present
func (s *service) SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	outcome, err := applyMove(room.state, input.Identity, input.Move)
	if err != nil {
		return nil, err
	}

	room.state.UpdatedAt = s.clock.Now()
	s.scheduleSave(ctx, room)

	if !outcome.resolved {
		return &SubmitMoveOutput{}, nil
	}

	if outcome.tie {
		msg := s.tieMessage(ctx, outcome.move)
		s.broadcast(room, &Event{
			Type: EventTieResult,
			Data: &TieResultPayload{
				Move:    outcome.move,
				Message: msg,
			},
		})
		return &SubmitMoveOutput{Resolved: true, Tie: true}, nil
	}

	// Round result and decision prompt are personalized per recipient,
	// sent in that order so both clients see result before prompt
	for _, id := range room.state.ParticipantIDs() {
		isWinner := id == outcome.winner
		opponent := room.otherIdentity(id)

		s.sendTo(room, id, &Event{
			Type: EventRoundResult,
			Data: &RoundResultPayload{
				IsWinner:     isWinner,
				OwnMove:      outcome.moves[id],
				OpponentMove: outcome.moves[opponent],
				Message:      s.roundResultMessage(ctx, room, id, outcome),
			},
		})

		mode := DecisionPromptWait
		if id == outcome.loser {
			mode = DecisionPromptChoose
		}
		s.sendTo(room, id, &Event{
			Type: EventDecisionPrompt,
			Data: &DecisionPromptPayload{
				Mode:    mode,
				Message: s.decisionPromptMessage(ctx, room, id, outcome),
			},
		})
	}

	return &SubmitMoveOutput{Resolved: true}, nil
}

// SubmitDecision records the loser's truth-or-dare pick
func (s *service) SubmitDecision(ctx context.Context, input *SubmitDecisionInput) (*SubmitDecisionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	applied, err := applyDecision(room.state, input.Identity, input.Selection)
	if err != nil {
		return nil, err
	}

	if !applied {
		// Quiet rejection: nothing mutated, nothing emitted
		return &SubmitDecisionOutput{}, nil
	}

	room.state.UpdatedAt = s.clock.Now()
	s.scheduleSave(ctx, room)

	chooserName := room.state.Roster[input.Identity].DisplayName
	for _, id := range room.state.ParticipantIDs() {
		s.sendTo(room, id, &Event{
			Type: EventDecisionRevealed,
			Data: &DecisionRevealedPayload{
				Selection: input.Selection,
				Message:   s.decisionRevealMessage(ctx, id == input.Identity, chooserName, input.Selection),
			},
		})
	}

	return &SubmitDecisionOutput{Applied: true}, nil
}

// SendChat echoes a chat line to the room. Chat stays locked until a
// round has concluded with a winner.
func (s *service) SendChat(ctx context.Context, input *SendChatInput) (*SendChatOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	entry, ok := room.state.Roster[input.Identity]
	if !ok {
		return nil, ErrNotInRoom
	}

	if !room.state.ChatUnlocked {
		return nil, ErrChatLocked
	}

	s.broadcast(room, &Event{
		Type: EventChatMessage,
		Data: &ChatMessagePayload{
			From: entry.DisplayName,
			Text: input.Text,
		},
	})

	return &SendChatOutput{}, nil
}

// StartNewRound resets a room in the chat phase back to the lobby
func (s *service) StartNewRound(ctx context.Context, input *StartNewRoundInput) (*StartNewRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(input.RoomCode)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if err := applyNewRound(room.state, input.Identity); err != nil {
		return nil, err
	}

	room.state.UpdatedAt = s.clock.Now()
	s.scheduleSave(ctx, room)

	s.broadcast(room, &Event{
		Type: EventNewRoundReset,
		Data: &NewRoundResetPayload{RoomCode: room.state.Code},
	})

	return &StartNewRoundOutput{}, nil
}

// ListOpenRooms returns the codes of rooms with an open slot, merging
// the durable listing with the live registry (which may be ahead of the
// debounced writes)
func (s *service) ListOpenRooms(ctx context.Context, input *ListOpenRoomsInput) (*ListOpenRoomsOutput, error) {
	stored, err := s.roomRepo.ListOpenRooms(ctx, &roomRepo.ListOpenRoomsInput{})
	if err != nil {
		return nil, err
	}

	open := make(map[string]bool)
	for _, code := range stored.RoomCodes {
		open[code] = true
	}

	s.mu.RLock()
	liveRooms := make(map[string]*liveRoom, len(s.rooms))
	for code, room := range s.rooms {
		liveRooms[code] = room
	}
	s.mu.RUnlock()

	for code, room := range liveRooms {
		room.mu.Lock()
		hasSlot := room.state.HasOpenSlot() && room.state.Phase != models.RoomPhaseCompleted
		room.mu.Unlock()

		if hasSlot {
			open[code] = true
		} else {
			delete(open, code)
		}
	}

	codes := make([]string, 0, len(open))
	for code := range open {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &ListOpenRoomsOutput{RoomCodes: codes}, nil
}

// scheduleSave hands the room's latest state to the reconciler.
// Called with the room's mutex held.
func (s *service) scheduleSave(ctx context.Context, room *liveRoom) {
	err := s.reconciler.ScheduleSave(ctx, &reconciler.ScheduleSaveInput{
		Room: room.state,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("room_code", room.state.Code).
			Msg("failed to schedule room save")
	}
}

// scheduleEviction arms the room's idle timer. Called with the room's
// mutex held. The timer re-checks idleness at fire time, so a rebind
// inside the window makes the eviction a no-op.
func (s *service) scheduleEviction(room *liveRoom, roomCode string) {
	if room.evictTimer != nil {
		room.evictTimer.Stop()
	}

	room.evictTimer = time.AfterFunc(s.idleWindow, func() {
		s.evictIfIdle(roomCode)
	})
}

// cancelEviction disarms the room's idle timer. Called with the room's
// mutex held.
func (s *service) cancelEviction(room *liveRoom) {
	if room.evictTimer != nil {
		room.evictTimer.Stop()
		room.evictTimer = nil
	}
}

// evictIfIdle drops a room from the live registry if it is still fully
// disconnected. The durable snapshot survives and permits rehydration.
func (s *service) evictIfIdle(roomCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomCode]
	if !ok {
		return
	}

	room.mu.Lock()
	idle := room.state.ConnectedCount() == 0
	if idle {
		room.evictTimer = nil
		delete(s.rooms, roomCode)
	}
	room.mu.Unlock()

	if idle {
		s.logger.Info().Str("room_code", roomCode).Msg("idle room evicted from registry")
	}
}

// sendTo pushes one event to a single identity's transport, if bound.
// Called with the room's mutex held; transports must not block.
func (s *service) sendTo(room *liveRoom, identity string, event *Event) {
	transport, ok := room.transports[identity]
	if !ok {
		return
	}

	if err := transport.Send(event); err != nil {
		s.logger.Debug().
			Err(err).
			Str("room_code", room.state.Code).
			Str("event", string(event.Type)).
			Msg("failed to send event")
	}
}

// broadcast pushes one event to every bound transport in the room.
// Called with the room's mutex held.
func (s *service) broadcast(room *liveRoom, event *Event) {
	for identity := range room.transports {
		s.sendTo(room, identity, event)
	}
}

func (s *service) presenceMessage(ctx context.Context, displayName string, connected bool) string {
	out, err := s.messaging.GetPresenceMessage(ctx, &messaging.GetPresenceMessageInput{
		DisplayName: displayName,
		Connected:   connected,
	})
	if err != nil {
		return ""
	}
	return out.Message
}

func (s *service) tieMessage(ctx context.Context, move models.Move) string {
	out, err := s.messaging.GetTieMessage(ctx, &messaging.GetTieMessageInput{
		Move: move,
	})
	if err != nil {
		return ""
	}
	return out.Message
}

func (s *service) roundResultMessage(ctx context.Context, room *liveRoom, identity string, outcome *roundOutcome) string {
	opponent := room.otherIdentity(identity)

	out, err := s.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
		IsWinner:     identity == outcome.winner,
		OpponentName: room.state.Roster[opponent].DisplayName,
		OwnMove:      outcome.moves[identity],
		OpponentMove: outcome.moves[opponent],
	})
	if err != nil {
		return ""
	}
	return out.Message
}

func (s *service) decisionPromptMessage(ctx context.Context, room *liveRoom, identity string, outcome *roundOutcome) string {
	out, err := s.messaging.GetDecisionPromptMessage(ctx, &messaging.GetDecisionPromptMessageInput{
		IsChooser: identity == outcome.loser,
		LoserName: room.state.Roster[outcome.loser].DisplayName,
	})
	if err != nil {
		return ""
	}
	return out.Message
}

func (s *service) decisionRevealMessage(ctx context.Context, isChooser bool, chooserName string, selection models.Decision) string {
	out, err := s.messaging.GetDecisionRevealMessage(ctx, &messaging.GetDecisionRevealMessageInput{
		IsChooser:   isChooser,
		ChooserName: chooserName,
		Selection:   selection,
	})
	if err != nil {
		return ""
	}
	return out.Message
}
