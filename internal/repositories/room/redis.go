package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/showdown/internal/models"
)

const (
	// Key prefixes for Redis
	roomKeyPrefix        = "room:"
	participantKeyPrefix = "participant:"
	openRoomsKey         = "open_rooms"

	// snapshotVersion is the schema version written with every snapshot.
	// Loads of a different version are rejected rather than reinterpreted.
	snapshotVersion = 1
)

// ErrRoomNotFound is returned when a room snapshot is not found
var ErrRoomNotFound = errors.New("room not found")

// ErrSnapshotVersionMismatch is returned when a stored snapshot was
// written by an incompatible schema version
var ErrSnapshotVersionMismatch = errors.New("room snapshot schema version mismatch")

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// rosterEntrySnapshot is the persisted form of one roster seat. Transport
// state is intentionally absent; every rehydrated entry starts disconnected.
type rosterEntrySnapshot struct {
	DisplayName string `json:"display_name"`
}

// stateSnapshot is the opaque transient-state blob stored with a room
type stateSnapshot struct {
	Roster               map[string]rosterEntrySnapshot `json:"roster"`
	PendingChoices       map[string]models.Move         `json:"pending_choices"`
	Winner               string                         `json:"winner"`
	Loser                string                         `json:"loser"`
	ChatUnlocked         bool                           `json:"chat_unlocked"`
	TruthOrDareSelection models.Decision                `json:"truth_or_dare_selection"`
	AwaitingTruthOrDare  bool                           `json:"awaiting_truth_or_dare"`
	CreatedAt            time.Time                      `json:"created_at"`
}

// roomSnapshot is the durable record for one room. The participant ids
// are mirrored as flat fields so external collaborators can query by
// participant without parsing the state blob.
type roomSnapshot struct {
	SchemaVersion  int               `json:"schema_version"`
	RoomCode       string            `json:"room_code"`
	ParticipantAID string            `json:"participant_a_id,omitempty"`
	ParticipantBID string            `json:"participant_b_id,omitempty"`
	Status         models.RoomStatus `json:"status"`
	Phase          models.RoomPhase  `json:"phase"`
	State          stateSnapshot     `json:"state"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveRoom upserts a room snapshot to Redis
func (r *redisRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	snapshot := toSnapshot(input.Room)

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal room snapshot: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the snapshot
	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, snapshot.RoomCode)
	pipe.Set(ctx, roomKey, snapshotJSON, 0) // No expiration; retention is external

	// Keep the open-rooms set in sync with the room's status
	if snapshot.Status == models.RoomStatusWaiting {
		pipe.SAdd(ctx, openRoomsKey, snapshot.RoomCode)
	} else {
		pipe.SRem(ctx, openRoomsKey, snapshot.RoomCode)
	}

	// Index the room under each participant identity
	for _, participantID := range input.Room.ParticipantIDs() {
		participantKey := fmt.Sprintf("%s%s:rooms", participantKeyPrefix, participantID)
		pipe.SAdd(ctx, participantKey, snapshot.RoomCode)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room snapshot by code from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomKeyPrefix, input.RoomCode)
	snapshotJSON, err := r.client.Get(ctx, roomKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var snapshot roomSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room snapshot: %w", err)
	}

	if snapshot.SchemaVersion != snapshotVersion {
		return nil, ErrSnapshotVersionMismatch
	}

	return fromSnapshot(&snapshot), nil
}

// ListOpenRooms retrieves the codes of rooms with an open slot
func (r *redisRepository) ListOpenRooms(ctx context.Context, input *ListOpenRoomsInput) (*ListOpenRoomsOutput, error) {
	codes, err := r.client.SMembers(ctx, openRoomsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list open rooms: %w", err)
	}

	return &ListOpenRoomsOutput{
		RoomCodes: codes,
	}, nil
}

// toSnapshot converts a room to its durable record
func toSnapshot(room *models.Room) *roomSnapshot {
	state := stateSnapshot{
		Roster:               make(map[string]rosterEntrySnapshot, len(room.Roster)),
		PendingChoices:       make(map[string]models.Move, len(room.PendingChoices)),
		Winner:               room.Winner,
		Loser:                room.Loser,
		ChatUnlocked:         room.ChatUnlocked,
		TruthOrDareSelection: room.TruthOrDareSelection,
		AwaitingTruthOrDare:  room.AwaitingTruthOrDare,
		CreatedAt:            room.CreatedAt,
	}

	for id, entry := range room.Roster {
		state.Roster[id] = rosterEntrySnapshot{DisplayName: entry.DisplayName}
	}

	for id, move := range room.PendingChoices {
		state.PendingChoices[id] = move
	}

	snapshot := &roomSnapshot{
		SchemaVersion: snapshotVersion,
		RoomCode:      room.Code,
		Status:        room.Status(),
		Phase:         room.Phase,
		State:         state,
		UpdatedAt:     room.UpdatedAt,
	}

	// ParticipantIDs is sorted, so slot assignment is stable across saves
	ids := room.ParticipantIDs()
	if len(ids) > 0 {
		snapshot.ParticipantAID = ids[0]
	}
	if len(ids) > 1 {
		snapshot.ParticipantBID = ids[1]
	}

	return snapshot
}

// fromSnapshot reconstructs a room from its durable record. Roster
// entries come back disconnected since no live transport exists yet.
func fromSnapshot(snapshot *roomSnapshot) *models.Room {
	room := &models.Room{
		Code:                 snapshot.RoomCode,
		Roster:               make(map[string]*models.RosterEntry, len(snapshot.State.Roster)),
		Phase:                snapshot.Phase,
		PendingChoices:       make(map[string]models.Move, len(snapshot.State.PendingChoices)),
		Winner:               snapshot.State.Winner,
		Loser:                snapshot.State.Loser,
		ChatUnlocked:         snapshot.State.ChatUnlocked,
		TruthOrDareSelection: snapshot.State.TruthOrDareSelection,
		AwaitingTruthOrDare:  snapshot.State.AwaitingTruthOrDare,
		CreatedAt:            snapshot.State.CreatedAt,
		UpdatedAt:            snapshot.UpdatedAt,
	}

	for id, entry := range snapshot.State.Roster {
		room.Roster[id] = &models.RosterEntry{
			DisplayName: entry.DisplayName,
			Connected:   false,
		}
	}

	for id, move := range snapshot.State.PendingChoices {
		room.PendingChoices[id] = move
	}

	return room
}
