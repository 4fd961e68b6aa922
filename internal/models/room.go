package models

import (
	"sort"
	"time"
)

// MaxRoomSize is the number of participants a room can hold
const MaxRoomSize = 2

// RoomPhase represents the current stage of a room's state machine
type RoomPhase string

const (
	// RoomPhaseLobby indicates a room is waiting for the next round to start
	RoomPhaseLobby RoomPhase = "lobby"

	// RoomPhaseChoosing indicates participants are submitting moves
	RoomPhaseChoosing RoomPhase = "choosing"

	// RoomPhaseResult indicates a round has just been resolved
	RoomPhaseResult RoomPhase = "result"

	// RoomPhaseTruthDareSelection indicates the loser is picking truth or dare
	RoomPhaseTruthDareSelection RoomPhase = "truth_dare_selection"

	// RoomPhaseChat indicates the post-round chat stage
	RoomPhaseChat RoomPhase = "chat"

	// RoomPhaseCompleted indicates the room has been closed out
	RoomPhaseCompleted RoomPhase = "completed"
)

// IsLobby returns true if the room is in the lobby phase
func (p RoomPhase) IsLobby() bool {
	return p == RoomPhaseLobby
}

// IsChoosing returns true if the room is collecting moves
func (p RoomPhase) IsChoosing() bool {
	return p == RoomPhaseChoosing
}

// IsChat returns true if the room is in the chat phase
func (p RoomPhase) IsChat() bool {
	return p == RoomPhaseChat
}

// RoomStatus represents the coarse lifecycle state stored alongside a
// room snapshot for external queries
type RoomStatus string

const (
	// RoomStatusWaiting indicates the room still has an open slot
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusInProgress indicates both slots are taken and play is underway
	RoomStatusInProgress RoomStatus = "in_progress"

	// RoomStatusCompleted indicates the room has been closed out
	RoomStatusCompleted RoomStatus = "completed"
)

// RosterEntry represents one participant's seat in a room
type RosterEntry struct {
	// DisplayName is the name shown to the other participant
	DisplayName string

	// Connected indicates whether a live transport is currently bound.
	// The identity survives a disconnect; the transport does not.
	Connected bool
}

// Room represents a two-party session keyed by a shareable code
type Room struct {
	// Code is the unique human-shareable room code
	Code string

	// Roster maps participant identity to their seat. At most MaxRoomSize entries.
	Roster map[string]*RosterEntry

	// Phase is the current stage of the room's state machine
	Phase RoomPhase

	// PendingChoices maps participant identity to their submitted move
	// for the round in progress. Cleared every round.
	PendingChoices map[string]Move

	// Winner is the identity of the last round's winner, empty if none
	Winner string

	// Loser is the identity of the last round's loser, empty if none
	Loser string

	// ChatUnlocked is true once a round has concluded with a winner
	ChatUnlocked bool

	// TruthOrDareSelection is the loser's pick, empty until made
	TruthOrDareSelection Decision

	// AwaitingTruthOrDare gates the decision step after a round result
	AwaitingTruthOrDare bool

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room state last changed
	UpdatedAt time.Time
}

// NewRoom creates an empty room in the lobby phase
func NewRoom(code string, now time.Time) *Room {
	return &Room{
		Code:           code,
		Roster:         make(map[string]*RosterEntry),
		Phase:          RoomPhaseLobby,
		PendingChoices: make(map[string]Move),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsFull returns true if both seats are taken
func (r *Room) IsFull() bool {
	return len(r.Roster) >= MaxRoomSize
}

// HasOpenSlot returns true if a new identity could still join
func (r *Room) HasOpenSlot() bool {
	return len(r.Roster) < MaxRoomSize
}

// ConnectedCount returns the number of roster entries with a live transport
func (r *Room) ConnectedCount() int {
	count := 0
	for _, entry := range r.Roster {
		if entry.Connected {
			count++
		}
	}
	return count
}

// ParticipantIDs returns the roster identities in a stable order
func (r *Room) ParticipantIDs() []string {
	ids := make([]string, 0, len(r.Roster))
	for id := range r.Roster {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Status derives the coarse lifecycle state from the room's phase and roster
func (r *Room) Status() RoomStatus {
	if r.Phase == RoomPhaseCompleted {
		return RoomStatusCompleted
	}

	if r.HasOpenSlot() {
		return RoomStatusWaiting
	}

	return RoomStatusInProgress
}

// Clone returns a deep copy of the room. Used when handing state across
// the room's single-writer boundary, e.g. to a debounced persistence write.
func (r *Room) Clone() *Room {
	cloned := &Room{
		Code:                 r.Code,
		Roster:               make(map[string]*RosterEntry, len(r.Roster)),
		Phase:                r.Phase,
		PendingChoices:       make(map[string]Move, len(r.PendingChoices)),
		Winner:               r.Winner,
		Loser:                r.Loser,
		ChatUnlocked:         r.ChatUnlocked,
		TruthOrDareSelection: r.TruthOrDareSelection,
		AwaitingTruthOrDare:  r.AwaitingTruthOrDare,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}

	for id, entry := range r.Roster {
		entryCopy := *entry
		cloned.Roster[id] = &entryCopy
	}

	for id, move := range r.PendingChoices {
		cloned.PendingChoices[id] = move
	}

	return cloned
}

// ResetRound clears all per-round state, returning the room to its
// initial lobby values. The roster is untouched.
func (r *Room) ResetRound() {
	r.PendingChoices = make(map[string]Move)
	r.Winner = ""
	r.Loser = ""
	r.ChatUnlocked = false
	r.TruthOrDareSelection = ""
	r.AwaitingTruthOrDare = false
}
