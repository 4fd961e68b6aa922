package session

import (
	"sync"
	"time"

	"github.com/KirkDiggler/showdown/internal/models"
)

// liveRoom pairs a room's authoritative state with its live transport
// bindings. All access is serialized through mu: one writer per room,
// which makes every validate-then-apply transition atomic.
type liveRoom struct {
	mu         sync.Mutex
	state      *models.Room
	transports map[string]Transport
	evictTimer *time.Timer
}

func newLiveRoom(state *models.Room) *liveRoom {
	return &liveRoom{
		state:      state,
		transports: make(map[string]Transport),
	}
}

// otherIdentity returns the roster identity that is not the given one,
// or empty if the room has no second participant
func (r *liveRoom) otherIdentity(identity string) string {
	for id := range r.state.Roster {
		if id != identity {
			return id
		}
	}
	return ""
}

// displayNames returns roster display names in stable identity order
func (r *liveRoom) displayNames() []string {
	ids := r.state.ParticipantIDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, r.state.Roster[id].DisplayName)
	}
	return names
}

// roundOutcome describes what a move submission did to the round
type roundOutcome struct {
	// resolved is true once both moves were present and compared
	resolved bool

	// tie is true if both moves were equal
	tie bool

	// move is the shared move of a tied round
	move models.Move

	// winner and loser identify the round outcome for a non-tie
	winner string
	loser  string

	// moves holds each identity's move as thrown this round
	moves map[string]models.Move
}

// applyMove runs the move-submission transition against the room state.
// Pure over the state: no I/O, no fan-out.
func applyMove(state *models.Room, identity string, move models.Move) (*roundOutcome, error) {
	if _, ok := state.Roster[identity]; !ok {
		return nil, ErrNotInRoom
	}

	if !move.IsValid() {
		return nil, ErrInvalidMove
	}

	switch state.Phase {
	case models.RoomPhaseLobby:
		// The first move of a round needs a full roster
		if !state.IsFull() {
			return nil, ErrRoomNotReady
		}
		state.Phase = models.RoomPhaseChoosing
	case models.RoomPhaseChoosing:
		// Resubmitting replaces the participant's own pending move
	default:
		return nil, ErrRoomNotReady
	}

	state.PendingChoices[identity] = move

	if len(state.PendingChoices) < models.MaxRoomSize {
		return &roundOutcome{}, nil
	}

	// Both moves are in; resolve the round
	ids := state.ParticipantIDs()
	first, second := ids[0], ids[1]
	moves := map[string]models.Move{
		first:  state.PendingChoices[first],
		second: state.PendingChoices[second],
	}

	switch models.ResolveMoves(moves[first], moves[second]) {
	case models.MoveResultTie:
		tied := moves[first]
		state.PendingChoices = make(map[string]models.Move)
		state.Phase = models.RoomPhaseLobby
		return &roundOutcome{
			resolved: true,
			tie:      true,
			move:     tied,
			moves:    moves,
		}, nil
	case models.MoveResultFirstWins:
		state.Winner, state.Loser = first, second
	case models.MoveResultSecondWins:
		state.Winner, state.Loser = second, first
	}

	state.ChatUnlocked = true
	state.AwaitingTruthOrDare = true
	state.TruthOrDareSelection = ""

	// The result phase is observable to clients as the round-result
	// signal; the room itself comes to rest awaiting the loser's pick
	state.Phase = models.RoomPhaseTruthDareSelection

	return &roundOutcome{
		resolved: true,
		winner:   state.Winner,
		loser:    state.Loser,
		moves:    moves,
	}, nil
}

// applyDecision runs the truth-or-dare transition. A decision from
// anyone but the current loser, or outside the decision window, is a
// silent no-op: applied=false, no error, no state change.
func applyDecision(state *models.Room, identity string, selection models.Decision) (bool, error) {
	if _, ok := state.Roster[identity]; !ok {
		return false, ErrNotInRoom
	}

	if !state.AwaitingTruthOrDare || state.Loser != identity {
		return false, nil
	}

	if !selection.IsValid() {
		return false, ErrInvalidDecision
	}

	state.TruthOrDareSelection = selection
	state.AwaitingTruthOrDare = false
	state.Phase = models.RoomPhaseChat

	return true, nil
}

// applyNewRound runs the chat-to-lobby reset transition
func applyNewRound(state *models.Room, identity string) error {
	if _, ok := state.Roster[identity]; !ok {
		return ErrNotInRoom
	}

	if !state.Phase.IsChat() {
		return ErrRoomNotReady
	}

	state.ResetRound()
	state.Phase = models.RoomPhaseLobby

	return nil
}

// buildSnapshot renders the room state relative to one recipient, for
// the snapshot sent on every (re)join
func buildSnapshot(room *liveRoom, identity string) *StateSnapshotPayload {
	state := room.state

	peerConnected := false
	if other := room.otherIdentity(identity); other != "" {
		peerConnected = state.Roster[other].Connected
	}

	return &StateSnapshotPayload{
		RoomCode:         state.Code,
		Phase:            state.Phase,
		DisplayNames:     room.displayNames(),
		PeerConnected:    peerConnected,
		ChatUnlocked:     state.ChatUnlocked,
		AwaitingDecision: state.AwaitingTruthOrDare,
		IsWinner:         state.Winner != "" && state.Winner == identity,
		IsLoser:          state.Loser != "" && state.Loser == identity,
		OwnPendingChoice: state.PendingChoices[identity],
		PriorSelection:   state.TruthOrDareSelection,
	}
}
