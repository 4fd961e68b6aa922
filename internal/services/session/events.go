package session

import "github.com/KirkDiggler/showdown/internal/models"

// EventType names a server-to-client event on the room's fan-out stream
type EventType string

const (
	// EventJoinAck acknowledges a successful join or rejoin
	EventJoinAck EventType = "join_ack"

	// EventStateSnapshot carries the full personalized room state, sent
	// once per (re)join so a client can repaint without replaying history
	EventStateSnapshot EventType = "state_snapshot"

	// EventRosterUpdate carries the current display names, broadcast to the room
	EventRosterUpdate EventType = "roster_update"

	// EventRoundResult carries a personalized non-tie round outcome
	EventRoundResult EventType = "round_result"

	// EventTieResult announces a tied round, broadcast to the room
	EventTieResult EventType = "tie_result"

	// EventDecisionPrompt tells each participant their role in the
	// truth-or-dare decision step
	EventDecisionPrompt EventType = "decision_prompt"

	// EventDecisionRevealed carries the loser's truth-or-dare pick
	EventDecisionRevealed EventType = "decision_revealed"

	// EventChatMessage echoes a chat line to the room
	EventChatMessage EventType = "chat_message"

	// EventNewRoundReset announces the room has reset for a new round
	EventNewRoundReset EventType = "new_round_reset"

	// EventPeerDisconnected tells the remaining participant their peer dropped
	EventPeerDisconnected EventType = "peer_disconnected"

	// EventPeerReconnected tells the other participant their peer is back
	EventPeerReconnected EventType = "peer_reconnected"
)

// Event is one message pushed to a participant's transport
type Event struct {
	Type EventType `json:"event"`
	Data any       `json:"data,omitempty"`
}

// JoinAckPayload acknowledges a join and echoes the seated identity,
// which matters for guests whose identity the server minted
type JoinAckPayload struct {
	RoomCode string `json:"room_code"`
	Identity string `json:"identity"`
	Rejoined bool   `json:"rejoined"`
}

// StateSnapshotPayload is the full room state relative to one recipient
type StateSnapshotPayload struct {
	RoomCode         string           `json:"room_code"`
	Phase            models.RoomPhase `json:"phase"`
	DisplayNames     []string         `json:"display_names"`
	PeerConnected    bool             `json:"peer_connected"`
	ChatUnlocked     bool             `json:"chat_unlocked"`
	AwaitingDecision bool             `json:"awaiting_decision"`
	IsWinner         bool             `json:"is_winner"`
	IsLoser          bool             `json:"is_loser"`
	OwnPendingChoice models.Move      `json:"own_pending_choice,omitempty"`
	PriorSelection   models.Decision  `json:"prior_selection,omitempty"`
}

// RosterUpdatePayload carries the current roster display names
type RosterUpdatePayload struct {
	RoomCode     string   `json:"room_code"`
	DisplayNames []string `json:"display_names"`
}

// RoundResultPayload is a personalized non-tie round outcome
type RoundResultPayload struct {
	IsWinner     bool        `json:"is_winner"`
	OwnMove      models.Move `json:"own_move"`
	OpponentMove models.Move `json:"opponent_move"`
	Message      string      `json:"message"`
}

// TieResultPayload announces a tied round
type TieResultPayload struct {
	Move    models.Move `json:"move"`
	Message string      `json:"message"`
}

// DecisionPromptMode tells a client whether it is picking or waiting
type DecisionPromptMode string

const (
	// DecisionPromptChoose is sent to the loser, who must pick
	DecisionPromptChoose DecisionPromptMode = "choose"

	// DecisionPromptWait is sent to the winner, who waits for the pick
	DecisionPromptWait DecisionPromptMode = "wait"
)

// DecisionPromptPayload tells a participant their role in the decision step
type DecisionPromptPayload struct {
	Mode    DecisionPromptMode `json:"mode"`
	Message string             `json:"message"`
}

// DecisionRevealedPayload carries the loser's revealed pick
type DecisionRevealedPayload struct {
	Selection models.Decision `json:"selection"`
	Message   string          `json:"message"`
}

// ChatMessagePayload echoes one chat line
type ChatMessagePayload struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// PresencePayload announces a peer disconnect or reconnect
type PresencePayload struct {
	DisplayName string `json:"display_name"`
	Message     string `json:"message"`
}

// NewRoundResetPayload announces the room reset for a new round
type NewRoundResetPayload struct {
	RoomCode string `json:"room_code"`
}
