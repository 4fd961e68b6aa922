package ws

import (
	"github.com/KirkDiggler/showdown/internal/models"
	"github.com/KirkDiggler/showdown/internal/services/session"
)

// ClientAction names a client-to-server message
type ClientAction string

const (
	// ActionJoin requests a seat in a room. Must be the first action on
	// a connection.
	ActionJoin ClientAction = "join"

	// ActionSubmitMove submits the participant's move for the round
	ActionSubmitMove ClientAction = "submit_move"

	// ActionSubmitDecision submits the loser's truth-or-dare pick
	ActionSubmitDecision ClientAction = "submit_decision"

	// ActionSendChat sends a chat line to the room
	ActionSendChat ClientAction = "send_chat"

	// ActionNewRound requests a reset back to the lobby
	ActionNewRound ClientAction = "new_round"

	// ActionLeaveRoom gives up the seat and closes the connection
	ActionLeaveRoom ClientAction = "leave_room"

	// ActionListRooms requests the codes of rooms with an open slot
	ActionListRooms ClientAction = "list_rooms"
)

// ClientMessage is one inbound frame. Fields beyond Action are
// action-specific and otherwise ignored.
type ClientMessage struct {
	Action ClientAction `json:"action"`

	// Join fields. An empty RoomCode requests a new room; an empty
	// Identity requests a minted guest identity.
	RoomCode    string `json:"room_code,omitempty"`
	Identity    string `json:"identity,omitempty"`
	DisplayName string `json:"display_name,omitempty"`

	// SubmitMove field
	Move models.Move `json:"move,omitempty"`

	// SubmitDecision field
	Selection models.Decision `json:"selection,omitempty"`

	// SendChat field
	Text string `json:"text,omitempty"`
}

// Connection-scoped events the handler emits directly, outside the
// room fan-out stream
const (
	// EventJoinRejected reports a failed join with a reason
	EventJoinRejected session.EventType = "join_rejected"

	// EventRoomList carries the codes of rooms with an open slot
	EventRoomList session.EventType = "room_list"

	// EventError reports a rejected action with a reason
	EventError session.EventType = "error"
)

// JoinRejectedPayload reports why a join was refused
type JoinRejectedPayload struct {
	Reason string `json:"reason"`
}

// RoomListPayload carries open room codes
type RoomListPayload struct {
	RoomCodes []string `json:"room_codes"`
}

// ErrorPayload reports why an action was refused
type ErrorPayload struct {
	Reason string `json:"reason"`
}
