package session

import "github.com/KirkDiggler/showdown/internal/models"

type ResolveOrCreateInput struct {
	// RoomCode is the requested room. Empty requests a new room.
	RoomCode string
}

type ResolveOrCreateOutput struct {
	// RoomCode is the code of the resolved or created room
	RoomCode string

	// Created is true if a brand-new room was constructed
	Created bool

	// Rehydrated is true if the room was rebuilt from a durable snapshot
	Rehydrated bool
}

type BindTransportInput struct {
	RoomCode    string
	Identity    string
	DisplayName string
	Transport   Transport
}

type BindTransportOutput struct {
	// Rejoined is true if the identity already held a seat in the room
	Rejoined bool
}

type UnbindTransportInput struct {
	RoomCode string
	Identity string
}

type UnbindTransportOutput struct {
}

type RemoveIdentityInput struct {
	RoomCode string
	Identity string
}

type RemoveIdentityOutput struct {
	// RoomDestroyed is true if the leave emptied the room
	RoomDestroyed bool
}

type SubmitMoveInput struct {
	RoomCode string
	Identity string
	Move     models.Move
}

type SubmitMoveOutput struct {
	// Resolved is true if this submission completed the round
	Resolved bool

	// Tie is true if the completed round was a tie
	Tie bool
}

type SubmitDecisionInput struct {
	RoomCode  string
	Identity  string
	Selection models.Decision
}

type SubmitDecisionOutput struct {
	// Applied is false when the decision was silently ignored because
	// the sender is not the current loser or no decision was pending
	Applied bool
}

type SendChatInput struct {
	RoomCode string
	Identity string
	Text     string
}

type SendChatOutput struct {
}

type StartNewRoundInput struct {
	RoomCode string
	Identity string
}

type StartNewRoundOutput struct {
}

type ListOpenRoomsInput struct {
}

type ListOpenRoomsOutput struct {
	RoomCodes []string
}
