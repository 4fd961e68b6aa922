package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/showdown/internal/services/session Service,Transport

import "context"

// Transport is a live connection bound to one participant identity.
// Send must not block: fan-out happens inside the room's single-writer
// section, so implementations buffer and deliver asynchronously.
type Transport interface {
	// Send pushes one event to the participant
	Send(event *Event) error

	// Close tears the connection down
	Close()
}

// Service owns the live rooms: the registry, the per-room state machine,
// and the fan-out to bound transports
type Service interface {
	// ResolveOrCreate returns a live room for the code, rehydrating from
	// the durable store or creating a fresh room as needed. An empty
	// code requests a brand-new room with a generated code.
	ResolveOrCreate(ctx context.Context, input *ResolveOrCreateInput) (*ResolveOrCreateOutput, error)

	// BindTransport seats an identity in a room with a live transport.
	// Idempotent for an identity rejoining after a disconnect; a rejoin
	// carrying a different display name renames the seat, subject to the
	// same uniqueness rule as a fresh join.
	BindTransport(ctx context.Context, input *BindTransportInput) (*BindTransportOutput, error)

	// UnbindTransport records a disconnect, retaining the identity's seat
	UnbindTransport(ctx context.Context, input *UnbindTransportInput) (*UnbindTransportOutput, error)

	// RemoveIdentity handles an explicit leave, deleting the seat outright
	RemoveIdentity(ctx context.Context, input *RemoveIdentityInput) (*RemoveIdentityOutput, error)

	// SubmitMove records a participant's move and resolves the round
	// once both moves are present
	SubmitMove(ctx context.Context, input *SubmitMoveInput) (*SubmitMoveOutput, error)

	// SubmitDecision records the loser's truth-or-dare pick. A decision
	// from anyone but the current loser is a silent no-op.
	SubmitDecision(ctx context.Context, input *SubmitDecisionInput) (*SubmitDecisionOutput, error)

	// SendChat echoes a chat line to the room
	SendChat(ctx context.Context, input *SendChatInput) (*SendChatOutput, error)

	// StartNewRound resets a room in the chat phase back to the lobby
	StartNewRound(ctx context.Context, input *StartNewRoundInput) (*StartNewRoundOutput, error)

	// ListOpenRooms returns the codes of rooms with an open slot
	ListOpenRooms(ctx context.Context, input *ListOpenRoomsInput) (*ListOpenRoomsOutput, error)
}
