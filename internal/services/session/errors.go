package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound            SessionError = "room not found"
	ErrRoomNotReady            SessionError = "room is not ready"
	ErrRoomFull                SessionError = "room is full"
	ErrIdentityConflict        SessionError = "name already taken"
	ErrNotInRoom               SessionError = "participant not in room"
	ErrInvalidMove             SessionError = "invalid move"
	ErrInvalidDecision         SessionError = "invalid decision"
	ErrChatLocked              SessionError = "chat is locked"
	ErrCodeGenerationExhausted SessionError = "could not generate a unique room code"
	ErrNilConfig               SessionError = "config cannot be nil"
	ErrNilReconciler           SessionError = "reconciler cannot be nil"
	ErrNilRoomRepo             SessionError = "room repository cannot be nil"
	ErrNilCodeGenerator        SessionError = "code generator cannot be nil"
	ErrNilMessaging            SessionError = "messaging service cannot be nil"
	ErrNilClock                SessionError = "clock cannot be nil"
	ErrNilTransport            SessionError = "transport cannot be nil"
)
