package ws

// HandlerError is a custom error type for websocket handler errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        HandlerError = "config cannot be nil"
	ErrNilSessions      HandlerError = "session service cannot be nil"
	ErrNilUUIDGenerator HandlerError = "uuid generator cannot be nil"
	ErrConnectionClosed HandlerError = "connection closed"
	ErrSendBufferFull   HandlerError = "send buffer full"
)
