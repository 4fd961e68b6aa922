package ws

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/showdown/internal/common/uuid"
	"github.com/KirkDiggler/showdown/internal/services/session"
)

const (
	// writeWait bounds a single frame write
	writeWait = 10 * time.Second

	// pongWait is how long a connection may go silent before the read
	// loop gives up on it
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds inbound frames
	maxMessageSize = 4096

	// sendBufferSize is the outbound queue per connection. Fan-out
	// never blocks on a slow client; an overflowing queue drops events.
	sendBufferSize = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Room codes are the access control; origins are not
		return true
	},
}

// Config holds configuration for the websocket handler
type Config struct {
	// Sessions is the room session service
	Sessions session.Service

	// UUIDGenerator mints guest identities
	UUIDGenerator uuid.UUID

	// Logger for connection lifecycle
	Logger zerolog.Logger
}

// Handler terminates websocket connections and bridges them to the
// session service as transports
type Handler struct {
	sessions session.Service
	uuider   uuid.UUID
	logger   zerolog.Logger
}

// NewHandler creates a new websocket handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Handler{
		sessions: cfg.Sessions,
		uuider:   cfg.UUIDGenerator,
		logger:   cfg.Logger,
	}, nil
}

// RegisterRoutes mounts the handler's routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ws", h.HandleWS)
}

// HandleWS upgrades the request and runs the connection until it drops
func (h *Handler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &client{
		handler:     h,
		conn:        conn,
		outbound:    make(chan *session.Event, sendBufferSize),
		done:        make(chan struct{}),
		defaultRoom: c.Query("room"),
	}

	go client.writePump()
	client.readPump(c.Request.Context())
}

// client is one websocket connection. It implements session.Transport:
// the session service pushes events into outbound and the write pump
// drains them, so fan-out never blocks on the network.
type client struct {
	handler  *Handler
	conn     *websocket.Conn
	outbound chan *session.Event

	closeOnce sync.Once
	done      chan struct{}

	// defaultRoom is the ?room= query value, used when the join message
	// carries no code
	defaultRoom string

	mu       sync.Mutex
	roomCode string
	identity string
	left     bool
}

// Send implements session.Transport. It must not block: the caller
// holds the room's lock. A client too slow to drain its queue loses
// the connection rather than stalling the room; it can reconnect and
// repaint from the state snapshot.
func (c *client) Send(event *session.Event) error {
	select {
	case <-c.done:
		return ErrConnectionClosed
	case c.outbound <- event:
		return nil
	default:
		c.Close()
		return ErrSendBufferFull
	}
}

// Close implements session.Transport
func (c *client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// writePump owns all writes to the connection
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event := <-c.outbound:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// readPump reads inbound frames until the connection drops, then
// unbinds the seat so the participant shows as disconnected
func (c *client) readPump(ctx context.Context) {
	defer func() {
		c.Close()

		c.mu.Lock()
		roomCode, identity, left := c.roomCode, c.identity, c.left
		c.mu.Unlock()

		if roomCode != "" && !left {
			_, err := c.handler.sessions.UnbindTransport(context.WithoutCancel(ctx), &session.UnbindTransportInput{
				RoomCode: roomCode,
				Identity: identity,
			})
			if err != nil {
				c.handler.logger.Warn().
					Err(err).
					Str("room_code", roomCode).
					Msg("failed to unbind transport")
			}
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.handler.logger.Debug().Err(err).Msg("websocket read failed")
			}
			return
		}

		if done := c.dispatch(ctx, &msg); done {
			return
		}
	}
}

// dispatch routes one inbound frame. A true return ends the connection.
func (c *client) dispatch(ctx context.Context, msg *ClientMessage) bool {
	if msg.Action == ActionJoin {
		c.handleJoin(ctx, msg)
		return false
	}

	if msg.Action == ActionListRooms {
		c.handleListRooms(ctx)
		return false
	}

	c.mu.Lock()
	roomCode, identity := c.roomCode, c.identity
	c.mu.Unlock()

	if roomCode == "" {
		c.sendError("join a room first")
		return false
	}

	switch msg.Action {
	case ActionSubmitMove:
		_, err := c.handler.sessions.SubmitMove(ctx, &session.SubmitMoveInput{
			RoomCode: roomCode,
			Identity: identity,
			Move:     msg.Move,
		})
		if err != nil {
			c.sendError(err.Error())
		}

	case ActionSubmitDecision:
		_, err := c.handler.sessions.SubmitDecision(ctx, &session.SubmitDecisionInput{
			RoomCode:  roomCode,
			Identity:  identity,
			Selection: msg.Selection,
		})
		if err != nil {
			c.sendError(err.Error())
		}

	case ActionSendChat:
		_, err := c.handler.sessions.SendChat(ctx, &session.SendChatInput{
			RoomCode: roomCode,
			Identity: identity,
			Text:     msg.Text,
		})
		if err != nil {
			c.sendError(err.Error())
		}

	case ActionNewRound:
		_, err := c.handler.sessions.StartNewRound(ctx, &session.StartNewRoundInput{
			RoomCode: roomCode,
			Identity: identity,
		})
		if err != nil {
			c.sendError(err.Error())
		}

	case ActionLeaveRoom:
		c.mu.Lock()
		c.left = true
		c.mu.Unlock()

		_, err := c.handler.sessions.RemoveIdentity(ctx, &session.RemoveIdentityInput{
			RoomCode: roomCode,
			Identity: identity,
		})
		if err != nil {
			c.handler.logger.Warn().
				Err(err).
				Str("room_code", roomCode).
				Msg("failed to remove identity on leave")
		}
		return true

	default:
		c.sendError(fmt.Sprintf("unknown action %q", msg.Action))
	}

	return false
}

// handleJoin resolves the room and binds this connection as the
// identity's transport. A join may be retried after a rejection.
func (c *client) handleJoin(ctx context.Context, msg *ClientMessage) {
	c.mu.Lock()
	alreadyJoined := c.roomCode != ""
	c.mu.Unlock()

	if alreadyJoined {
		c.sendError("already joined")
		return
	}

	roomCode := msg.RoomCode
	if roomCode == "" {
		roomCode = c.defaultRoom
	}

	identity := msg.Identity
	if identity == "" {
		identity = "guest-" + c.handler.uuider.NewUUID()
	}

	displayName := msg.DisplayName
	if displayName == "" {
		displayName = "Guest"
	}

	resolved, err := c.handler.sessions.ResolveOrCreate(ctx, &session.ResolveOrCreateInput{
		RoomCode: roomCode,
	})
	if err != nil {
		c.sendJoinRejected(err.Error())
		return
	}

	_, err = c.handler.sessions.BindTransport(ctx, &session.BindTransportInput{
		RoomCode:    resolved.RoomCode,
		Identity:    identity,
		DisplayName: displayName,
		Transport:   c,
	})
	if err != nil {
		c.sendJoinRejected(err.Error())
		return
	}

	c.mu.Lock()
	c.roomCode = resolved.RoomCode
	c.identity = identity
	c.mu.Unlock()
}

func (c *client) handleListRooms(ctx context.Context) {
	output, err := c.handler.sessions.ListOpenRooms(ctx, &session.ListOpenRoomsInput{})
	if err != nil {
		c.sendError(err.Error())
		return
	}

	_ = c.Send(&session.Event{
		Type: EventRoomList,
		Data: &RoomListPayload{RoomCodes: output.RoomCodes},
	})
}

func (c *client) sendJoinRejected(reason string) {
	_ = c.Send(&session.Event{
		Type: EventJoinRejected,
		Data: &JoinRejectedPayload{Reason: reason},
	})
}

func (c *client) sendError(reason string) {
	_ = c.Send(&session.Event{
		Type: EventError,
		Data: &ErrorPayload{Reason: reason},
	})
}
