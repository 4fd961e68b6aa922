package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/showdown/internal/common/clock"
	"github.com/KirkDiggler/showdown/internal/common/uuid"
	roomRepo "github.com/KirkDiggler/showdown/internal/repositories/room"
	"github.com/KirkDiggler/showdown/internal/roomcode"
	"github.com/KirkDiggler/showdown/internal/services/messaging"
	"github.com/KirkDiggler/showdown/internal/services/reconciler"
	"github.com/KirkDiggler/showdown/internal/services/session"
)

// serverEvent is the wire shape of one outbound frame
type serverEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type HandlerTestSuite struct {
	suite.Suite
	redis      *miniredis.Miniredis
	server     *httptest.Server
	reconciler reconciler.Service
	conns      []*websocket.Conn
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.redis = mr

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	repo, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	recon, err := reconciler.NewService(&reconciler.Config{
		Repository:     repo,
		DebounceWindow: 10 * time.Millisecond,
		Logger:         zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.reconciler = recon

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	sessions, err := session.NewService(&session.Config{
		Reconciler:    recon,
		RoomRepo:      repo,
		CodeGenerator: roomcode.New(&roomcode.Config{Seed: 1}),
		Messaging:     msgSvc,
		Clock:         &clock.DefaultClock{},
		Logger:        zerolog.Nop(),
	})
	s.Require().NoError(err)

	handler, err := NewHandler(&Config{
		Sessions:      sessions,
		UUIDGenerator: uuid.New(),
		Logger:        zerolog.Nop(),
	})
	s.Require().NoError(err)

	router := gin.New()
	handler.RegisterRoutes(router)
	s.server = httptest.NewServer(router)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = nil
	s.server.Close()
	s.reconciler.Close()
	s.redis.Close()
}

func (s *HandlerTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	s.conns = append(s.conns, conn)
	return conn
}

func (s *HandlerTestSuite) send(conn *websocket.Conn, msg *ClientMessage) {
	s.Require().NoError(conn.WriteJSON(msg))
}

// waitFor reads frames until one matches the wanted event type,
// skipping interleaved broadcasts
func (s *HandlerTestSuite) waitFor(conn *websocket.Conn, eventType session.EventType) json.RawMessage {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	for {
		var event serverEvent
		s.Require().NoError(conn.ReadJSON(&event), "waiting for %s", eventType)
		if event.Event == string(eventType) {
			return event.Data
		}
	}
}

// join seats a connection and returns the acknowledged room code and identity
func (s *HandlerTestSuite) join(conn *websocket.Conn, roomCode, identity, displayName string) (string, string) {
	s.send(conn, &ClientMessage{
		Action:      ActionJoin,
		RoomCode:    roomCode,
		Identity:    identity,
		DisplayName: displayName,
	})

	var ack session.JoinAckPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(conn, session.EventJoinAck), &ack))
	return ack.RoomCode, ack.Identity
}

func (s *HandlerTestSuite) TestJoinMintsGuestIdentity() {
	conn := s.dial()
	roomCode, identity := s.join(conn, "", "", "Alice")

	s.NotEmpty(roomCode)
	s.True(strings.HasPrefix(identity, "guest-"))

	var snapshot session.StateSnapshotPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(conn, session.EventStateSnapshot), &snapshot))
	s.Equal(roomCode, snapshot.RoomCode)
	s.False(snapshot.ChatUnlocked)
}

func (s *HandlerTestSuite) TestFullRoundOverTheWire() {
	alice := s.dial()
	roomCode, _ := s.join(alice, "", "alice-id", "Alice")

	bob := s.dial()
	joinedCode, _ := s.join(bob, roomCode, "bob-id", "Bob")
	s.Equal(roomCode, joinedCode)

	// Chat is locked until a round concludes
	s.send(alice, &ClientMessage{Action: ActionSendChat, Text: "early"})
	var wsErr ErrorPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(alice, EventError), &wsErr))
	s.Equal("chat is locked", wsErr.Reason)

	s.send(alice, &ClientMessage{Action: ActionSubmitMove, Move: "rock"})
	s.send(bob, &ClientMessage{Action: ActionSubmitMove, Move: "scissors"})

	var aliceResult session.RoundResultPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(alice, session.EventRoundResult), &aliceResult))
	s.True(aliceResult.IsWinner)
	s.NotEmpty(aliceResult.Message)

	var bobResult session.RoundResultPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(bob, session.EventRoundResult), &bobResult))
	s.False(bobResult.IsWinner)

	var alicePrompt session.DecisionPromptPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(alice, session.EventDecisionPrompt), &alicePrompt))
	s.Equal(session.DecisionPromptWait, alicePrompt.Mode)

	var bobPrompt session.DecisionPromptPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(bob, session.EventDecisionPrompt), &bobPrompt))
	s.Equal(session.DecisionPromptChoose, bobPrompt.Mode)

	s.send(bob, &ClientMessage{Action: ActionSubmitDecision, Selection: "dare"})

	var revealed session.DecisionRevealedPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(alice, session.EventDecisionRevealed), &revealed))
	s.Equal("dare", string(revealed.Selection))
	s.waitFor(bob, session.EventDecisionRevealed)

	s.send(alice, &ClientMessage{Action: ActionSendChat, Text: "good game"})

	var chat session.ChatMessagePayload
	s.Require().NoError(json.Unmarshal(s.waitFor(bob, session.EventChatMessage), &chat))
	s.Equal("Alice", chat.From)
	s.Equal("good game", chat.Text)

	s.send(bob, &ClientMessage{Action: ActionNewRound})
	s.waitFor(alice, session.EventNewRoundReset)
	s.waitFor(bob, session.EventNewRoundReset)
}

func (s *HandlerTestSuite) TestThirdJoinerIsRejected() {
	alice := s.dial()
	roomCode, _ := s.join(alice, "", "alice-id", "Alice")

	bob := s.dial()
	s.join(bob, roomCode, "bob-id", "Bob")

	carol := s.dial()
	s.send(carol, &ClientMessage{
		Action:      ActionJoin,
		RoomCode:    roomCode,
		Identity:    "carol-id",
		DisplayName: "Carol",
	})

	var rejected JoinRejectedPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(carol, EventJoinRejected), &rejected))
	s.Equal("room is full", rejected.Reason)
}

func (s *HandlerTestSuite) TestReconnectSignalsPeer() {
	alice := s.dial()
	roomCode, _ := s.join(alice, "", "alice-id", "Alice")

	bob := s.dial()
	s.join(bob, roomCode, "bob-id", "Bob")

	s.Require().NoError(alice.Close())

	var gone session.PresencePayload
	s.Require().NoError(json.Unmarshal(s.waitFor(bob, session.EventPeerDisconnected), &gone))
	s.Equal("Alice", gone.DisplayName)

	reconnected := s.dial()
	s.send(reconnected, &ClientMessage{
		Action:      ActionJoin,
		RoomCode:    roomCode,
		Identity:    "alice-id",
		DisplayName: "Alice",
	})

	var ack session.JoinAckPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(reconnected, session.EventJoinAck), &ack))
	s.True(ack.Rejoined)

	var back session.PresencePayload
	s.Require().NoError(json.Unmarshal(s.waitFor(bob, session.EventPeerReconnected), &back))
	s.Equal("Alice", back.DisplayName)
}

func (s *HandlerTestSuite) TestListRooms() {
	alice := s.dial()
	roomCode, _ := s.join(alice, "", "alice-id", "Alice")

	browser := s.dial()
	s.send(browser, &ClientMessage{Action: ActionListRooms})

	var list RoomListPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(browser, EventRoomList), &list))
	s.Contains(list.RoomCodes, roomCode)
}

func (s *HandlerTestSuite) TestActionsRequireJoin() {
	conn := s.dial()
	s.send(conn, &ClientMessage{Action: ActionSubmitMove, Move: "rock"})

	var wsErr ErrorPayload
	s.Require().NoError(json.Unmarshal(s.waitFor(conn, EventError), &wsErr))
	s.Equal("join a room first", wsErr.Reason)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
