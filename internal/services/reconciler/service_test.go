package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/showdown/internal/models"
	roomRepo "github.com/KirkDiggler/showdown/internal/repositories/room"
	repoMocks "github.com/KirkDiggler/showdown/internal/repositories/room/mocks"
)

// testDebounceWindow is kept short so debounce tests run quickly
const testDebounceWindow = 25 * time.Millisecond

type ReconcilerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *repoMocks.MockRepository
	service  Service
	ctx      context.Context

	testNow time.Time
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)

	svc, err := NewService(&Config{
		Repository:     s.mockRepo,
		DebounceWindow: testDebounceWindow,
		Logger:         zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) testRoom() *models.Room {
	room := models.NewRoom("ABC123", s.testNow)
	room.Roster["alice-id"] = &models.RosterEntry{DisplayName: "alice", Connected: true}
	return room
}

func (s *ReconcilerTestSuite) TestNewServiceValidatesConfig() {
	_, err := NewService(nil)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrNilConfig))

	_, err = NewService(&Config{})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrNilRepository))
}

func (s *ReconcilerTestSuite) TestDebounceCollapsesWrites() {
	saved := make(chan *models.Room, 1)

	// N schedules inside the window must produce exactly one write,
	// reflecting the last scheduled state
	s.mockRepo.EXPECT().
		SaveRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			saved <- input.Room
			return nil
		}).
		Times(1)

	room := s.testRoom()

	room.Phase = models.RoomPhaseLobby
	s.Require().NoError(s.service.ScheduleSave(s.ctx, &ScheduleSaveInput{Room: room}))

	room.Phase = models.RoomPhaseChoosing
	s.Require().NoError(s.service.ScheduleSave(s.ctx, &ScheduleSaveInput{Room: room}))

	room.Phase = models.RoomPhaseChat
	s.Require().NoError(s.service.ScheduleSave(s.ctx, &ScheduleSaveInput{Room: room}))

	select {
	case got := <-saved:
		s.Equal(models.RoomPhaseChat, got.Phase)
	case <-time.After(20 * testDebounceWindow):
		s.FailNow("debounced write never fired")
	}

	// Give a stacked (rather than restarted) timer a chance to misfire
	time.Sleep(4 * testDebounceWindow)
}

func (s *ReconcilerTestSuite) TestScheduleSaveTakesASnapshot() {
	saved := make(chan *models.Room, 1)

	s.mockRepo.EXPECT().
		SaveRoom(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SaveRoomInput) error {
			saved <- input.Room
			return nil
		}).
		Times(1)

	room := s.testRoom()
	room.Winner = "alice-id"
	s.Require().NoError(s.service.ScheduleSave(s.ctx, &ScheduleSaveInput{Room: room}))

	// Mutations after scheduling must not leak into the pending write
	room.Winner = "someone-else"
	room.Roster["alice-id"].DisplayName = "mallory"

	select {
	case got := <-saved:
		s.Equal("alice-id", got.Winner)
		s.Equal("alice", got.Roster["alice-id"].DisplayName)
	case <-time.After(20 * testDebounceWindow):
		s.FailNow("debounced write never fired")
	}
}

func (s *ReconcilerTestSuite) TestFlushWritesImmediately() {
	s.mockRepo.EXPECT().
		SaveRoom(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	room := s.testRoom()
	s.Require().NoError(s.service.ScheduleSave(s.ctx, &ScheduleSaveInput{Room: room}))

	// Flush must not wait out the debounce window
	s.Require().NoError(s.service.Flush(s.ctx))

	// The fired timer must not produce a second write
	time.Sleep(4 * testDebounceWindow)
}

func (s *ReconcilerTestSuite) TestCloseRefusesFurtherScheduling() {
	s.service.Close()

	err := s.service.ScheduleSave(s.ctx, &ScheduleSaveInput{Room: s.testRoom()})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrClosed))
}

func (s *ReconcilerTestSuite) TestLoadMapsNotFound() {
	s.mockRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomCode: "MISSING"}).
		Return(nil, roomRepo.ErrRoomNotFound)

	out, err := s.service.Load(s.ctx, &LoadInput{RoomCode: "MISSING"})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrSnapshotNotFound))
	s.Nil(out)
}

func (s *ReconcilerTestSuite) TestLoadRejectsIncompatibleSchema() {
	s.mockRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomCode: "FUTURE"}).
		Return(nil, roomRepo.ErrSnapshotVersionMismatch)

	out, err := s.service.Load(s.ctx, &LoadInput{RoomCode: "FUTURE"})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrSnapshotNotFound))
	s.Nil(out)
}

func (s *ReconcilerTestSuite) TestLoadReturnsRoom() {
	room := s.testRoom()

	s.mockRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{RoomCode: "ABC123"}).
		Return(room, nil)

	out, err := s.service.Load(s.ctx, &LoadInput{RoomCode: "ABC123"})
	s.Require().NoError(err)
	s.Equal(room, out.Room)
}
