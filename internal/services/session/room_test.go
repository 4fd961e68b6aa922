package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/showdown/internal/models"
)

func twoSeatedRoom(t *testing.T) *models.Room {
	t.Helper()

	room := models.NewRoom("GAME42", time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC))
	room.Roster["alice-id"] = &models.RosterEntry{DisplayName: "Alice", Connected: true}
	room.Roster["bob-id"] = &models.RosterEntry{DisplayName: "Bob", Connected: true}
	return room
}

func TestApplyMoveRequiresFullRoster(t *testing.T) {
	room := models.NewRoom("GAME42", time.Now())
	room.Roster["alice-id"] = &models.RosterEntry{DisplayName: "Alice", Connected: true}

	_, err := applyMove(room, "alice-id", models.MoveRock)
	assert.ErrorIs(t, err, ErrRoomNotReady)
	assert.Equal(t, models.RoomPhaseLobby, room.Phase)
	assert.Empty(t, room.PendingChoices)
}

func TestApplyMoveRejectsStrangers(t *testing.T) {
	room := twoSeatedRoom(t)

	_, err := applyMove(room, "mallory-id", models.MoveRock)
	assert.ErrorIs(t, err, ErrNotInRoom)
}

func TestApplyMoveRejectsUnknownMove(t *testing.T) {
	room := twoSeatedRoom(t)

	_, err := applyMove(room, "alice-id", models.Move("lizard"))
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestApplyMoveFirstSubmissionEntersChoosing(t *testing.T) {
	room := twoSeatedRoom(t)

	outcome, err := applyMove(room, "alice-id", models.MoveRock)
	require.NoError(t, err)

	assert.False(t, outcome.resolved)
	assert.Equal(t, models.RoomPhaseChoosing, room.Phase)
	assert.Equal(t, models.MoveRock, room.PendingChoices["alice-id"])
}

func TestApplyMoveResubmissionReplacesOwnChoice(t *testing.T) {
	room := twoSeatedRoom(t)

	_, err := applyMove(room, "alice-id", models.MoveRock)
	require.NoError(t, err)

	outcome, err := applyMove(room, "alice-id", models.MovePaper)
	require.NoError(t, err)

	assert.False(t, outcome.resolved)
	assert.Equal(t, models.MovePaper, room.PendingChoices["alice-id"])
	assert.Len(t, room.PendingChoices, 1)
}

func TestApplyMoveResolvesEveryPairing(t *testing.T) {
	cases := []struct {
		name       string
		aliceMove  models.Move
		bobMove    models.Move
		aliceLoses bool
	}{
		{"rock crushes scissors", models.MoveRock, models.MoveScissors, false},
		{"scissors cut paper", models.MoveScissors, models.MovePaper, false},
		{"paper covers rock", models.MovePaper, models.MoveRock, false},
		{"scissors lose to rock", models.MoveScissors, models.MoveRock, true},
		{"paper loses to scissors", models.MovePaper, models.MoveScissors, true},
		{"rock loses to paper", models.MoveRock, models.MovePaper, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room := twoSeatedRoom(t)

			_, err := applyMove(room, "alice-id", tc.aliceMove)
			require.NoError(t, err)

			outcome, err := applyMove(room, "bob-id", tc.bobMove)
			require.NoError(t, err)

			require.True(t, outcome.resolved)
			require.False(t, outcome.tie)

			winner, loser := "alice-id", "bob-id"
			if tc.aliceLoses {
				winner, loser = "bob-id", "alice-id"
			}

			assert.Equal(t, winner, outcome.winner)
			assert.Equal(t, loser, outcome.loser)
			assert.Equal(t, winner, room.Winner)
			assert.Equal(t, loser, room.Loser)
			assert.True(t, room.ChatUnlocked)
			assert.True(t, room.AwaitingTruthOrDare)
			assert.Equal(t, models.RoomPhaseTruthDareSelection, room.Phase)
		})
	}
}

func TestApplyMoveSubmissionOrderDoesNotMatter(t *testing.T) {
	roomA := twoSeatedRoom(t)
	_, err := applyMove(roomA, "alice-id", models.MoveRock)
	require.NoError(t, err)
	outcomeA, err := applyMove(roomA, "bob-id", models.MoveScissors)
	require.NoError(t, err)

	roomB := twoSeatedRoom(t)
	_, err = applyMove(roomB, "bob-id", models.MoveScissors)
	require.NoError(t, err)
	outcomeB, err := applyMove(roomB, "alice-id", models.MoveRock)
	require.NoError(t, err)

	assert.Equal(t, outcomeA.winner, outcomeB.winner)
	assert.Equal(t, outcomeA.loser, outcomeB.loser)
}

func TestApplyMoveTieReturnsToLobby(t *testing.T) {
	room := twoSeatedRoom(t)

	_, err := applyMove(room, "alice-id", models.MovePaper)
	require.NoError(t, err)

	outcome, err := applyMove(room, "bob-id", models.MovePaper)
	require.NoError(t, err)

	assert.True(t, outcome.resolved)
	assert.True(t, outcome.tie)
	assert.Equal(t, models.MovePaper, outcome.move)
	assert.Equal(t, models.RoomPhaseLobby, room.Phase)
	assert.Empty(t, room.PendingChoices)
	assert.Empty(t, room.Winner)
	assert.False(t, room.ChatUnlocked)
}

func TestApplyMoveRejectedOutsideRound(t *testing.T) {
	room := twoSeatedRoom(t)
	room.Phase = models.RoomPhaseChat

	_, err := applyMove(room, "alice-id", models.MoveRock)
	assert.ErrorIs(t, err, ErrRoomNotReady)
}

func resolvedRoom(t *testing.T) *models.Room {
	t.Helper()

	room := twoSeatedRoom(t)
	_, err := applyMove(room, "alice-id", models.MoveRock)
	require.NoError(t, err)
	_, err = applyMove(room, "bob-id", models.MoveScissors)
	require.NoError(t, err)
	require.Equal(t, "bob-id", room.Loser)
	return room
}

func TestApplyDecisionFromLoser(t *testing.T) {
	room := resolvedRoom(t)

	applied, err := applyDecision(room, "bob-id", models.DecisionDare)
	require.NoError(t, err)

	assert.True(t, applied)
	assert.Equal(t, models.DecisionDare, room.TruthOrDareSelection)
	assert.False(t, room.AwaitingTruthOrDare)
	assert.Equal(t, models.RoomPhaseChat, room.Phase)
}

func TestApplyDecisionFromWinnerIsIgnored(t *testing.T) {
	room := resolvedRoom(t)

	applied, err := applyDecision(room, "alice-id", models.DecisionTruth)
	require.NoError(t, err)

	assert.False(t, applied)
	assert.Empty(t, room.TruthOrDareSelection)
	assert.True(t, room.AwaitingTruthOrDare)
	assert.Equal(t, models.RoomPhaseTruthDareSelection, room.Phase)
}

func TestApplyDecisionOutsideWindowIsIgnored(t *testing.T) {
	room := twoSeatedRoom(t)

	applied, err := applyDecision(room, "alice-id", models.DecisionTruth)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestApplyDecisionRejectsUnknownSelection(t *testing.T) {
	room := resolvedRoom(t)

	_, err := applyDecision(room, "bob-id", models.Decision("double-dare"))
	assert.ErrorIs(t, err, ErrInvalidDecision)
	assert.True(t, room.AwaitingTruthOrDare)
}

func TestApplyNewRoundRequiresChatPhase(t *testing.T) {
	room := resolvedRoom(t)

	err := applyNewRound(room, "alice-id")
	assert.ErrorIs(t, err, ErrRoomNotReady)
}

func TestApplyNewRoundResetsRoundState(t *testing.T) {
	room := resolvedRoom(t)

	applied, err := applyDecision(room, "bob-id", models.DecisionTruth)
	require.NoError(t, err)
	require.True(t, applied)

	require.NoError(t, applyNewRound(room, "alice-id"))

	assert.Equal(t, models.RoomPhaseLobby, room.Phase)
	assert.Empty(t, room.PendingChoices)
	assert.Empty(t, room.Winner)
	assert.Empty(t, room.Loser)
	assert.Empty(t, room.TruthOrDareSelection)
	assert.False(t, room.AwaitingTruthOrDare)
	assert.False(t, room.ChatUnlocked)
}

func TestBuildSnapshotIsPersonalized(t *testing.T) {
	room := resolvedRoom(t)
	room.Roster["alice-id"].Connected = false
	live := newLiveRoom(room)

	forBob := buildSnapshot(live, "bob-id")
	assert.Equal(t, "GAME42", forBob.RoomCode)
	assert.True(t, forBob.IsLoser)
	assert.False(t, forBob.IsWinner)
	assert.True(t, forBob.AwaitingDecision)
	assert.True(t, forBob.ChatUnlocked)
	assert.False(t, forBob.PeerConnected)
	assert.Equal(t, models.MoveScissors, forBob.OwnPendingChoice)

	forAlice := buildSnapshot(live, "alice-id")
	assert.True(t, forAlice.IsWinner)
	assert.False(t, forAlice.IsLoser)
	assert.True(t, forAlice.PeerConnected)
	assert.Equal(t, models.MoveRock, forAlice.OwnPendingChoice)
}
