package messaging

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoundResultMessagePersonalizes(t *testing.T) {
	svc, err := NewService(&ServiceConfig{Seed: 1})
	require.NoError(t, err)

	output, err := svc.GetRoundResultMessage(context.Background(), &GetRoundResultMessageInput{
		IsWinner:     false,
		OpponentName: "Alice",
		OwnMove:      "scissors",
		OpponentMove: "rock",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.Message)
	assert.Equal(t, ToneFunny, output.Tone)
}

func TestGetPresenceMessageDefaultsToNeutralTone(t *testing.T) {
	svc, err := NewService(&ServiceConfig{Seed: 1})
	require.NoError(t, err)

	output, err := svc.GetPresenceMessage(context.Background(), &GetPresenceMessageInput{
		DisplayName: "Alice",
		Connected:   false,
	})
	require.NoError(t, err)

	assert.Contains(t, output.Message, "Alice")
	assert.Equal(t, ToneNeutral, output.Tone)
}

// Message lookups come in from many rooms at once; the shared generator
// must hold up under concurrent callers. Run with -race.
func TestConcurrentMessageLookups(t *testing.T) {
	svc, err := NewService(&ServiceConfig{Seed: 1})
	require.NoError(t, err)

	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := svc.GetTieMessage(ctx, &GetTieMessageInput{Move: "rock"})
				assert.NoError(t, err)

				_, err = svc.GetRoundResultMessage(ctx, &GetRoundResultMessageInput{
					IsWinner:     true,
					OpponentName: "Bob",
					OwnMove:      "paper",
					OpponentMove: "rock",
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
