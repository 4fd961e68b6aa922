package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/showdown/internal/models"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64
}

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages. Shared
	// across rooms, so access is serialized through mu.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects one message from a pool
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetRoundResultMessage returns a personalized message for a round result
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string

	if input.IsWinner {
		messages = []string{
			fmt.Sprintf("Your %s crushes %s's %s! Victory is yours.", input.OwnMove, input.OpponentName, input.OpponentMove),
			fmt.Sprintf("%s never saw that %s coming. You win!", input.OpponentName, input.OwnMove),
			fmt.Sprintf("A textbook %s! %s has to pick truth or dare now.", input.OwnMove, input.OpponentName),
			fmt.Sprintf("You win! %s threw %s into your %s like an amateur.", input.OpponentName, input.OpponentMove, input.OwnMove),
		}
	} else {
		messages = []string{
			fmt.Sprintf("Ouch. %s's %s beats your %s. Time to pick truth or dare!", input.OpponentName, input.OpponentMove, input.OwnMove),
			fmt.Sprintf("Your %s was no match for %s's %s. Choose your fate!", input.OwnMove, input.OpponentName, input.OpponentMove),
			fmt.Sprintf("%s takes the round. The truth-or-dare gods await your decision.", input.OpponentName),
			fmt.Sprintf("Defeated by a %s! Truth or dare, friend?", input.OpponentMove),
		}
	}

	return &GetRoundResultMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetTieMessage returns a message for a tied round
func (s *service) GetTieMessage(ctx context.Context, input *GetTieMessageInput) (*GetTieMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	messages := []string{
		fmt.Sprintf("Great minds throw alike! Double %s, nobody wins. Go again!", input.Move),
		fmt.Sprintf("Two %ss walk into a room... it's a tie! Throw again.", input.Move),
		"A tie! The tension is unbearable. Round resets.",
		fmt.Sprintf("Both of you picked %s. Spooky. Try again!", input.Move),
	}

	return &GetTieMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetDecisionPromptMessage returns the prompt shown while the loser picks
func (s *service) GetDecisionPromptMessage(ctx context.Context, input *GetDecisionPromptMessageInput) (*GetDecisionPromptMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string

	if input.IsChooser {
		messages = []string{
			"Truth or dare? Choose wisely...",
			"The moment of reckoning: truth or dare?",
			"You lost, you choose. Truth or dare?",
		}
	} else {
		messages = []string{
			fmt.Sprintf("Waiting for %s to pick truth or dare...", input.LoserName),
			fmt.Sprintf("%s is sweating over the big decision. Hang tight!", input.LoserName),
			fmt.Sprintf("The ball is in %s's court. Truth or dare incoming.", input.LoserName),
		}
	}

	return &GetDecisionPromptMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetDecisionRevealMessage returns a personalized message for a revealed pick
func (s *service) GetDecisionRevealMessage(ctx context.Context, input *GetDecisionRevealMessageInput) (*GetDecisionRevealMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string

	if input.IsChooser {
		if input.Selection == models.DecisionTruth {
			messages = []string{
				"You chose truth. Prepare to spill it!",
				"Truth it is. No lying allowed, we'll know.",
			}
		} else {
			messages = []string{
				"You chose dare. Brave... or foolish?",
				"Dare accepted. Good luck out there.",
			}
		}
	} else {
		if input.Selection == models.DecisionTruth {
			messages = []string{
				fmt.Sprintf("%s chose truth! Ask away, nothing is off limits.", input.ChooserName),
				fmt.Sprintf("%s picked truth. Time for the hard questions.", input.ChooserName),
			}
		} else {
			messages = []string{
				fmt.Sprintf("%s chose dare! Make it a good one.", input.ChooserName),
				fmt.Sprintf("%s picked dare. Be creative, be merciless.", input.ChooserName),
			}
		}
	}

	return &GetDecisionRevealMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetPresenceMessage returns a message for a presence change
func (s *service) GetPresenceMessage(ctx context.Context, input *GetPresenceMessageInput) (*GetPresenceMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var messages []string

	if input.Connected {
		messages = []string{
			fmt.Sprintf("%s is back! The game continues.", input.DisplayName),
			fmt.Sprintf("%s reconnected. Did you miss them?", input.DisplayName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s lost connection. Their seat is saved.", input.DisplayName),
			fmt.Sprintf("%s dropped. Hopefully they'll be right back.", input.DisplayName),
		}
	}

	return &GetPresenceMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
