package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/showdown/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetRoundResultMessage returns a personalized message for a round result
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetTieMessage returns a message for a tied round
	GetTieMessage(ctx context.Context, input *GetTieMessageInput) (*GetTieMessageOutput, error)

	// GetDecisionPromptMessage returns the prompt shown while the loser picks truth or dare
	GetDecisionPromptMessage(ctx context.Context, input *GetDecisionPromptMessageInput) (*GetDecisionPromptMessageOutput, error)

	// GetDecisionRevealMessage returns a personalized message for a revealed truth-or-dare pick
	GetDecisionRevealMessage(ctx context.Context, input *GetDecisionRevealMessageInput) (*GetDecisionRevealMessageOutput, error)

	// GetPresenceMessage returns a message for a participant disconnecting or reconnecting
	GetPresenceMessage(ctx context.Context, input *GetPresenceMessageInput) (*GetPresenceMessageOutput, error)
}
