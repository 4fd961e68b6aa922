package messaging

import (
	"github.com/KirkDiggler/showdown/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// GetRoundResultMessageInput contains parameters for a round result message
type GetRoundResultMessageInput struct {
	// IsWinner indicates whether the recipient won the round
	IsWinner bool

	// OpponentName is the display name of the recipient's opponent
	OpponentName string

	// OwnMove is the move the recipient threw
	OwnMove models.Move

	// OpponentMove is the move the opponent threw
	OpponentMove models.Move

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRoundResultMessageOutput contains the generated round result message
type GetRoundResultMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetTieMessageInput contains parameters for a tie message
type GetTieMessageInput struct {
	// Move is the move both participants threw
	Move models.Move

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetTieMessageOutput contains the generated tie message
type GetTieMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDecisionPromptMessageInput contains parameters for a decision prompt
type GetDecisionPromptMessageInput struct {
	// IsChooser indicates whether the recipient is the one picking
	IsChooser bool

	// LoserName is the display name of the participant who must pick
	LoserName string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetDecisionPromptMessageOutput contains the generated prompt message
type GetDecisionPromptMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDecisionRevealMessageInput contains parameters for a decision reveal message
type GetDecisionRevealMessageInput struct {
	// IsChooser indicates whether the recipient made the pick themselves
	IsChooser bool

	// ChooserName is the display name of the participant who picked
	ChooserName string

	// Selection is the truth-or-dare pick being revealed
	Selection models.Decision

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetDecisionRevealMessageOutput contains the generated reveal message
type GetDecisionRevealMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetPresenceMessageInput contains parameters for a presence change message
type GetPresenceMessageInput struct {
	// DisplayName is the participant whose presence changed
	DisplayName string

	// Connected is true for a reconnect, false for a disconnect
	Connected bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetPresenceMessageOutput contains the generated presence message
type GetPresenceMessageOutput struct {
	Message string
	Tone    MessageTone
}
