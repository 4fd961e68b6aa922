package models

// Move represents a single choice thrown in a round
type Move string

const (
	// MoveRock beats scissors
	MoveRock Move = "rock"

	// MovePaper beats rock
	MovePaper Move = "paper"

	// MoveScissors beats paper
	MoveScissors Move = "scissors"
)

// beats maps each move to the move it defeats
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MovePaper:    MoveRock,
	MoveScissors: MovePaper,
}

// IsValid returns true if the move is one of the known choices
func (m Move) IsValid() bool {
	_, ok := beats[m]
	return ok
}

// Beats returns true if the move defeats the other move
func (m Move) Beats(other Move) bool {
	return beats[m] == other
}

// MoveResult represents the outcome of comparing two moves
type MoveResult int

const (
	// MoveResultTie indicates both moves were equal
	MoveResultTie MoveResult = iota

	// MoveResultFirstWins indicates the first move won
	MoveResultFirstWins

	// MoveResultSecondWins indicates the second move won
	MoveResultSecondWins
)

// ResolveMoves compares two moves and returns the outcome. The result is
// deterministic for any pair of inputs.
func ResolveMoves(first, second Move) MoveResult {
	if first == second {
		return MoveResultTie
	}

	if first.Beats(second) {
		return MoveResultFirstWins
	}

	return MoveResultSecondWins
}

// Decision represents the loser's pick after a lost round
type Decision string

const (
	// DecisionTruth means the loser chose to answer a truth
	DecisionTruth Decision = "truth"

	// DecisionDare means the loser chose to perform a dare
	DecisionDare Decision = "dare"
)

// IsValid returns true if the decision is one of the known options
func (d Decision) IsValid() bool {
	return d == DecisionTruth || d == DecisionDare
}
