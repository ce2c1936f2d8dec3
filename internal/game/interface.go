package game

import (
	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/scoring"
)

// Roller throws the dice of a hand that are not held.
type Roller interface {
	Roll(h *dice.Hand, held dice.Held)
}

// Prompter supplies a player's decisions during a turn. Implementations
// block until they have a valid answer and re-prompt on malformed input;
// an error means input can no longer be read and ends the game.
type Prompter interface {
	// RequestHeldDice asks which dice to keep after throw number throw.
	// held is the current selection.
	RequestHeldDice(player Snapshot, hand dice.Hand, held dice.Held, throw int) (dice.Held, error)

	// RequestCategory asks where to score hand. available is never empty.
	RequestCategory(player Snapshot, hand dice.Hand, available []scoring.Category) (scoring.Category, error)
}

// SetupPrompter collects the players before a game starts.
type SetupPrompter interface {
	RequestPlayerName() (string, error)
	RequestAddAnotherPlayer() (bool, error)
}

// Reporter receives game progress. Methods return nothing: a display
// failure never stops the game.
type Reporter interface {
	TurnStarted(player Snapshot)
	ScoreRecorded(player Snapshot, category scoring.Category, score int)
	Scoreboard(players []Snapshot)
	Winner(player Snapshot)
}

// NopReporter discards every report.
type NopReporter struct{}

func (NopReporter) TurnStarted(Snapshot) {}
func (NopReporter) ScoreRecorded(Snapshot, scoring.Category, int) {}
func (NopReporter) Scoreboard([]Snapshot) {}
func (NopReporter) Winner(Snapshot) {}
