package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/scoring"
)

// MaxThrows is the number of throws allowed per turn.
const MaxThrows = 3

// Phase is a state of the turn state machine.
type Phase int

const (
	// PhaseRoll throws the unheld dice and, before the last throw, asks
	// which dice to keep.
	PhaseRoll Phase = iota
	// PhaseChoose asks for a category and records the score.
	PhaseChoose
	// PhaseDone means the turn is complete.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseRoll:
		return "roll"
	case PhaseChoose:
		return "choose"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// TurnResult describes a completed turn.
type TurnResult struct {
	Player   string
	Hand     dice.Hand
	Throws   int
	Category scoring.Category
	Score    int
}

// Turn runs one player's turn: up to MaxThrows throws followed by a
// category choice.
type Turn struct {
	ledger   *Ledger
	roller   Roller
	prompter Prompter
	logger   *log.Logger

	phase  Phase
	throws int
	hand   dice.Hand
	held   dice.Held
	result TurnResult
}

// NewTurn prepares a turn for ledger. The hand starts empty and nothing is held.
func NewTurn(ledger *Ledger, roller Roller, prompter Prompter, logger *log.Logger) *Turn {
	return &Turn{
		ledger:   ledger,
		roller:   roller,
		prompter: prompter,
		logger:   logger,
		phase:    PhaseRoll,
	}
}

// Phase returns the current state.
func (t *Turn) Phase() Phase {
	return t.phase
}

// Hand returns the current dice.
func (t *Turn) Hand() dice.Hand {
	return t.hand
}

// Throws returns how many throws have been made.
func (t *Turn) Throws() int {
	return t.throws
}

// Step performs one transition of the state machine.
func (t *Turn) Step() error {
	switch t.phase {
	case PhaseRoll:
		return t.roll()
	case PhaseChoose:
		return t.choose()
	case PhaseDone:
		return nil
	default:
		return fmt.Errorf("unknown turn phase %v", t.phase)
	}
}

// Play steps the turn until it is done.
func (t *Turn) Play() (TurnResult, error) {
	for t.phase != PhaseDone {
		if err := t.Step(); err != nil {
			return TurnResult{}, err
		}
	}
	return t.result, nil
}

func (t *Turn) roll() error {
	t.roller.Roll(&t.hand, t.held)
	t.throws++
	t.logger.Debug("Rolled dice",
		"player", t.ledger.Name(),
		"throw", t.throws,
		"dice", t.hand.String(),
		"held", t.held.String())

	if t.throws >= MaxThrows {
		t.phase = PhaseChoose
		return nil
	}

	held, err := t.prompter.RequestHeldDice(t.ledger.Snapshot(), t.hand, t.held, t.throws)
	if err != nil {
		return fmt.Errorf("requesting held dice: %w", err)
	}
	t.held = held & dice.AllHeld

	if t.held.All() {
		t.phase = PhaseChoose
	}
	return nil
}

func (t *Turn) choose() error {
	for {
		category, err := t.prompter.RequestCategory(t.ledger.Snapshot(), t.hand, t.ledger.Remaining())
		if err != nil {
			return fmt.Errorf("requesting category: %w", err)
		}

		score := scoring.Score(category, t.hand)
		if err := t.ledger.Record(category, score); err != nil {
			// Only ErrInvalidCategory is possible; ask again.
			t.logger.Debug("Rejected category", "player", t.ledger.Name(), "category", category, "error", err)
			continue
		}

		t.logger.Debug("Recorded score",
			"player", t.ledger.Name(),
			"category", category,
			"score", score,
			"total", t.ledger.Total())

		t.result = TurnResult{
			Player:   t.ledger.Name(),
			Hand:     t.hand,
			Throws:   t.throws,
			Category: category,
			Score:    score,
		}
		t.phase = PhaseDone
		return nil
	}
}
