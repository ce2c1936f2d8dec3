package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/scoring"
)

func TestTurnThrowsThreeTimesWithoutHolds(t *testing.T) {
	t.Parallel()

	src := dice.NewFaces(1, 2, 3, 4, 5, 6)
	prompter := &scriptedPrompter{categories: []scoring.Category{scoring.Chance}}
	ledger := NewLedger("Alice")

	turn := NewTurn(ledger, dice.NewRoller(src), prompter, quietLogger())
	result, err := turn.Play()
	require.NoError(t, err)

	assert.Equal(t, 15, src.Drawn())
	assert.Equal(t, MaxThrows, result.Throws)
	require.Len(t, prompter.heldRequests, MaxThrows-1)
	assert.Equal(t, 1, prompter.heldRequests[0].throw)
	assert.Equal(t, 2, prompter.heldRequests[1].throw)

	// Faces 11..15 of the cycling script.
	assert.Equal(t, dice.Hand{5, 6, 1, 2, 3}, result.Hand)
	assert.Equal(t, scoring.Chance, result.Category)
	assert.Equal(t, 17, result.Score)
	assert.Equal(t, 17, ledger.Total())
	assert.Equal(t, PhaseDone, turn.Phase())
}

func TestTurnHoldingAllDiceEndsRollingEarly(t *testing.T) {
	t.Parallel()

	src := dice.NewFaces(4, 4, 4, 4, 4)
	prompter := &scriptedPrompter{holdFn: holdAll, categories: []scoring.Category{scoring.Yatzy}}
	ledger := NewLedger("Alice")

	result, err := NewTurn(ledger, dice.NewRoller(src), prompter, quietLogger()).Play()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Throws)
	assert.Equal(t, dice.Count, src.Drawn())
	assert.Len(t, prompter.heldRequests, 1)
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 0, ledger.Upper())
}

func TestTurnKeepsHeldDice(t *testing.T) {
	t.Parallel()

	src := dice.NewFaces(6, 6, 2, 6, 1, 3, 4, 6, 5)
	keep := func(hand dice.Hand, throw int) dice.Held {
		var positions []int
		for i, v := range hand {
			if v == 6 {
				positions = append(positions, i)
			}
		}
		held, err := dice.NewHeld(positions...)
		if err != nil {
			panic(err)
		}
		return held
	}
	prompter := &scriptedPrompter{holdFn: keep, categories: []scoring.Category{scoring.Sixes}}

	turn := NewTurn(NewLedger("Alice"), dice.NewRoller(src), prompter, quietLogger())

	require.NoError(t, turn.Step())
	assert.Equal(t, dice.Hand{6, 6, 2, 6, 1}, turn.Hand())
	assert.Equal(t, PhaseRoll, turn.Phase())

	require.NoError(t, turn.Step())
	assert.Equal(t, dice.Hand{6, 6, 3, 6, 4}, turn.Hand())

	require.NoError(t, turn.Step())
	assert.Equal(t, dice.Hand{6, 6, 6, 6, 5}, turn.Hand())
	assert.Equal(t, PhaseChoose, turn.Phase())
	assert.Equal(t, 3, turn.Throws())

	require.NoError(t, turn.Step())
	assert.Equal(t, PhaseDone, turn.Phase())

	// No hold request after the final throw.
	require.Len(t, prompter.heldRequests, 2)
	heldAfterFirst, err := dice.NewHeld(0, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, heldAfterFirst, prompter.heldRequests[1].held)

	// Step is a no-op once done.
	require.NoError(t, turn.Step())
	assert.Equal(t, 9, src.Drawn())
}

func TestTurnRetriesUnavailableCategory(t *testing.T) {
	t.Parallel()

	ledger := NewLedger("Alice")
	require.NoError(t, ledger.Record(scoring.Chance, 20))

	prompter := &scriptedPrompter{
		holdFn:     holdAll,
		categories: []scoring.Category{scoring.Chance, scoring.Category(42), scoring.Pair},
	}
	result, err := NewTurn(ledger, dice.NewRoller(dice.NewFaces(3, 3, 1, 2, 5)), prompter, quietLogger()).Play()
	require.NoError(t, err)

	assert.Len(t, prompter.categoryRequests, 3)
	assert.NotContains(t, prompter.categoryRequests[0], scoring.Chance)
	assert.Equal(t, scoring.Pair, result.Category)
	assert.Equal(t, 6, result.Score)
	assert.Equal(t, 26, ledger.Total())
}

func TestTurnMasksOutOfRangeHeldBits(t *testing.T) {
	t.Parallel()

	src := dice.NewFaces(2)
	prompter := &scriptedPrompter{holdFn: func(dice.Hand, int) dice.Held { return dice.Held(0xE0) }}

	result, err := NewTurn(NewLedger("Alice"), dice.NewRoller(src), prompter, quietLogger()).Play()
	require.NoError(t, err)

	// Bits above the fifth die hold nothing, so every throw happens.
	assert.Equal(t, MaxThrows, result.Throws)
	assert.Equal(t, dice.Held(0), prompter.heldRequests[1].held)
}

func TestTurnPropagatesPrompterErrors(t *testing.T) {
	t.Parallel()

	roller := dice.NewRoller(dice.NewFaces(1))

	_, err := NewTurn(NewLedger("Alice"), roller, failingPrompter{failHeld: true}, quietLogger()).Play()
	require.ErrorIs(t, err, errInputClosed)

	ledger := NewLedger("Alice")
	_, err = NewTurn(ledger, roller, failingPrompter{}, quietLogger()).Play()
	require.ErrorIs(t, err, errInputClosed)
	assert.Len(t, ledger.Remaining(), scoring.NumCategories)
}

func TestPhaseString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "roll", PhaseRoll.String())
	assert.Equal(t, "choose", PhaseChoose.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
