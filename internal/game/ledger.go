package game

import (
	"errors"
	"fmt"

	"github.com/lox/yatzy/internal/scoring"
)

// ErrInvalidCategory is returned when recording into a category that is
// already used or does not exist.
var ErrInvalidCategory = errors.New("category not available")

// Ledger is one player's score sheet. A category can be recorded exactly
// once; there is no undo.
type Ledger struct {
	name      string
	total     int
	upper     int
	available [scoring.NumCategories + 1]bool
	remaining int
	scores    map[scoring.Category]int
}

// NewLedger creates a score sheet with every category available.
func NewLedger(name string) *Ledger {
	l := &Ledger{
		name:      name,
		remaining: scoring.NumCategories,
		scores:    make(map[scoring.Category]int, scoring.NumCategories),
	}
	for _, c := range scoring.All() {
		l.available[c] = true
	}
	return l
}

// Name returns the player's display name.
func (l *Ledger) Name() string {
	return l.name
}

// Total returns the sum of every recorded score.
func (l *Ledger) Total() int {
	return l.total
}

// Upper returns the sum of scores recorded under Ones..Sixes.
func (l *Ledger) Upper() int {
	return l.upper
}

// Has reports whether c can still be recorded.
func (l *Ledger) Has(c scoring.Category) bool {
	return c.Valid() && l.available[c]
}

// Remaining returns the categories not yet used, in score sheet order.
func (l *Ledger) Remaining() []scoring.Category {
	remaining := make([]scoring.Category, 0, l.remaining)
	for _, c := range scoring.All() {
		if l.available[c] {
			remaining = append(remaining, c)
		}
	}
	return remaining
}

// Record books score under c and removes c from the available set.
func (l *Ledger) Record(c scoring.Category, score int) error {
	if !l.Has(c) {
		return fmt.Errorf("%w: %s for %s", ErrInvalidCategory, c, l.name)
	}

	l.available[c] = false
	l.remaining--
	l.scores[c] = score
	l.total += score
	if c.IsUpper() {
		l.upper += score
	}
	return nil
}

// IsFinished reports whether every category has been used.
func (l *Ledger) IsFinished() bool {
	return l.remaining == 0
}

// Snapshot is a read-only copy of a ledger for display.
type Snapshot struct {
	Name      string
	Total     int
	Upper     int
	Remaining int
	Scores    map[scoring.Category]int
}

// Snapshot returns a copy of the ledger's current state.
func (l *Ledger) Snapshot() Snapshot {
	scores := make(map[scoring.Category]int, len(l.scores))
	for c, s := range l.scores {
		scores[c] = s
	}
	return Snapshot{
		Name:      l.name,
		Total:     l.total,
		Upper:     l.upper,
		Remaining: l.remaining,
		Scores:    scores,
	}
}
