// Package dice models the five dice rolled during a turn and which of them
// are held between throws.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Count is the number of dice in a hand.
	Count = 5
	// Sides is the number of faces on each die.
	Sides = 6
)

// ErrInvalidPosition is returned when a held position is outside [0, Count).
var ErrInvalidPosition = errors.New("dice position out of range")

// Hand is the five face values of a turn, each in [1, Sides].
type Hand [Count]int

// Counts returns how many dice show each face, indexed by face value.
// Index 0 is unused.
func (h Hand) Counts() [Sides + 1]int {
	var counts [Sides + 1]int
	for _, v := range h {
		if v >= 1 && v <= Sides {
			counts[v]++
		}
	}
	return counts
}

// CountOf returns how many dice show face. Faces outside [1, Sides] count 0.
func (h Hand) CountOf(face int) int {
	if face < 1 || face > Sides {
		return 0
	}
	return h.Counts()[face]
}

// Sum returns the total of all faces.
func (h Hand) Sum() int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

// Valid reports whether every die shows a face in [1, Sides].
func (h Hand) Valid() bool {
	for _, v := range h {
		if v < 1 || v > Sides {
			return false
		}
	}
	return true
}

// String renders the hand as "[1 2 3 4 5]".
func (h Hand) String() string {
	parts := make([]string, Count)
	for i, v := range h {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Held is a bit set of dice positions that must not be re-rolled.
// Bit i corresponds to position i.
type Held uint8

// AllHeld holds every die.
const AllHeld Held = 1<<Count - 1

// NewHeld builds a Held from 0-based positions. Duplicates collapse.
func NewHeld(positions ...int) (Held, error) {
	var h Held
	for _, p := range positions {
		if p < 0 || p >= Count {
			return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
		}
		h |= 1 << p
	}
	return h, nil
}

// Has reports whether position i is held. Out of range positions are never held.
func (h Held) Has(i int) bool {
	if i < 0 || i >= Count {
		return false
	}
	return h&(1<<i) != 0
}

// Count returns the number of held dice.
func (h Held) Count() int {
	n := 0
	for i := 0; i < Count; i++ {
		if h.Has(i) {
			n++
		}
	}
	return n
}

// All reports whether every die is held.
func (h Held) All() bool {
	return h&AllHeld == AllHeld
}

// Positions returns the held positions in ascending order.
func (h Held) Positions() []int {
	positions := make([]int, 0, Count)
	for i := 0; i < Count; i++ {
		if h.Has(i) {
			positions = append(positions, i)
		}
	}
	return positions
}

// String renders held positions 1-based, the way players type them.
func (h Held) String() string {
	var sb strings.Builder
	for _, p := range h.Positions() {
		sb.WriteString(strconv.Itoa(p + 1))
	}
	return sb.String()
}
