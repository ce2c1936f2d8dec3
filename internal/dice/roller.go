package dice

// Source supplies random integers. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Roller throws the dice of a hand that are not held.
type Roller struct {
	src Source
}

// NewRoller creates a roller drawing from src. The source is required so that
// tests can make every throw deterministic.
func NewRoller(src Source) *Roller {
	if src == nil {
		panic("source is required for dice roller")
	}
	return &Roller{src: src}
}

// Roll replaces every die not in held with a uniformly random face.
func (r *Roller) Roll(h *Hand, held Held) {
	for i := range h {
		if held.Has(i) {
			continue
		}
		h[i] = r.src.IntN(Sides) + 1
	}
}

// Faces is a Source that replays fixed face values in order, cycling when
// exhausted. Values are faces in [1, Sides], not raw IntN results.
type Faces struct {
	values []int
	next   int
}

// NewFaces creates a scripted source. It panics on an empty script.
func NewFaces(values ...int) *Faces {
	if len(values) == 0 {
		panic("at least one face value required")
	}
	return &Faces{values: values}
}

// IntN returns the next scripted face mapped into [0, n).
func (f *Faces) IntN(n int) int {
	v := f.values[f.next%len(f.values)]
	f.next++
	return (v - 1) % n
}

// Drawn returns how many values have been consumed.
func (f *Faces) Drawn() int {
	return f.next
}
