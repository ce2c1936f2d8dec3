// Package prompt parses the text players type and runs the
// validate-and-reprompt loop shared by the console and TUI front-ends.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/game"
	"github.com/lox/yatzy/internal/scoring"
)

var (
	// ErrMalformedSelection is returned for input that cannot be parsed.
	ErrMalformedSelection = errors.New("malformed selection")
	// ErrAborted is returned when the player quits while being prompted.
	ErrAborted = errors.New("input aborted")
)

// Hints shown after a rejected answer.
const (
	HeldHint     = "Insert numbers for dice. F.ex. '1235' keeps dice 1, 2, 3 and 5 and throws the rest again"
	CategoryHint = "Choose a number or name from the list"
)

// ParseHeld parses a held-dice answer: the 1-based positions of the dice to
// keep, e.g. "1235". Spaces and commas are ignored and an empty answer keeps
// nothing.
func ParseHeld(input string) (dice.Held, error) {
	var positions []int
	for _, r := range input {
		switch {
		case r == ' ' || r == ',' || r == '\t':
			continue
		case r >= '1' && r <= '0'+dice.Count:
			positions = append(positions, int(r-'1'))
		default:
			return 0, fmt.Errorf("%w: %q is not a die between 1 and %d", ErrMalformedSelection, r, dice.Count)
		}
	}
	return dice.NewHeld(positions...)
}

// ParseCategory parses a category by menu number or by name and checks that
// it is still available.
func ParseCategory(input string, available []scoring.Category) (scoring.Category, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: empty category", ErrMalformedSelection)
	}

	var c scoring.Category
	if n, err := strconv.Atoi(input); err == nil {
		c = scoring.Category(n)
		if !c.Valid() {
			return 0, fmt.Errorf("%w: no category numbered %d", ErrMalformedSelection, n)
		}
	} else {
		var ok bool
		if c, ok = scoring.Lookup(input); !ok {
			return 0, fmt.Errorf("%w: unknown category %q", ErrMalformedSelection, input)
		}
	}

	for _, a := range available {
		if a == c {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", game.ErrInvalidCategory, c)
}

// ParseYesNo accepts y or n in either case.
func ParseYesNo(input string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid option '%s'", ErrMalformedSelection, input)
	}
}

// ParseName trims a player name and rejects blank names.
func ParseName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrMalformedSelection)
	}
	return name, nil
}

// Ask reads answers until parse accepts one. Each rejected answer is passed
// to rejected, which typically prints a hint. Errors from read end the loop.
func Ask[T any](read func() (string, error), parse func(string) (T, error), rejected func(input string, err error)) (T, error) {
	for {
		input, err := read()
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(input)
		if err == nil {
			return value, nil
		}
		if rejected != nil {
			rejected(input, err)
		}
	}
}

// IsRejection reports whether err is a recoverable input mistake rather than
// an I/O failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrMalformedSelection) || errors.Is(err, game.ErrInvalidCategory) || errors.Is(err, dice.ErrInvalidPosition)
}
