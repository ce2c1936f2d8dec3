// Package scoring holds the fifteen scoring categories and the pure rules
// that turn a hand of dice into points.
package scoring

import (
	"strings"
)

// Category identifies a box on the score sheet.
type Category int

// Categories in score sheet order. Numbering starts at 1 so that the menu
// number a player types is the category value.
const (
	Ones Category = iota + 1
	Twos
	Threes
	Fours
	Fives
	Sixes
	Pair
	TwoPair
	ThreeOfAKind
	FourOfAKind
	SmallStraight
	LargeStraight
	FullHouse
	Chance
	Yatzy
)

// NumCategories is the number of boxes on a score sheet.
const NumCategories = int(Yatzy)

var categoryNames = [...]string{
	Ones:          "Ones",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three Of A Kind",
	FourOfAKind:   "Four Of A Kind",
	SmallStraight: "Small Straight",
	LargeStraight: "Large Straight",
	FullHouse:     "Full House",
	Chance:        "Chance",
	Yatzy:         "Yatzy",
}

// maxScores holds the best score each category can award.
var maxScores = [...]int{
	Ones:          5,
	Twos:          10,
	Threes:        15,
	Fours:         20,
	Fives:         25,
	Sixes:         30,
	Pair:          12,
	TwoPair:       22,
	ThreeOfAKind:  18,
	FourOfAKind:   24,
	SmallStraight: 15,
	LargeStraight: 20,
	FullHouse:     28,
	Chance:        30,
	Yatzy:         YatzyScore,
}

// All returns every category in score sheet order.
func All() []Category {
	all := make([]Category, 0, NumCategories)
	for c := Ones; c <= Yatzy; c++ {
		all = append(all, c)
	}
	return all
}

// Valid reports whether c is one of the fifteen categories.
func (c Category) Valid() bool {
	return c >= Ones && c <= Yatzy
}

// IsUpper reports whether c is one of the numeral categories Ones..Sixes.
func (c Category) IsUpper() bool {
	return c >= Ones && c <= Sixes
}

// Face returns the die face counted by a numeral category, or 0.
func (c Category) Face() int {
	if !c.IsUpper() {
		return 0
	}
	return int(c)
}

// MaxScore returns the highest score c can award.
func (c Category) MaxScore() int {
	if !c.Valid() {
		return 0
	}
	return maxScores[c]
}

// String returns the display name, e.g. "Three Of A Kind".
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Lookup finds a category by display name, ignoring case, spaces,
// underscores and hyphens: "three_of_a_kind" and "Three of a kind" both match.
func Lookup(name string) (Category, bool) {
	key := normalizeName(name)
	if key == "" {
		return 0, false
	}
	for c := Ones; c <= Yatzy; c++ {
		if normalizeName(categoryNames[c]) == key {
			return c, true
		}
	}
	return 0, false
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
