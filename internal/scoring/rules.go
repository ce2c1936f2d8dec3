package scoring

import (
	"slices"

	"github.com/samber/lo"

	"github.com/lox/yatzy/internal/dice"
)

const (
	// YatzyScore is awarded for five of a kind.
	YatzyScore = 50
	// SmallStraightScore is awarded for 1-2-3-4-5.
	SmallStraightScore = 15
	// LargeStraightScore is awarded for 2-3-4-5-6.
	LargeStraightScore = 20
)

// Rule scores a hand. Rules are total: they never fail and never modify the hand.
type Rule func(h dice.Hand) int

var (
	smallStraight = dice.Hand{1, 2, 3, 4, 5}
	largeStraight = dice.Hand{2, 3, 4, 5, 6}
)

// rules is the process-wide rule table indexed by Category. It is never
// modified after initialisation; ledgers refer to entries by key only.
var rules = [...]Rule{
	Ones:          numeral(1),
	Twos:          numeral(2),
	Threes:        numeral(3),
	Fours:         numeral(4),
	Fives:         numeral(5),
	Sixes:         numeral(6),
	Pair:          scorePair,
	TwoPair:       scoreTwoPair,
	ThreeOfAKind:  ofAKind(3),
	FourOfAKind:   ofAKind(4),
	SmallStraight: straight(smallStraight, SmallStraightScore),
	LargeStraight: straight(largeStraight, LargeStraightScore),
	FullHouse:     scoreFullHouse,
	Chance:        scoreChance,
	Yatzy:         scoreYatzy,
}

// RuleFor returns the rule for c. It returns nil for an unknown category.
func RuleFor(c Category) Rule {
	if !c.Valid() {
		return nil
	}
	return rules[c]
}

// Score applies the rule for c to h. Unknown categories score 0.
func Score(c Category, h dice.Hand) int {
	rule := RuleFor(c)
	if rule == nil {
		return 0
	}
	return rule(h)
}

// ScoreAll returns the score h would earn in each of the given categories.
func ScoreAll(h dice.Hand, categories []Category) map[Category]int {
	scores := make(map[Category]int, len(categories))
	for _, c := range categories {
		scores[c] = Score(c, h)
	}
	return scores
}

func numeral(face int) Rule {
	return func(h dice.Hand) int {
		return h.CountOf(face) * face
	}
}

// pairedFaces returns faces showing on at least two dice, highest first.
func pairedFaces(h dice.Hand) []int {
	counts := h.Counts()
	var faces []int
	for face := dice.Sides; face >= 1; face-- {
		if counts[face] >= 2 {
			faces = append(faces, face)
		}
	}
	return faces
}

func scorePair(h dice.Hand) int {
	faces := pairedFaces(h)
	if len(faces) == 0 {
		return 0
	}
	return faces[0] * 2
}

// scoreTwoPair sums every distinct paired face; with five dice there can be
// at most two.
func scoreTwoPair(h dice.Hand) int {
	faces := pairedFaces(h)
	if len(faces) < 2 {
		return 0
	}
	return lo.SumBy(faces, func(face int) int { return face * 2 })
}

// ofAKind scores k times the most frequent face when it shows at least k
// times. Counting scans from six down so ties resolve to the higher face.
func ofAKind(k int) Rule {
	return func(h dice.Hand) int {
		counts := h.Counts()
		best, bestCount := 0, 0
		for face := dice.Sides; face >= 1; face-- {
			if counts[face] > bestCount {
				best, bestCount = face, counts[face]
			}
		}
		if bestCount < k {
			return 0
		}
		return best * k
	}
}

func straight(want dice.Hand, score int) Rule {
	return func(h dice.Hand) int {
		sorted := h
		slices.Sort(sorted[:])
		if sorted != want {
			return 0
		}
		return score
	}
}

// scoreFullHouse requires exactly two distinct faces split three and two.
func scoreFullHouse(h dice.Hand) int {
	counts := h.Counts()
	distinct := lo.CountBy(counts[1:], func(n int) bool { return n > 0 })
	if distinct != 2 {
		return 0
	}
	n := h.CountOf(h[0])
	if n != 2 && n != 3 {
		return 0
	}
	return h.Sum()
}

func scoreChance(h dice.Hand) int {
	return h.Sum()
}

func scoreYatzy(h dice.Hand) int {
	if h.CountOf(h[0]) != dice.Count {
		return 0
	}
	return YatzyScore
}
