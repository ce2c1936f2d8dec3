// Package statistics computes exact single-throw odds for every scoring
// category by enumerating all ordered hands.
package statistics

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/scoring"
)

// TotalHands is the number of ordered hands of five six-sided dice.
const TotalHands = 6 * 6 * 6 * 6 * 6

// CategoryOdds accumulates the scores one category awards over a set of hands.
type CategoryOdds struct {
	Category scoring.Category
	Hands    int
	Hits     int // hands scoring more than zero
	Sum      int
	SumSq    int // sum of squares for variance calculation
	Max      int
}

// Add records one hand's score.
func (c *CategoryOdds) Add(score int) {
	c.Hands++
	c.Sum += score
	c.SumSq += score * score
	if score > 0 {
		c.Hits++
	}
	if score > c.Max {
		c.Max = score
	}
}

// Merge folds other into c.
func (c *CategoryOdds) Merge(other CategoryOdds) {
	c.Hands += other.Hands
	c.Hits += other.Hits
	c.Sum += other.Sum
	c.SumSq += other.SumSq
	if other.Max > c.Max {
		c.Max = other.Max
	}
}

// Probability returns the fraction of hands that score.
func (c CategoryOdds) Probability() float64 {
	if c.Hands == 0 {
		return 0
	}
	return float64(c.Hits) / float64(c.Hands)
}

// Mean returns the average score per hand.
func (c CategoryOdds) Mean() float64 {
	if c.Hands == 0 {
		return 0
	}
	return float64(c.Sum) / float64(c.Hands)
}

// Variance returns the population variance of the score. Every hand is
// enumerated, so this is exact rather than a sample estimate.
func (c CategoryOdds) Variance() float64 {
	if c.Hands == 0 {
		return 0
	}
	mean := c.Mean()
	return float64(c.SumSq)/float64(c.Hands) - mean*mean
}

// StdDev returns the standard deviation of the score.
func (c CategoryOdds) StdDev() float64 {
	return math.Sqrt(c.Variance())
}

// Odds holds the per-category results in score sheet order.
type Odds struct {
	Hands      int
	Categories []CategoryOdds
}

// For returns the odds for category c.
func (o *Odds) For(c scoring.Category) CategoryOdds {
	for _, co := range o.Categories {
		if co.Category == c {
			return co
		}
	}
	return CategoryOdds{Category: c}
}

type tally [scoring.NumCategories + 1]CategoryOdds

// ComputeOdds scores every ordered hand against every category. Work is
// split by the face of the first die, one worker per face.
func ComputeOdds(ctx context.Context, logger *log.Logger) (*Odds, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	logger = logger.WithPrefix("odds")

	g, ctx := errgroup.WithContext(ctx)
	partials := make([]tally, dice.Sides)

	for face := 1; face <= dice.Sides; face++ {
		g.Go(func() error {
			return enumerate(ctx, face, &partials[face-1])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	odds := &Odds{Categories: make([]CategoryOdds, 0, scoring.NumCategories)}
	for _, c := range scoring.All() {
		total := CategoryOdds{Category: c}
		for i := range partials {
			total.Merge(partials[i][c])
		}
		odds.Categories = append(odds.Categories, total)
	}
	odds.Hands = odds.Categories[0].Hands

	logger.Debug("Computed odds", "hands", odds.Hands, "workers", dice.Sides)
	return odds, nil
}

// enumerate visits every hand whose first die shows first.
func enumerate(ctx context.Context, first int, t *tally) error {
	categories := scoring.All()
	h := dice.Hand{first}
	for b := 1; b <= dice.Sides; b++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h[1] = b
		for c := 1; c <= dice.Sides; c++ {
			h[2] = c
			for d := 1; d <= dice.Sides; d++ {
				h[3] = d
				for e := 1; e <= dice.Sides; e++ {
					h[4] = e
					for _, cat := range categories {
						t[cat].Category = cat
						t[cat].Add(scoring.Score(cat, h))
					}
				}
			}
		}
	}
	return nil
}
