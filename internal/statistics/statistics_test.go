package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yatzy/internal/scoring"
)

func TestComputeOdds(t *testing.T) {
	t.Parallel()

	odds, err := ComputeOdds(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, TotalHands, odds.Hands)
	require.Len(t, odds.Categories, scoring.NumCategories)

	wantHits := map[scoring.Category]int{
		scoring.Ones:          TotalHands - 5*5*5*5*5,
		scoring.Pair:          TotalHands - 6*5*4*3*2,
		scoring.TwoPair:       2100,
		scoring.ThreeOfAKind:  1656,
		scoring.FourOfAKind:   156,
		scoring.SmallStraight: 120,
		scoring.LargeStraight: 120,
		scoring.FullHouse:     300,
		scoring.Chance:        TotalHands,
		scoring.Yatzy:         6,
	}
	for c, want := range wantHits {
		assert.Equal(t, want, odds.For(c).Hits, "category %s", c)
	}

	for _, co := range odds.Categories {
		assert.Equal(t, TotalHands, co.Hands, "category %s", co.Category)
		assert.Equal(t, co.Category.MaxScore(), co.Max, "category %s", co.Category)
	}

	assert.InDelta(t, 17.5, odds.For(scoring.Chance).Mean(), 1e-9)
	assert.InDelta(t, 5.0/6.0, odds.For(scoring.Ones).Mean(), 1e-9)
	assert.InDelta(t, 30.0/6.0, odds.For(scoring.Sixes).Mean(), 1e-9)
	assert.InDelta(t, 6.0/TotalHands, odds.For(scoring.Yatzy).Probability(), 1e-12)
}

func TestComputeOddsCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ComputeOdds(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCategoryOdds(t *testing.T) {
	t.Parallel()

	var a CategoryOdds
	for _, s := range []int{0, 2, 4} {
		a.Add(s)
	}
	assert.Equal(t, 3, a.Hands)
	assert.Equal(t, 2, a.Hits)
	assert.Equal(t, 4, a.Max)
	assert.InDelta(t, 2.0, a.Mean(), 1e-9)
	assert.InDelta(t, 8.0/3.0, a.Variance(), 1e-9)

	var b CategoryOdds
	b.Add(10)
	a.Merge(b)
	assert.Equal(t, 4, a.Hands)
	assert.Equal(t, 10, a.Max)
	assert.InDelta(t, 4.0, a.Mean(), 1e-9)

	var empty CategoryOdds
	assert.Zero(t, empty.Mean())
	assert.Zero(t, empty.Probability())
	assert.Zero(t, empty.StdDev())
}
