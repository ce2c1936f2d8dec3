package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/game"
	"github.com/lox/yatzy/internal/scoring"
)

func TestParseHeld(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  []int
	}{
		{"", nil},
		{"1235", []int{0, 1, 2, 4}},
		{"5", []int{4}},
		{"1 2, 3", []int{0, 1, 2}},
		{"11", []int{0}},
		{"54321", []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHeld(tt.input)
			require.NoError(t, err)
			want, err := dice.NewHeld(tt.want...)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseHeldRejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"6", "0", "12a", "x", "-1", "1.2"} {
		_, err := ParseHeld(input)
		require.ErrorIs(t, err, ErrMalformedSelection, "input %q", input)
		assert.True(t, IsRejection(err))
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	available := []scoring.Category{scoring.Ones, scoring.TwoPair, scoring.Yatzy}

	t.Run("by number", func(t *testing.T) {
		c, err := ParseCategory("8", available)
		require.NoError(t, err)
		assert.Equal(t, scoring.TwoPair, c)
	})

	t.Run("by name", func(t *testing.T) {
		c, err := ParseCategory(" Yatzy ", available)
		require.NoError(t, err)
		assert.Equal(t, scoring.Yatzy, c)
	})

	t.Run("unavailable", func(t *testing.T) {
		_, err := ParseCategory("14", available)
		require.ErrorIs(t, err, game.ErrInvalidCategory)
		assert.True(t, IsRejection(err))

		_, err = ParseCategory("chance", available)
		require.ErrorIs(t, err, game.ErrInvalidCategory)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, input := range []string{"", "0", "16", "-3", "bogus"} {
			_, err := ParseCategory(input, available)
			require.ErrorIs(t, err, ErrMalformedSelection, "input %q", input)
		}
	})
}

func TestParseYesNo(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]bool{"y": true, "Y": true, " n ": false, "N": false} {
		got, err := ParseYesNo(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseYesNo("yes")
	require.ErrorIs(t, err, ErrMalformedSelection)
	assert.Contains(t, err.Error(), "invalid option 'yes'")
}

func TestParseName(t *testing.T) {
	t.Parallel()

	name, err := ParseName("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	_, err = ParseName("   ")
	require.ErrorIs(t, err, ErrMalformedSelection)
}

func lines(answers ...string) func() (string, error) {
	return func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
}

func TestAskRetriesUntilValid(t *testing.T) {
	t.Parallel()

	var rejected []string
	held, err := Ask(lines("abc", "9", "24"), ParseHeld, func(input string, err error) {
		assert.True(t, IsRejection(err))
		rejected = append(rejected, input)
	})
	require.NoError(t, err)

	want, err := dice.NewHeld(1, 3)
	require.NoError(t, err)
	assert.Equal(t, want, held)
	assert.Equal(t, []string{"abc", "9"}, rejected)
}

func TestAskStopsOnReadError(t *testing.T) {
	t.Parallel()

	_, err := Ask(lines("maybe"), ParseYesNo, nil)
	require.ErrorIs(t, err, io.EOF)
	assert.False(t, IsRejection(err))
	assert.False(t, IsRejection(errors.New("boom")))
}
