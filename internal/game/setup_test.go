package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/randutil"
)

func TestCollectPlayers(t *testing.T) {
	t.Parallel()

	t.Run("appends extra player after humans", func(t *testing.T) {
		setup := &scriptedSetup{names: []string{"Alice", "Bob"}, answers: []bool{true, false}}
		names, err := CollectPlayers(setup, DefaultExtraPlayer)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob", "Iina"}, names)
	})

	t.Run("single human", func(t *testing.T) {
		setup := &scriptedSetup{names: []string{"Alice"}, answers: []bool{false}}
		names, err := CollectPlayers(setup, "Robot")
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Robot"}, names)
	})

	t.Run("input errors propagate", func(t *testing.T) {
		_, err := CollectPlayers(&scriptedSetup{}, DefaultExtraPlayer)
		require.ErrorIs(t, err, errInputClosed)

		_, err = CollectPlayers(&scriptedSetup{names: []string{"Alice"}}, DefaultExtraPlayer)
		require.ErrorIs(t, err, errInputClosed)
	})
}

func TestGameHasOneLedgerPerHumanPlusExtra(t *testing.T) {
	t.Parallel()

	for humans := 1; humans <= 4; humans++ {
		names := make([]string, humans)
		for i := range names {
			names[i] = string(rune('A' + i))
		}
		g, err := New(dice.NewRoller(randutil.New(1)), WithExtraPlayer(names, DefaultExtraPlayer))
		require.NoError(t, err)

		players := g.Players()
		assert.Len(t, players, humans+1)
		assert.Equal(t, DefaultExtraPlayer, players[len(players)-1].Name)
	}
}
