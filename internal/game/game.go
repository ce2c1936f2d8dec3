package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/samber/lo"
)

// DefaultExtraPlayer is appended after the human players of every game.
const DefaultExtraPlayer = "Iina"

// ErrNoPlayers is returned when a game is created without players.
var ErrNoPlayers = errors.New("at least one player required")

// Game cycles a fixed sequence of players through their turns until the
// score sheets are full.
type Game struct {
	players []*Ledger
	roller  Roller
	clock   quartz.Clock
	logger  *log.Logger
	turns   int
}

// Result is the outcome of a finished game.
type Result struct {
	Winner     Snapshot
	Standings  []Snapshot // turn order
	Turns      int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the game took.
func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// New creates a game for names in turn order. The roller is required so that
// randomness is explicit and tests can script every throw.
//
//	roller := dice.NewRoller(randutil.New(seed))
//	g, err := game.New(roller, game.WithExtraPlayer([]string{"Alice"}, game.DefaultExtraPlayer))
func New(roller Roller, names []string, opts ...Option) (*Game, error) {
	if roller == nil {
		panic("roller is required for game creation")
	}
	if len(names) == 0 {
		return nil, ErrNoPlayers
	}

	cfg := defaultGameConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	players := make([]*Ledger, len(names))
	for i, name := range names {
		players[i] = NewLedger(name)
	}

	return &Game{
		players: players,
		roller:  roller,
		clock:   cfg.clock,
		logger:  cfg.logger.WithPrefix("game"),
	}, nil
}

// Players returns snapshots of every ledger in turn order.
func (g *Game) Players() []Snapshot {
	return lo.Map(g.players, func(l *Ledger, _ int) Snapshot { return l.Snapshot() })
}

// Turns returns the number of completed turns.
func (g *Game) Turns() int {
	return g.turns
}

// IsOver reports whether every score sheet is full.
func (g *Game) IsOver() bool {
	return lo.EveryBy(g.players, func(l *Ledger) bool { return l.IsFinished() })
}

// Play runs turns in player order until a player with a full score sheet
// comes up, then reports the scoreboard and the winner. Players fill their
// sheets at the same rate, so in practice all finish together.
func (g *Game) Play(ctx context.Context, prompter Prompter, reporter Reporter) (*Result, error) {
	if reporter == nil {
		reporter = NopReporter{}
	}

	startedAt := g.clock.Now()
	g.logger.Info("Starting game", "players", lo.Map(g.players, func(l *Ledger, _ int) string { return l.Name() }))

	for {
		for _, player := range g.players {
			if player.IsFinished() {
				return g.finish(startedAt, reporter), nil
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			reporter.TurnStarted(player.Snapshot())

			turn := NewTurn(player, g.roller, prompter, g.logger.WithPrefix("turn"))
			result, err := turn.Play()
			if err != nil {
				return nil, fmt.Errorf("turn %d for %s: %w", g.turns+1, player.Name(), err)
			}
			g.turns++

			reporter.ScoreRecorded(player.Snapshot(), result.Category, result.Score)
		}
	}
}

func (g *Game) finish(startedAt time.Time, reporter Reporter) *Result {
	standings := g.Players()
	winner := Winner(standings)

	reporter.Scoreboard(standings)
	reporter.Winner(winner)

	result := &Result{
		Winner:     winner,
		Standings:  standings,
		Turns:      g.turns,
		StartedAt:  startedAt,
		FinishedAt: g.clock.Now(),
	}
	g.logger.Info("Game finished",
		"winner", winner.Name,
		"score", winner.Total,
		"turns", result.Turns,
		"duration", result.Duration())
	return result
}

// Winner returns the player with the highest total. Ties go to the player
// earliest in turn order. It returns the zero Snapshot for no players.
func Winner(players []Snapshot) Snapshot {
	return lo.MaxBy(players, func(a, b Snapshot) bool {
		return a.Total > b.Total
	})
}
