// Package console plays Yatzy on a line-oriented terminal.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/internal/game"
	"github.com/lox/yatzy/internal/prompt"
	"github.com/lox/yatzy/internal/scoring"
)

// LineReader reads one line of input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Console prompts players and reports progress on a terminal.
type Console struct {
	in     LineReader
	out    io.Writer
	render *display.Renderer
	logger *log.Logger
}

var (
	_ game.Prompter      = (*Console)(nil)
	_ game.SetupPrompter = (*Console)(nil)
	_ game.Reporter      = (*Console)(nil)
)

// New creates a console reading from in and writing to out.
func New(in LineReader, out io.Writer, render *display.Renderer, logger *log.Logger) *Console {
	return &Console{
		in:     in,
		out:    out,
		render: render,
		logger: logger.WithPrefix("console"),
	}
}

// NewReadline creates a console on the process terminal with line editing
// and history. The returned close function restores the terminal.
func NewReadline(render *display.Renderer, logger *log.Logger) (*Console, func() error, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    100,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialise terminal: %w", err)
	}
	return New(rl, rl.Stdout(), render, logger), rl.Close, nil
}

// Title prints the game banner.
func (c *Console) Title() {
	c.println(c.render.Title())
	c.println("")
}

// RequestPlayerName implements game.SetupPrompter.
func (c *Console) RequestPlayerName() (string, error) {
	name, err := prompt.Ask(c.reader("Player name: "), prompt.ParseName, func(_ string, _ error) {
		c.printLines(c.render.Rejected("Name cannot be empty", ""))
	})
	if err != nil {
		return "", err
	}
	c.println(fmt.Sprintf("%s added to the game", name))
	return name, nil
}

// RequestAddAnotherPlayer implements game.SetupPrompter.
func (c *Console) RequestAddAnotherPlayer() (bool, error) {
	return prompt.Ask(c.reader("Add another player? (Y/N) "), prompt.ParseYesNo, func(input string, _ error) {
		c.printLines(c.render.Rejected(fmt.Sprintf("Invalid option '%s'", input), ""))
	})
}

// RequestHeldDice implements game.Prompter.
func (c *Console) RequestHeldDice(player game.Snapshot, hand dice.Hand, held dice.Held, throw int) (dice.Held, error) {
	c.println("")
	c.println(c.render.Throw(throw))
	c.println(c.render.Dice(hand, held))

	return prompt.Ask(c.reader("Dice to keep: "), prompt.ParseHeld, func(input string, err error) {
		c.logger.Debug("Rejected held dice", "player", player.Name, "input", input, "error", err)
		c.printLines(c.render.Rejected("Invalid input", prompt.HeldHint))
		c.println(c.render.Dice(hand, held))
	})
}

// RequestCategory implements game.Prompter.
func (c *Console) RequestCategory(player game.Snapshot, hand dice.Hand, available []scoring.Category) (scoring.Category, error) {
	c.println("")
	c.println(c.render.Dice(hand, 0))
	c.printLines(c.render.CategoryMenu(hand, available))

	parse := func(input string) (scoring.Category, error) {
		return prompt.ParseCategory(input, available)
	}
	return prompt.Ask(c.reader("Choose: "), parse, func(input string, err error) {
		c.logger.Debug("Rejected category", "player", player.Name, "input", input, "error", err)
		c.printLines(c.render.Rejected("Invalid selection, try again", prompt.CategoryHint))
	})
}

// TurnStarted implements game.Reporter.
func (c *Console) TurnStarted(player game.Snapshot) {
	c.println("")
	c.println(c.render.TurnHeader(player))
}

// ScoreRecorded implements game.Reporter.
func (c *Console) ScoreRecorded(player game.Snapshot, category scoring.Category, score int) {
	c.println("")
	c.println(c.render.ScoreUpdate(player, category, score))
	c.println(c.render.PlayerTotal(player))
}

// Scoreboard implements game.Reporter.
func (c *Console) Scoreboard(players []game.Snapshot) {
	c.println("")
	c.printLines(c.render.Scoreboard(players))
}

// Winner implements game.Reporter.
func (c *Console) Winner(player game.Snapshot) {
	c.println(c.render.Winner(player))
}

func (c *Console) reader(text string) func() (string, error) {
	return func() (string, error) {
		c.in.SetPrompt(text)
		line, err := c.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %v", prompt.ErrAborted, err)
			}
			return "", err
		}
		return line, nil
	}
}

func (c *Console) println(line string) {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		c.logger.Debug("Failed to write output", "error", err)
	}
}

func (c *Console) printLines(lines []string) {
	for _, line := range lines {
		c.println(line)
	}
}
