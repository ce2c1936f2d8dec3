package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/display"
	"github.com/lox/yatzy/internal/game"
	"github.com/lox/yatzy/internal/prompt"
	"github.com/lox/yatzy/internal/scoring"
)

// sender delivers messages to the running program. *tea.Program satisfies it.
type sender interface {
	Send(msg tea.Msg)
}

// Agent connects a game to the TUI. It implements game.Prompter,
// game.SetupPrompter and game.Reporter; each call runs on the game
// goroutine and blocks on the player's answer.
type Agent struct {
	program *tea.Program
	model   *Model
	send    sender
	answers chan answer
	render  *display.Renderer
	logger  *log.Logger
	done    chan error
}

var (
	_ game.Prompter      = (*Agent)(nil)
	_ game.SetupPrompter = (*Agent)(nil)
	_ game.Reporter      = (*Agent)(nil)
)

// NewAgent creates a TUI agent. Call Start before the game and Close after.
func NewAgent(render *display.Renderer, logger *log.Logger, opts ...tea.ProgramOption) *Agent {
	answers := make(chan answer, 1)
	model := newModel(answers, logger)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	a := newAgent(program, answers, render, logger)
	a.program = program
	a.model = model
	return a
}

func newAgent(s sender, answers chan answer, render *display.Renderer, logger *log.Logger) *Agent {
	return &Agent{
		send:    s,
		answers: answers,
		render:  render,
		logger:  logger.WithPrefix("agent"),
		done:    make(chan error, 1),
	}
}

// Start runs the Bubble Tea program in the background.
func (a *Agent) Start() {
	go func() {
		_, err := a.program.Run()
		if err != nil {
			a.logger.Error("TUI stopped", "error", err)
		}
		// Unblock a game waiting on input when the program exits.
		select {
		case a.answers <- answer{quit: true}:
		default:
		}
		a.done <- err
	}()
}

// Close stops the program and waits for the terminal to be restored.
func (a *Agent) Close() error {
	if a.program == nil {
		return nil
	}
	a.program.Quit()
	return <-a.done
}

// WaitForExit keeps the final screen visible until the player presses enter.
func (a *Agent) WaitForExit() {
	_, _ = a.ask("Press enter to exit ", "")
}

// RequestPlayerName implements game.SetupPrompter.
func (a *Agent) RequestPlayerName() (string, error) {
	name, err := prompt.Ask(a.reader("Player name: ", "your name"), prompt.ParseName, func(_ string, _ error) {
		a.log(a.render.Rejected("Name cannot be empty", "")...)
	})
	if err != nil {
		return "", err
	}
	a.log(fmt.Sprintf("%s added to the game", name))
	return name, nil
}

// RequestAddAnotherPlayer implements game.SetupPrompter.
func (a *Agent) RequestAddAnotherPlayer() (bool, error) {
	return prompt.Ask(a.reader("Add another player? (Y/N) ", "y or n"), prompt.ParseYesNo, func(input string, _ error) {
		a.log(a.render.Rejected(fmt.Sprintf("Invalid option '%s'", input), "")...)
	})
}

// RequestHeldDice implements game.Prompter.
func (a *Agent) RequestHeldDice(player game.Snapshot, hand dice.Hand, held dice.Held, throw int) (dice.Held, error) {
	a.log("", a.render.Throw(throw), a.render.Dice(hand, held))
	return prompt.Ask(a.reader("Dice to keep: ", "e.g. 1235, empty to throw all"), prompt.ParseHeld, func(input string, err error) {
		a.logger.Debug("Rejected held dice", "player", player.Name, "input", input, "error", err)
		a.log(a.render.Rejected("Invalid input", prompt.HeldHint)...)
	})
}

// RequestCategory implements game.Prompter.
func (a *Agent) RequestCategory(player game.Snapshot, hand dice.Hand, available []scoring.Category) (scoring.Category, error) {
	a.log("", a.render.Dice(hand, 0))
	a.log(a.render.CategoryMenu(hand, available)...)

	parse := func(input string) (scoring.Category, error) {
		return prompt.ParseCategory(input, available)
	}
	return prompt.Ask(a.reader("Choose: ", "number or name"), parse, func(input string, err error) {
		a.logger.Debug("Rejected category", "player", player.Name, "input", input, "error", err)
		a.log(a.render.Rejected("Invalid selection, try again", prompt.CategoryHint)...)
	})
}

// TurnStarted implements game.Reporter.
func (a *Agent) TurnStarted(player game.Snapshot) {
	a.send.Send(playerMsg{player: player})
	a.log("", a.render.TurnHeader(player))
}

// ScoreRecorded implements game.Reporter.
func (a *Agent) ScoreRecorded(player game.Snapshot, category scoring.Category, score int) {
	a.send.Send(playerMsg{player: player})
	a.log("", a.render.ScoreUpdate(player, category, score), a.render.PlayerTotal(player))
}

// Scoreboard implements game.Reporter.
func (a *Agent) Scoreboard(players []game.Snapshot) {
	for _, p := range players {
		a.send.Send(playerMsg{player: p})
	}
	a.log("")
	a.log(a.render.Scoreboard(players)...)
}

// Winner implements game.Reporter.
func (a *Agent) Winner(player game.Snapshot) {
	a.log(a.render.Winner(player))
}

func (a *Agent) log(lines ...string) {
	a.send.Send(logMsg{lines: lines})
}

func (a *Agent) ask(text, placeholder string) (string, error) {
	a.send.Send(promptMsg{text: text, placeholder: placeholder})
	ans, ok := <-a.answers
	if !ok || ans.quit {
		return "", prompt.ErrAborted
	}
	return ans.text, nil
}

func (a *Agent) reader(text, placeholder string) func() (string, error) {
	return func() (string, error) {
		return a.ask(text, placeholder)
	}
}
