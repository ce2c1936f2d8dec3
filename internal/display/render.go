package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/game"
	"github.com/lox/yatzy/internal/scoring"
)

// Renderer formats game events as lines of text.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer using styles. Nil styles render plain text.
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = PlainStyles()
	}
	return &Renderer{styles: styles}
}

// Title renders the game banner.
func (r *Renderer) Title() string {
	return r.styles.Header.Render("⚀ ⚁ ⚂ Yatzy ⚃ ⚄ ⚅")
}

// TurnHeader announces whose turn it is.
func (r *Renderer) TurnHeader(player game.Snapshot) string {
	return r.styles.Header.Render(fmt.Sprintf("%s's turn", player.Name))
}

// Dice renders the hand with held dice highlighted, e.g. "Dice: [6 6 2 6 1]".
func (r *Renderer) Dice(hand dice.Hand, held dice.Held) string {
	parts := make([]string, dice.Count)
	for i, v := range hand {
		face := strconv.Itoa(v)
		if held.Has(i) {
			parts[i] = r.styles.Held.Render(face)
		} else {
			parts[i] = r.styles.Dice.Render(face)
		}
	}
	return "Dice: [" + strings.Join(parts, " ") + "]"
}

// Throw renders the throw counter, e.g. "Throw 2 of 3".
func (r *Renderer) Throw(throw int) string {
	return r.styles.Total.Render(fmt.Sprintf("Throw %d of %d", throw, game.MaxThrows))
}

// CategoryMenu lists the available categories by number with the score the
// hand would earn in each.
func (r *Renderer) CategoryMenu(hand dice.Hand, available []scoring.Category) []string {
	lines := make([]string, 0, len(available)+1)
	lines = append(lines, "Available score boxes:")
	for _, c := range available {
		lines = append(lines, fmt.Sprintf("%2d: %s %s",
			int(c),
			r.styles.Category.Render(c.String()),
			r.styles.Total.Render(fmt.Sprintf("(%d)", scoring.Score(c, hand)))))
	}
	return lines
}

// ScoreUpdate renders "Alice added 9 points to threes".
func (r *Renderer) ScoreUpdate(player game.Snapshot, category scoring.Category, score int) string {
	return fmt.Sprintf("%s added %s to %s",
		player.Name,
		r.styles.Score.Render(fmt.Sprintf("%d points", score)),
		strings.ToLower(category.String()))
}

// PlayerTotal renders "Alice has 33 points in total (upper total: 33)".
func (r *Renderer) PlayerTotal(player game.Snapshot) string {
	return fmt.Sprintf("%s has %d points in total %s",
		player.Name,
		player.Total,
		r.styles.Total.Render(fmt.Sprintf("(upper total: %d)", player.Upper)))
}

// Scoreboard renders the heading and one total line per player.
func (r *Renderer) Scoreboard(players []game.Snapshot) []string {
	lines := make([]string, 0, len(players)+1)
	lines = append(lines, r.styles.Header.Render("SCOREBOARD:"))
	for _, p := range players {
		lines = append(lines, r.PlayerTotal(p))
	}
	return lines
}

// Winner renders "Alice won with 164 points!".
func (r *Renderer) Winner(player game.Snapshot) string {
	return r.styles.Winner.Render(fmt.Sprintf("%s won with %d points!", player.Name, player.Total))
}

// Rejected renders an error line followed by an optional hint.
func (r *Renderer) Rejected(message, hint string) []string {
	lines := []string{r.styles.Error.Render(message)}
	if hint != "" {
		lines = append(lines, r.styles.Hint.Render(hint))
	}
	return lines
}
