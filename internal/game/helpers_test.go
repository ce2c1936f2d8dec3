package game

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/yatzy/internal/dice"
	"github.com/lox/yatzy/internal/scoring"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

type heldRequest struct {
	player string
	hand   dice.Hand
	held   dice.Held
	throw  int
}

// scriptedPrompter answers held-dice requests with holdFn and category
// requests with the queued categories, falling back to the first available.
type scriptedPrompter struct {
	holdFn     func(hand dice.Hand, throw int) dice.Held
	categories []scoring.Category
	onCategory func()

	heldRequests     []heldRequest
	categoryRequests [][]scoring.Category
	hands            []dice.Hand
}

func (p *scriptedPrompter) RequestHeldDice(player Snapshot, hand dice.Hand, held dice.Held, throw int) (dice.Held, error) {
	p.heldRequests = append(p.heldRequests, heldRequest{player: player.Name, hand: hand, held: held, throw: throw})
	if p.holdFn == nil {
		return 0, nil
	}
	return p.holdFn(hand, throw), nil
}

func (p *scriptedPrompter) RequestCategory(player Snapshot, hand dice.Hand, available []scoring.Category) (scoring.Category, error) {
	p.categoryRequests = append(p.categoryRequests, available)
	p.hands = append(p.hands, hand)
	if p.onCategory != nil {
		p.onCategory()
	}
	if len(p.categories) > 0 {
		c := p.categories[0]
		p.categories = p.categories[1:]
		return c, nil
	}
	return available[0], nil
}

func holdAll(dice.Hand, int) dice.Held { return dice.AllHeld }

var errInputClosed = errors.New("input closed")

type failingPrompter struct {
	failHeld bool
}

func (p failingPrompter) RequestHeldDice(Snapshot, dice.Hand, dice.Held, int) (dice.Held, error) {
	if p.failHeld {
		return 0, errInputClosed
	}
	return dice.AllHeld, nil
}

func (p failingPrompter) RequestCategory(Snapshot, dice.Hand, []scoring.Category) (scoring.Category, error) {
	return 0, errInputClosed
}

type scoreEvent struct {
	player   string
	category scoring.Category
	score    int
	total    int
}

type recordingReporter struct {
	turns      []string
	scores     []scoreEvent
	scoreboard []Snapshot
	winner     *Snapshot
}

func (r *recordingReporter) TurnStarted(p Snapshot) {
	r.turns = append(r.turns, p.Name)
}

func (r *recordingReporter) ScoreRecorded(p Snapshot, c scoring.Category, score int) {
	r.scores = append(r.scores, scoreEvent{player: p.Name, category: c, score: score, total: p.Total})
}

func (r *recordingReporter) Scoreboard(players []Snapshot) {
	r.scoreboard = players
}

func (r *recordingReporter) Winner(p Snapshot) {
	r.winner = &p
}

type scriptedSetup struct {
	names   []string
	answers []bool
}

func (s *scriptedSetup) RequestPlayerName() (string, error) {
	if len(s.names) == 0 {
		return "", errInputClosed
	}
	name := s.names[0]
	s.names = s.names[1:]
	return name, nil
}

func (s *scriptedSetup) RequestAddAnotherPlayer() (bool, error) {
	if len(s.answers) == 0 {
		return false, errInputClosed
	}
	more := s.answers[0]
	s.answers = s.answers[1:]
	return more, nil
}
