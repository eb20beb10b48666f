package dispatch

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gigurra/bigchar/cmd/bigchar/daylight"
)

// Action is the effect of one matched key: text to show and, when
// Identifier is set, the audio asset to play.
type Action struct {
	Text       string
	Identifier string
}

// Display is whatever shows the big text and the day progress.
type Display interface {
	SetText(text string)
	SetProgress(fraction float64)
}

// Player starts and stops audio by identifier.
type Player interface {
	Start(id string) error
	Stop()
}

type rule struct {
	name  string
	match func(code int) bool
	apply func(code int) Action
}

// The ranges are disjoint, but every rule is checked on its own. Classify
// reports all matches so an overlap would show up instead of being hidden by
// a first-match switch.
var rules = []rule{
	{"lowercase", inRange(KeyLowerA, KeyLowerZ), func(code int) Action { return letter(code - KeyLowerA) }},
	{"uppercase", inRange(KeyUpperA, KeyUpperZ), func(code int) Action { return letter(code - KeyUpperA) }},
	{"digit", inRange(Key0, Key9), func(code int) Action { return digit(code - Key0) }},
	{"keypad digit", inRange(KeyKP0, KeyKP9), func(code int) Action { return digit(code - KeyKP0) }},
	{"keypad multiply", equals(KeyKPMultiply), literal("*")},
	{"keypad add", equals(KeyKPAdd), literal("+")},
	{"keypad decimal", equals(KeyKPDecimal), literal(".")},
	{"keypad subtract", equals(KeyKPSubtract), literal("-")},
	{"backspace", equals(KeyBackSpace), literal(LeftArrow)},
	{"super", equals(KeySuperL), literal(HollowSquare)},
}

func inRange(lo, hi int) func(int) bool {
	return func(code int) bool { return code >= lo && code <= hi }
}

func equals(want int) func(int) bool {
	return func(code int) bool { return code == want }
}

func literal(text string) func(int) Action {
	return func(int) Action { return Action{Text: text} }
}

// letter builds "A a" for the 0-based alphabet index.
func letter(index int) Action {
	upper := string(rune('A' + index))
	lower := string(rune('a' + index))
	return Action{Text: upper + " " + lower, Identifier: upper}
}

func digit(n int) Action {
	s := strconv.Itoa(n)
	return Action{Text: s, Identifier: s}
}

// Classify returns the actions of every rule that matches code.
func Classify(code int) []Action {
	var actions []Action
	for _, r := range rules {
		if r.match(code) {
			actions = append(actions, r.apply(code))
		}
	}
	return actions
}

// Dispatcher turns key codes into display updates and playback requests.
type Dispatcher struct {
	display Display
	player  Player
	day     daylight.Day
	now     func() time.Time
}

func New(display Display, player Player, day daylight.Day) *Dispatcher {
	return &Dispatcher{
		display: display,
		player:  player,
		day:     day,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// RefreshProgress sets the day progress from the clock.
func (d *Dispatcher) RefreshProgress() {
	d.display.SetProgress(d.day.Fraction(d.now()))
}

// HandleKey processes one key press. The progress bar and the stop happen for
// every key, recognised or not.
func (d *Dispatcher) HandleKey(code int) {
	d.RefreshProgress()
	d.player.Stop()

	actions := Classify(code)
	if len(actions) == 0 {
		slog.Debug("ignoring key", "code", code)
		return
	}
	for _, a := range actions {
		if a.Identifier != "" {
			if err := d.player.Start(a.Identifier); err != nil {
				slog.Error("failed to start playback", "id", a.Identifier, "error", err)
			}
		}
		d.display.SetText(a.Text)
	}
}
