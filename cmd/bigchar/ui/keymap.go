package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/bigchar/cmd/bigchar/dispatch"
)

// NoSymbol is passed to the dispatcher for keys without a keysym equivalent.
const NoSymbol = 0

// The terminal cannot tell keypad symbols from the main row, so they are
// reported as the keypad keysyms the dispatcher recognises.
var runeKeysyms = map[rune]int{
	'*': dispatch.KeyKPMultiply,
	'+': dispatch.KeyKPAdd,
	'-': dispatch.KeyKPSubtract,
	'.': dispatch.KeyKPDecimal,
}

// Keysym translates a terminal key into an X11 keysym code.
func Keysym(msg tea.KeyMsg) int {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return dispatch.KeyBackSpace
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return NoSymbol
		}
		r := msg.Runes[0]
		if code, ok := runeKeysyms[r]; ok {
			return code
		}
		if r < 128 {
			return int(r)
		}
	}
	return NoSymbol
}
