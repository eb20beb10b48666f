package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const glyphRows = 5

// Block font, five rows per glyph.
var font = map[rune][glyphRows]string{
	'A': {"  █  ", " █ █ ", "█████", "█   █", "█   █"},
	'B': {"████ ", "█   █", "████ ", "█   █", "████ "},
	'C': {" ████", "█    ", "█    ", "█    ", " ████"},
	'D': {"████ ", "█   █", "█   █", "█   █", "████ "},
	'E': {"█████", "█    ", "████ ", "█    ", "█████"},
	'F': {"█████", "█    ", "████ ", "█    ", "█    "},
	'G': {" ████", "█    ", "█  ██", "█   █", " ████"},
	'H': {"█   █", "█   █", "█████", "█   █", "█   █"},
	'I': {"█████", "  █  ", "  █  ", "  █  ", "█████"},
	'J': {"█████", "   █ ", "   █ ", "█  █ ", " ██  "},
	'K': {"█   █", "█  █ ", "███  ", "█  █ ", "█   █"},
	'L': {"█    ", "█    ", "█    ", "█    ", "█████"},
	'M': {"█   █", "██ ██", "█ █ █", "█   █", "█   █"},
	'N': {"█   █", "██  █", "█ █ █", "█  ██", "█   █"},
	'O': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'P': {"████ ", "█   █", "████ ", "█    ", "█    "},
	'Q': {" ███ ", "█   █", "█ █ █", "█  █ ", " ██ █"},
	'R': {"████ ", "█   █", "████ ", "█  █ ", "█   █"},
	'S': {" ████", "█    ", " ███ ", "    █", "████ "},
	'T': {"█████", "  █  ", "  █  ", "  █  ", "  █  "},
	'U': {"█   █", "█   █", "█   █", "█   █", " ███ "},
	'V': {"█   █", "█   █", "█   █", " █ █ ", "  █  "},
	'W': {"█   █", "█   █", "█ █ █", "██ ██", "█   █"},
	'X': {"█   █", " █ █ ", "  █  ", " █ █ ", "█   █"},
	'Y': {"█   █", " █ █ ", "  █  ", "  █  ", "  █  "},
	'Z': {"█████", "   █ ", "  █  ", " █   ", "█████"},

	'a': {"     ", " ███ ", "    █", "█████", " ████"},
	'b': {"█    ", "█    ", "████ ", "█   █", "████ "},
	'c': {"     ", " ████", "█    ", "█    ", " ████"},
	'd': {"    █", "    █", " ████", "█   █", " ████"},
	'e': {"     ", " ███ ", "█████", "█    ", " ████"},
	'f': {"  ██ ", " █   ", "████ ", " █   ", " █   "},
	'g': {" ████", "█   █", " ████", "    █", " ███ "},
	'h': {"█    ", "█    ", "████ ", "█   █", "█   █"},
	'i': {"  █  ", "     ", " ██  ", "  █  ", " ███ "},
	'j': {"   █ ", "     ", "   █ ", "█  █ ", " ██  "},
	'k': {"█    ", "█  █ ", "███  ", "█  █ ", "█   █"},
	'l': {" ██  ", "  █  ", "  █  ", "  █  ", " ███ "},
	'm': {"     ", "██ █ ", "█ █ █", "█ █ █", "█   █"},
	'n': {"     ", "████ ", "█   █", "█   █", "█   █"},
	'o': {"     ", " ███ ", "█   █", "█   █", " ███ "},
	'p': {"████ ", "█   █", "████ ", "█    ", "█    "},
	'q': {" ████", "█   █", " ████", "    █", "    █"},
	'r': {"     ", "█ ██ ", "██   ", "█    ", "█    "},
	's': {"     ", " ████", " ██  ", "   ██", "████ "},
	't': {" █   ", "████ ", " █   ", " █   ", "  ██ "},
	'u': {"     ", "█   █", "█   █", "█   █", " ████"},
	'v': {"     ", "█   █", "█   █", " █ █ ", "  █  "},
	'w': {"     ", "█   █", "█ █ █", "█ █ █", " █ █ "},
	'x': {"     ", "█   █", " ███ ", " ███ ", "█   █"},
	'y': {"█   █", "█   █", " ████", "    █", " ███ "},
	'z': {"     ", "█████", "  ██ ", " █   ", "█████"},

	'0': {" ███ ", "█  ██", "█ █ █", "██  █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "  ██ ", " █   ", "█████"},
	'3': {"████ ", "    █", " ███ ", "    █", "████ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},

	'*': {"     ", "█ █ █", " ███ ", "█ █ █", "     "},
	'+': {"     ", "  █  ", "█████", "  █  ", "     "},
	'-': {"     ", "     ", "█████", "     ", "     "},
	'.': {"     ", "     ", "     ", "     ", "  █  "},
	'←': {"     ", " █   ", "█████", " █   ", "     "},
	'□': {"█████", "█   █", "█   █", "█   █", "█████"},
	' ': {"   ", "   ", "   ", "   ", "   "},
}

// unknown is drawn for runes missing from the font.
var unknown = [glyphRows]string{"█████", "█████", "█████", "█████", "█████"}

func glyph(r rune) [glyphRows]string {
	if g, ok := font[r]; ok {
		return g
	}
	return unknown
}

// glyphWidth is the widest row, in terminal cells.
func glyphWidth(g [glyphRows]string) int {
	w := 0
	for _, row := range g {
		w = max(w, runewidth.StringWidth(row))
	}
	return w
}

// TextSize is the unscaled size of text rendered by RenderText.
func TextSize(text string) (width, height int) {
	runes := []rune(text)
	for i, r := range runes {
		width += glyphWidth(glyph(r))
		if i > 0 {
			width++
		}
	}
	return width, glyphRows
}

// Scale picks the largest scale at which text fits in width x height cells.
// Glyph cells are drawn twice as wide as tall to make up for the terminal
// font's aspect ratio.
func Scale(text string, width, height int) int {
	w, h := TextSize(text)
	if w == 0 {
		return 1
	}
	return max(1, min(width/(2*w), height/h))
}

// RenderText draws text in the block font. Each font cell becomes a block of
// 2*scale columns by scale rows.
func RenderText(text string, scale int) []string {
	if text == "" {
		return nil
	}
	scale = max(1, scale)

	rows := make([]strings.Builder, glyphRows)
	for i, r := range []rune(text) {
		g := glyph(r)
		w := glyphWidth(g)
		for row := 0; row < glyphRows; row++ {
			if i > 0 {
				rows[row].WriteString(" ")
			}
			rows[row].WriteString(runewidth.FillRight(g[row], w))
		}
	}

	lines := make([]string, 0, glyphRows*scale)
	for _, b := range rows {
		var wide strings.Builder
		for _, r := range b.String() {
			wide.WriteString(strings.Repeat(string(r), 2*scale))
		}
		for k := 0; k < scale; k++ {
			lines = append(lines, wide.String())
		}
	}
	return lines
}
