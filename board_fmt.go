package main

import (
	"strings"

	"github.com/fatih/color"
)

var (
	whiteInk = color.New(color.FgHiWhite, color.Bold)
	blackInk = color.New(color.FgRed, color.Bold)
	emptyInk = color.New(color.FgHiBlack)
)

func init() {
	// boards go to HTTP clients, not stdout
	whiteInk.EnableColor()
	blackInk.EnableColor()
	emptyInk.EnableColor()
}

// colorBoard paints a rendered board: white pieces, black pieces and empty
// squares each get their own color. Spacing and newlines are kept.
func colorBoard(board string) string {
	var sb strings.Builder
	sb.Grow(len(board) * 4)
	for _, r := range board {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteString(whiteInk.Sprint(string(r)))
		case r >= 'a' && r <= 'z':
			sb.WriteString(blackInk.Sprint(string(r)))
		case r == '-':
			sb.WriteString(emptyInk.Sprint(string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
