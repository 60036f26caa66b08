package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text (pipes, files, NO_COLOR).
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen program.
	OutputModeInteractive
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minWidth      = 40
	minHeight     = 10
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// DetectOutputMode picks a mode from the flags and the attached terminal.
// plain always wins; forceColor styles output even when stdout is not a TTY.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if !isTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}

	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsInteractiveTerminal reports whether both stdin and stdout are terminals.
func IsInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or a default when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}
