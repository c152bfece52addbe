package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

const fallbackWidth = 80

// StartScreen clears the terminal and prints a title bar. Dense mode drops
// the blank line under it.
func StartScreen(title string, subtitle string) {
	ClearScreen()
	fmt.Println(titleBlock(title, subtitle))
	if !CurrentPreferences.Dense {
		fmt.Println()
	}
}

// ClearScreen clears an interactive terminal and does nothing otherwise.
func ClearScreen() {
	if IsInteractiveTerminal() {
		fmt.Print("\033[2J\033[H")
	}
}

// IsInteractiveTerminal reports whether stdout is a terminal outside CI.
// Menus and spinners fall back to plain output when it is false.
func IsInteractiveTerminal() bool {
	for _, env := range []string{"CI", "GITHUB_ACTIONS"} {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return os.Getenv("TERM") != "" && isatty.IsTerminal(os.Stdout.Fd())
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	return terminalWidth()
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// Frame stacks the title bar, body and footer of a full-screen view.
func Frame(title string, subtitle string, body string, footer string) string {
	blocks := []string{titleBlock(title, subtitle), body}
	if footer != "" {
		blocks = append(blocks, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func titleBlock(title, subtitle string) string {
	if subtitle == "" {
		return Header(title)
	}
	return Header(title) + "\n" + Tagline.Render(subtitle)
}
