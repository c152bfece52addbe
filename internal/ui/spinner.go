package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrInterrupted is returned by RunWithSpinner when the user pressed ctrl+c
// before the task finished. The task keeps running in the background.
var ErrInterrupted = errors.New("interrupted")

type taskDoneMsg struct{ err error }

// taskModel draws a spinner next to a message until the task reports back.
type taskModel struct {
	spinner spinner.Model
	message string
	started time.Time

	finished    bool
	interrupted bool
	err         error
}

func newTaskModel(message string) taskModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(Accent)
	return taskModel{spinner: s, message: message, started: time.Now()}
}

func (m taskModel) Init() tea.Cmd { return m.spinner.Tick }

func (m taskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
	case taskDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m taskModel) View() string {
	switch {
	case m.interrupted:
		return WarningStyle.Render(StatusWarning.String()+" "+m.message+" interrupted") + "\n"
	case m.finished:
		return taskLine(m.message, time.Since(m.started), m.err) + "\n"
	default:
		return m.spinner.View() + " " + m.message + MutedStyle.Render("…") + "\n"
	}
}

func taskLine(message string, elapsed time.Duration, err error) string {
	elapsed = elapsed.Round(time.Millisecond)
	if err != nil {
		return fmt.Sprintf("%s %s failed (%s): %v", StatusError.String(), message, elapsed, err)
	}
	return fmt.Sprintf("%s %s %s", StatusSuccess.String(), message, MutedStyle.Render("("+elapsed.String()+")"))
}

// RunWithSpinner runs fn while a spinner shows message. Without a terminal it
// prints one status line when fn returns.
func RunWithSpinner(message string, fn func() error) error {
	if !IsInteractiveTerminal() {
		start := time.Now()
		err := fn()
		fmt.Println(taskLine(message, time.Since(start), err))
		return err
	}

	p := tea.NewProgram(newTaskModel(message))
	result := make(chan error, 1)
	go func() {
		err := fn()
		result <- err
		p.Send(taskDoneMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("spinner: %w", err)
	}
	if m, ok := final.(taskModel); ok && m.interrupted {
		return ErrInterrupted
	}
	return <-result
}
