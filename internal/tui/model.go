// Package tui renders the quiz flow in the terminal: a welcome screen, one
// question per page with radio/checkbox selection, and a results screen.
// All quiz state lives in the client controller; this package only maps
// key presses to controller transitions and draws the outcome.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/assesskit/assesskit/internal/client"
	"github.com/assesskit/assesskit/internal/grading"
)

type screen int

const (
	screenWelcome screen = iota
	screenQuiz
	screenResults
)

// Model is the root Bubble Tea model for the quiz client.
type Model struct {
	ctrl   *client.Controller
	screen screen
	cursor int // option cursor on the active question

	loading bool
	errText string
	result  *grading.Result

	spin     spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

func New(ctrl *client.Controller) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{ctrl: ctrl, screen: screenWelcome, spin: sp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

type questionsLoadedMsg struct{}

type loadFailedMsg struct{ err error }

type submittedMsg struct{ result grading.Result }

type submitFailedMsg struct{ err error }

func loadQuestionsCmd(ctrl *client.Controller) tea.Cmd {
	return func() tea.Msg {
		if err := ctrl.LoadQuestions(context.Background()); err != nil {
			return loadFailedMsg{err: err}
		}
		return questionsLoadedMsg{}
	}
}

func submitCmd(ctrl *client.Controller) tea.Cmd {
	return func() tea.Msg {
		result, err := ctrl.Submit(context.Background())
		if err != nil {
			return submitFailedMsg{err: err}
		}
		return submittedMsg{result: result}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case questionsLoadedMsg:
		m.loading = false
		if m.ctrl.Len() == 0 {
			m.errText = "The question set is empty. Press enter to retry."
			return m, nil
		}
		m.errText = ""
		m.cursor = 0
		m.screen = screenQuiz
		return m, nil

	case loadFailedMsg:
		m.loading = false
		m.errText = "Could not load questions. Press enter to retry."
		return m, nil

	case submittedMsg:
		m.loading = false
		m.errText = ""
		m.result = &msg.result
		m.screen = screenResults
		m.viewport = viewport.New(max(m.width, 20), max(m.height-3, 1))
		m.viewport.SetContent(renderResults(msg.result))
		return m, nil

	case submitFailedMsg:
		m.loading = false
		m.errText = "Submission failed. Press enter to retry."
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			m.loading = true
			return m, tea.Batch(m.spin.Tick, loadQuestionsCmd(m.ctrl))
		}

	case screenQuiz:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.ctrl.CurrentQuestion().Options)-1 {
				m.cursor++
			}
		case " ":
			qi := m.ctrl.Current()
			checked := !m.ctrl.Selected(qi, m.cursor)
			m.ctrl.RecordSelection(qi, m.cursor, checked)
		case "left", "h":
			if !m.ctrl.AtFirst() {
				m.ctrl.GoPrevious()
				m.cursor = 0
			}
		case "right", "l":
			if !m.ctrl.AtLast() {
				m.ctrl.GoNext()
				m.cursor = 0
			}
		case "enter":
			if m.ctrl.AtLast() {
				m.loading = true
				return m, tea.Batch(m.spin.Tick, submitCmd(m.ctrl))
			}
			m.ctrl.GoNext()
			m.cursor = 0
		}

	case screenResults:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r":
			// Retry: back to welcome with a fresh answer sheet.
			m.ctrl.Reset()
			m.result = nil
			m.errText = ""
			m.cursor = 0
			m.screen = screenWelcome
			return m, nil
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
