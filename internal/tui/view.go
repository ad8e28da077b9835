package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/assesskit/assesskit/internal/grading"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	codeStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m Model) View() string {
	switch m.screen {
	case screenQuiz:
		return m.viewQuiz()
	case screenResults:
		return m.viewResults()
	default:
		return m.viewWelcome()
	}
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Assessment") + "\n\n")
	b.WriteString("One question per page. Navigate freely; answering is optional.\n")
	b.WriteString("Your submission is graded on the server.\n\n")
	if m.loading {
		b.WriteString(m.spin.View() + " Loading questions...\n")
	} else {
		b.WriteString(dimStyle.Render("enter start · q quit") + "\n")
	}
	if m.errText != "" {
		b.WriteString("\n" + warnStyle.Render(m.errText) + "\n")
	}
	return b.String()
}

func (m Model) viewQuiz() string {
	q := m.ctrl.CurrentQuestion()
	var b strings.Builder

	progress := fmt.Sprintf("Question %d of %d", m.ctrl.Current()+1, m.ctrl.Len())
	b.WriteString(dimStyle.Render(progress) + "\n")
	if q.Topic != "" {
		b.WriteString(dimStyle.Render("Topic: "+q.Topic) + "\n")
	}
	b.WriteString("\n" + titleStyle.Render(q.Text) + "\n")
	if q.Code != "" {
		b.WriteString(codeStyle.Render(q.Code) + "\n")
	}
	if q.Multiple {
		b.WriteString(dimStyle.Render("(select all that apply)") + "\n")
	}
	b.WriteString("\n")

	for i, opt := range q.Options {
		box := "( )"
		if q.Multiple {
			box = "[ ]"
		}
		if m.ctrl.Selected(m.ctrl.Current(), i) {
			if q.Multiple {
				box = "[x]"
			} else {
				box = "(•)"
			}
		}
		line := fmt.Sprintf("%s %c) %s", box, 'A'+i, opt)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spin.View() + " Submitting...\n")
		return b.String()
	}
	hint := "space select · ↑/↓ move · ←/→ navigate · enter next"
	if m.ctrl.AtLast() {
		hint = "space select · ↑/↓ move · ←/→ navigate · enter submit"
	}
	b.WriteString(dimStyle.Render(hint) + "\n")
	if m.errText != "" {
		b.WriteString(warnStyle.Render(m.errText) + "\n")
	}
	return b.String()
}

func (m Model) viewResults() string {
	return m.viewport.View() + "\n" +
		dimStyle.Render("↑/↓ scroll · r retry · q quit") + "\n"
}

// renderResults builds the full scrollable results text.
func renderResults(result grading.Result) string {
	var b strings.Builder
	scoreline := fmt.Sprintf("Your Score: %d / %d (%.0f%%)",
		result.Score, result.Total, result.Percent)
	b.WriteString(titleStyle.Render(scoreline) + "\n")

	for i, d := range result.Detail {
		b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Q%d. %s", i+1, d.Question)) + "\n")
		if d.Code != "" {
			b.WriteString(codeStyle.Render(d.Code) + "\n")
		}
		if d.IsCorrect {
			b.WriteString(okStyle.Render("Correct") + "\n")
		} else {
			b.WriteString(errStyle.Render("Incorrect") + "\n")
		}
		b.WriteString("Your answer:    " + formatAnswers(d.Options, d.User) + "\n")
		b.WriteString("Correct answer: " + formatAnswers(d.Options, d.Correct) + "\n")
		if d.Explanation != "" {
			b.WriteString(dimStyle.Render(d.Explanation) + "\n")
		}
	}
	return b.String()
}

// formatAnswers renders selected indices as lettered option text.
func formatAnswers(options []string, indices []int) string {
	if len(indices) == 0 {
		return dimStyle.Render("None selected")
	}
	parts := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(options) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%c) %s", 'A'+idx, options[idx]))
	}
	return strings.Join(parts, "; ")
}
