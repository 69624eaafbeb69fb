package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("taskbox"))
	b.WriteString("\n\n")

	switch m.Mode {
	case ModeAdd:
		b.WriteString(m.formView("New task"))
	case ModeEdit:
		b.WriteString(m.formView("Edit task"))
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) listView() string {
	if m.Loading {
		return m.spin.View() + " loading tasks..."
	}
	if len(m.Tasks) == 0 {
		return descStyle.Render("No tasks yet. Press a to create one.")
	}

	completed := 0
	var lines []string
	for i, t := range m.Tasks {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
			completed++
		}

		line := fmt.Sprintf("%s %s", check, t.Name)
		if t.Completed {
			line = doneStyle.Render(line)
		}
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		lines = append(lines, cursor+line)

		if i == m.Cursor && t.Description != "" {
			lines = append(lines, descStyle.Render("      "+t.Description))
		}
	}

	summary := descStyle.Render(fmt.Sprintf("%d of %d tasks completed", completed, len(m.Tasks)))
	body := strings.Join(lines, "\n") + "\n\n" + summary

	if m.Mode == ModeConfirmDelete {
		if task, ok := m.selectedTask(); ok {
			body += "\n\n" + panelStyle.Render(
				fmt.Sprintf("Delete %q? (y/n)", task.Name))
		}
	}
	return body
}

func (m Model) formView(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	return panelStyle.Render(b.String())
}

func (m Model) statusLine() string {
	if m.Busy {
		return m.spin.View() + " working..."
	}
	if m.Status.Text == "" {
		return ""
	}
	if m.Status.IsError {
		return errorStyle.Render(m.Status.Text)
	}
	return statusStyle.Render(m.Status.Text)
}

func (m Model) helpLine() string {
	switch m.Mode {
	case ModeAdd, ModeEdit:
		return "tab switch field • enter save • esc cancel"
	case ModeConfirmDelete:
		return "y confirm • n cancel"
	default:
		return "a add • e edit • space toggle • d delete • r reload • q quit"
	}
}
