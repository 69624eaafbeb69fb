package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"taskbox/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch m.Mode {
		case ModeAdd, ModeEdit:
			return m.handleFormKey(typed)
		case ModeConfirmDelete:
			return m.handleConfirmKey(typed)
		default:
			return m.handleListKey(typed)
		}

	case spinner.TickMsg:
		if m.Loading || m.Busy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(typed)
			return m, cmd
		}
		return m, nil

	case tasksLoadedMsg:
		m.Loading = false
		m.Tasks = typed.tasks
		m.Cursor = clampCursor(m.Cursor, len(m.Tasks))
		m.Status = StatusBar{}
		return m, nil

	case taskCreatedMsg:
		m.Busy = false
		m.Mode = ModeList
		m.Tasks = prependTask(m.Tasks, typed.task)
		m.Cursor = 0
		m.resetForm()
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", typed.task.Name)}
		return m, nil

	case taskUpdatedMsg:
		m.Busy = false
		m.Mode = ModeList
		m.Tasks = replaceTask(m.Tasks, typed.task)
		m.resetForm()
		m.Status = StatusBar{Text: fmt.Sprintf("updated %q", typed.task.Name)}
		return m, nil

	case taskDeletedMsg:
		m.Busy = false
		m.Mode = ModeList
		m.Tasks = removeTask(m.Tasks, typed.task.ID)
		m.Cursor = clampCursor(m.Cursor, len(m.Tasks))
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", typed.task.Name)}
		return m, nil

	case apiErrMsg:
		// The busy flag clears however the call settles; the user retries
		// manually.
		m.Busy = false
		m.Loading = false
		if m.Mode == ModeConfirmDelete {
			m.Mode = ModeList
		}
		m.Status = StatusBar{Text: typed.err.Error(), IsError: true}
		return m, nil
	}

	return m, nil
}

func (m Model) handleListKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit

	case "up", "k":
		m.Cursor = clampCursor(m.Cursor-1, len(m.Tasks))
		return m, nil

	case "down", "j":
		m.Cursor = clampCursor(m.Cursor+1, len(m.Tasks))
		return m, nil

	case "r":
		if m.Loading {
			return m, nil
		}
		m.Loading = true
		return m, tea.Batch(m.spin.Tick, loadTasksCmd(m.svc))

	case "a":
		m.Mode = ModeAdd
		m.resetForm()
		return m, nil

	case "e":
		task, ok := m.selectedTask()
		if !ok || m.Busy {
			return m, nil
		}
		m.Mode = ModeEdit
		m.EditingID = task.ID
		m.resetForm()
		m.nameInput.SetValue(task.Name)
		m.descInput.SetValue(task.Description)
		return m, nil

	case " ", "x":
		task, ok := m.selectedTask()
		if !ok || m.Busy {
			return m, nil
		}
		m.Busy = true
		done := !task.Completed
		return m, tea.Batch(m.spin.Tick,
			updateTaskCmd(m.svc, task.ID, models.TaskUpdate{Completed: &done}))

	case "d":
		if _, ok := m.selectedTask(); !ok || m.Busy {
			return m, nil
		}
		m.Mode = ModeConfirmDelete
		return m, nil
	}

	return m, nil
}

func (m Model) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "enter":
		task, ok := m.selectedTask()
		if !ok || m.Busy {
			m.Mode = ModeList
			return m, nil
		}
		m.Busy = true
		m.Mode = ModeList
		return m, tea.Batch(m.spin.Tick, deleteTaskCmd(m.svc, task.ID))

	case "n", "esc", "q":
		m.Mode = ModeList
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit

	case "esc":
		m.Mode = ModeList
		m.resetForm()
		return m, nil

	case "tab", "shift+tab":
		if m.nameInput.Focused() {
			m.nameInput.Blur()
			m.descInput.Focus()
		} else {
			m.descInput.Blur()
			m.nameInput.Focus()
		}
		return m, nil

	case "enter":
		if m.Busy {
			return m, nil
		}
		name := m.nameInput.Value()
		description := m.descInput.Value()
		// Reject locally before touching the service.
		if err := models.ValidateTaskName(name); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Busy = true
		if m.Mode == ModeEdit {
			return m, tea.Batch(m.spin.Tick, updateTaskCmd(m.svc, m.EditingID,
				models.TaskUpdate{Name: &name, Description: &description}))
		}
		return m, tea.Batch(m.spin.Tick, createTaskCmd(m.svc, name, description))
	}

	var cmd tea.Cmd
	if m.nameInput.Focused() {
		m.nameInput, cmd = m.nameInput.Update(key)
	} else {
		m.descInput, cmd = m.descInput.Update(key)
	}
	return m, cmd
}

func (m Model) selectedTask() (models.Task, bool) {
	if len(m.Tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return models.Task{}, false
	}
	return m.Tasks[m.Cursor], true
}

func (m *Model) resetForm() {
	m.EditingID = 0
	m.nameInput.SetValue("")
	m.descInput.SetValue("")
	m.descInput.Blur()
	m.nameInput.Focus()
}
