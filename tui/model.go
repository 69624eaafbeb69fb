package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskbox/models"
)

type Mode string

const (
	ModeList          Mode = "list"
	ModeAdd           Mode = "add"
	ModeEdit          Mode = "edit"
	ModeConfirmDelete Mode = "confirm_delete"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Model struct {
	svc Service

	Tasks  []models.Task
	Cursor int
	Mode   Mode

	// Busy is set while a mutation is in flight and suppresses duplicate
	// submissions until the call settles.
	Busy    bool
	Loading bool
	Status  StatusBar

	EditingID int

	nameInput textinput.Model
	descInput textinput.Model
	spin      spinner.Model
	Quitting  bool
}

func NewModel(svc Service) Model {
	name := textinput.New()
	name.Placeholder = "What do you need to do?"
	name.CharLimit = 255

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		svc:       svc,
		Mode:      ModeList,
		Loading:   true,
		nameInput: name,
		descInput: desc,
		spin:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadTasksCmd(m.svc))
}

// Messages carrying settled API calls back into Update.

type tasksLoadedMsg struct{ tasks []models.Task }
type taskCreatedMsg struct{ task models.Task }
type taskUpdatedMsg struct{ task models.Task }
type taskDeletedMsg struct{ task models.Task }
type apiErrMsg struct{ err error }

func loadTasksCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		tasks, err := svc.ListTasks(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return tasksLoadedMsg{tasks}
	}
}

func createTaskCmd(svc Service, name, description string) tea.Cmd {
	return func() tea.Msg {
		task, err := svc.CreateTask(context.Background(), name, description)
		if err != nil {
			return apiErrMsg{err}
		}
		return taskCreatedMsg{task}
	}
}

func updateTaskCmd(svc Service, id int, upd models.TaskUpdate) tea.Cmd {
	return func() tea.Msg {
		task, err := svc.UpdateTask(context.Background(), id, upd)
		if err != nil {
			return apiErrMsg{err}
		}
		return taskUpdatedMsg{task}
	}
}

func deleteTaskCmd(svc Service, id int) tea.Cmd {
	return func() tea.Msg {
		task, err := svc.DeleteTask(context.Background(), id)
		if err != nil {
			return apiErrMsg{err}
		}
		return taskDeletedMsg{task}
	}
}
