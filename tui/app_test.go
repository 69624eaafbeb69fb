package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskbox/models"
)

// fakeService is an in-memory Service with error injection.
type fakeService struct {
	tasks  []models.Task
	nextID int

	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func newFakeService(tasks ...models.Task) *fakeService {
	return &fakeService{tasks: tasks, nextID: 100}
}

func (f *fakeService) ListTasks(ctx context.Context) ([]models.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]models.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeService) CreateTask(ctx context.Context, name, description string) (models.Task, error) {
	if f.CreateErr != nil {
		return models.Task{}, f.CreateErr
	}
	t := models.Task{ID: f.nextID, Name: name, Description: description, CreatedAt: time.Now()}
	f.nextID++
	f.tasks = append([]models.Task{t}, f.tasks...)
	return t, nil
}

func (f *fakeService) UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error) {
	if f.UpdateErr != nil {
		return models.Task{}, f.UpdateErr
	}
	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.Description != nil {
			t.Description = *upd.Description
		}
		if upd.Completed != nil {
			t.Completed = *upd.Completed
		}
		f.tasks[i] = t
		return t, nil
	}
	return models.Task{}, errors.New("not found")
}

func (f *fakeService) DeleteTask(ctx context.Context, id int) (models.Task, error) {
	if f.DeleteErr != nil {
		return models.Task{}, f.DeleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return models.Task{}, errors.New("not found")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(newFakeService())
	if m.Mode != ModeList {
		t.Errorf("default mode = %q, want %q", m.Mode, ModeList)
	}
	if !m.Loading {
		t.Error("model should start in loading state")
	}
	if m.Busy {
		t.Error("model should not start busy")
	}
}

func TestInitialLoadReplacesList(t *testing.T) {
	svc := newFakeService(task(2, "newer"), task(1, "older"))
	m := NewModel(svc)

	m, _ = step(t, m, loadTasksCmd(svc)())
	if m.Loading {
		t.Error("loading flag not cleared")
	}
	if len(m.Tasks) != 2 || m.Tasks[0].ID != 2 {
		t.Fatalf("tasks = %+v", m.Tasks)
	}
}

func TestLoadFailureShowsErrorAndNextSuccessClearsIt(t *testing.T) {
	svc := newFakeService(task(1, "a"))
	svc.ListErr = errors.New("connection refused")
	m := NewModel(svc)

	m, _ = step(t, m, loadTasksCmd(svc)())
	if m.Loading {
		t.Error("loading flag not cleared on failure")
	}
	if !m.Status.IsError || m.Status.Text == "" {
		t.Fatalf("status = %+v, want visible error", m.Status)
	}

	svc.ListErr = nil
	m, _ = step(t, m, loadTasksCmd(svc)())
	if m.Status.IsError || m.Status.Text != "" {
		t.Errorf("status not cleared on success: %+v", m.Status)
	}
}

func TestAddFlow(t *testing.T) {
	svc := newFakeService()
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	m, _ = step(t, m, keyMsg("a"))
	if m.Mode != ModeAdd {
		t.Fatalf("mode = %q, want %q", m.Mode, ModeAdd)
	}

	// Empty name is rejected locally; no call goes out.
	m, cmd := step(t, m, keyMsg("enter"))
	if cmd != nil {
		t.Error("empty-name submit produced a command")
	}
	if m.Busy {
		t.Error("empty-name submit set busy")
	}
	if !m.Status.IsError {
		t.Error("empty-name submit did not surface an error")
	}

	m.nameInput.SetValue("Buy milk")
	m, cmd = step(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	if !m.Busy {
		t.Error("submit did not set busy")
	}

	// Settle the call the way the runtime would.
	m, _ = step(t, m, createTaskCmd(svc, "Buy milk", "")())
	if m.Busy {
		t.Error("busy not cleared after create settled")
	}
	if m.Mode != ModeList {
		t.Errorf("mode = %q after create, want %q", m.Mode, ModeList)
	}
	if len(m.Tasks) != 1 || m.Tasks[0].Name != "Buy milk" {
		t.Fatalf("tasks = %+v", m.Tasks)
	}
	if m.nameInput.Value() != "" {
		t.Error("form not cleared after create")
	}
}

func TestToggleCompleteGuardedByBusy(t *testing.T) {
	svc := newFakeService(task(1, "a"))
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	m, cmd := step(t, m, keyMsg(" "))
	if cmd == nil || !m.Busy {
		t.Fatal("toggle did not start a mutation")
	}

	// A second toggle while in flight must be suppressed.
	_, cmd = step(t, m, keyMsg(" "))
	if cmd != nil {
		t.Error("busy guard let a duplicate mutation through")
	}

	done := true
	updated, err := svc.UpdateTask(context.Background(), 1, models.TaskUpdate{Completed: &done})
	if err != nil {
		t.Fatalf("fake update: %v", err)
	}
	m, _ = step(t, m, taskUpdatedMsg{updated})
	if m.Busy {
		t.Error("busy not cleared")
	}
	if !m.Tasks[0].Completed {
		t.Errorf("local state not patched: %+v", m.Tasks[0])
	}
}

func TestEditFlow(t *testing.T) {
	svc := newFakeService(models.Task{ID: 1, Name: "a", Description: "old"})
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	m, _ = step(t, m, keyMsg("e"))
	if m.Mode != ModeEdit || m.EditingID != 1 {
		t.Fatalf("mode = %q, editing id = %d", m.Mode, m.EditingID)
	}
	if m.nameInput.Value() != "a" || m.descInput.Value() != "old" {
		t.Fatalf("form not prefilled: %q / %q", m.nameInput.Value(), m.descInput.Value())
	}

	m.nameInput.SetValue("a2")
	m, cmd := step(t, m, keyMsg("enter"))
	if cmd == nil || !m.Busy {
		t.Fatal("edit submit did not start a mutation")
	}

	name, desc := "a2", "old"
	updated, err := svc.UpdateTask(context.Background(), 1, models.TaskUpdate{Name: &name, Description: &desc})
	if err != nil {
		t.Fatalf("fake update: %v", err)
	}
	m, _ = step(t, m, taskUpdatedMsg{updated})
	if m.Tasks[0].Name != "a2" || m.Tasks[0].Description != "old" {
		t.Errorf("local state after edit = %+v", m.Tasks[0])
	}
}

func TestEditCancelKeepsState(t *testing.T) {
	svc := newFakeService(task(1, "a"))
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	m, _ = step(t, m, keyMsg("e"))
	m.nameInput.SetValue("scratch")
	m, _ = step(t, m, keyMsg("esc"))
	if m.Mode != ModeList {
		t.Fatalf("mode = %q after cancel", m.Mode)
	}
	if m.Tasks[0].Name != "a" {
		t.Errorf("cancel changed local state: %+v", m.Tasks[0])
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	svc := newFakeService(task(1, "a"), task(2, "b"))
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	m, cmd := step(t, m, keyMsg("d"))
	if cmd != nil {
		t.Fatal("delete fired without confirmation")
	}
	if m.Mode != ModeConfirmDelete {
		t.Fatalf("mode = %q, want %q", m.Mode, ModeConfirmDelete)
	}

	// Declining leaves everything alone.
	m, _ = step(t, m, keyMsg("n"))
	if m.Mode != ModeList || len(m.Tasks) != 2 {
		t.Fatalf("after decline: mode %q, %d tasks", m.Mode, len(m.Tasks))
	}

	m, _ = step(t, m, keyMsg("d"))
	m, cmd = step(t, m, keyMsg("y"))
	if cmd == nil || !m.Busy {
		t.Fatal("confirm did not start the delete")
	}

	deleted, err := svc.DeleteTask(context.Background(), 1)
	if err != nil {
		t.Fatalf("fake delete: %v", err)
	}
	m, _ = step(t, m, taskDeletedMsg{deleted})
	if len(m.Tasks) != 1 || m.Tasks[0].ID != 2 {
		t.Fatalf("tasks after delete = %+v", m.Tasks)
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.Cursor)
	}
}

func TestMutationFailureClearsBusy(t *testing.T) {
	svc := newFakeService(task(1, "a"))
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	m, _ = step(t, m, keyMsg(" "))
	m, _ = step(t, m, apiErrMsg{errors.New("service error (500): Internal server error")})
	if m.Busy {
		t.Error("busy not cleared after failure")
	}
	if !m.Status.IsError {
		t.Error("failure not surfaced in status")
	}
	if m.Tasks[0].Completed {
		t.Error("failed mutation patched local state")
	}
}

func TestViewShowsTasksAndStatus(t *testing.T) {
	svc := newFakeService(models.Task{ID: 1, Name: "Buy milk", Completed: true}, task(2, "b"))
	m := NewModel(svc)
	m, _ = step(t, m, loadTasksCmd(svc)())

	out := m.View()
	if !strings.Contains(out, "Buy milk") {
		t.Errorf("view missing task name:\n%s", out)
	}
	if !strings.Contains(out, "1 of 2 tasks completed") {
		t.Errorf("view missing summary:\n%s", out)
	}

	m, _ = step(t, m, apiErrMsg{errors.New("boom")})
	if !strings.Contains(m.View(), "boom") {
		t.Error("view missing error status")
	}
}
