package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"taskbox/models"
	"taskbox/store"
)

// Health reports process liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TaskCollection dispatches /api/tasks by method.
func TaskCollection(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	switch r.Method {
	case http.MethodGet:
		ListTasks(w, r, ts)
	case http.MethodPost:
		CreateTask(w, r, ts)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// TaskItem dispatches /api/tasks/{id} by method.
func TaskItem(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	switch r.Method {
	case http.MethodGet:
		GetTask(w, r, ts)
	case http.MethodPut:
		UpdateTask(w, r, ts)
	case http.MethodDelete:
		DeleteTask(w, r, ts)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func ListTasks(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	tasks, err := ts.ListTasks(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func GetTask(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := ts.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func CreateTask(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	var in struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := models.ValidateTaskName(in.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := ts.CreateTask(r.Context(), in.Name, in.Description)
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func UpdateTask(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var upd models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if upd.Empty() {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	// A supplied name must still be a valid name; a task never ends up nameless.
	if upd.Name != nil {
		if err := models.ValidateTaskName(*upd.Name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	task, err := ts.UpdateTask(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func DeleteTask(w http.ResponseWriter, r *http.Request, ts store.TaskStore) {
	id, err := taskIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := ts.DeleteTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task deleted successfully",
		"task":    task,
	})
}
