package tui

import "taskbox/models"

// The local task list mirrors the server and is only patched after a
// confirmed mutation. These transitions are pure so they can be tested
// without a network.

// prependTask puts a freshly created task at the head of the list, matching
// the service's newest-first ordering.
func prependTask(tasks []models.Task, t models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, t)
	return append(out, tasks...)
}

// replaceTask swaps in the updated task by id. Unknown ids leave the list
// untouched.
func replaceTask(tasks []models.Task, t models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == t.ID {
			out[i] = t
		}
	}
	return out
}

// removeTask drops the task by id.
func removeTask(tasks []models.Task, id int) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// clampCursor keeps the selection inside the list after it shrinks.
func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
