// Package tui is the interactive terminal client for taskbox.
package tui

import (
	"context"

	"taskbox/models"
)

// Service is the slice of the REST client the TUI depends on. Tests
// substitute an in-memory fake.
type Service interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, name, description string) (models.Task, error)
	UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, id int) (models.Task, error)
}
