package store

import (
	"context"
	"errors"

	"taskbox/models"
)

// ErrNotFound is returned when an id has no matching row.
var ErrNotFound = errors.New("store: task not found")

// TaskStore is the persistence contract the HTTP handlers depend on.
// Postgres implements it for real; tests substitute an in-memory fake.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id int) (models.Task, error)
	CreateTask(ctx context.Context, name, description string) (models.Task, error)
	UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, id int) (models.Task, error)
}
