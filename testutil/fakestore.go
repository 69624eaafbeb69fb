// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"taskbox/models"
	"taskbox/store"
)

// FakeStore is an in-memory implementation of store.TaskStore for testing.
// Tasks are kept newest-first, matching the ordering the Postgres store
// produces.
type FakeStore struct {
	mu     sync.Mutex
	tasks  []models.Task
	nextID int
	now    time.Time

	// Error injection for testing
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{
		nextID: 1,
		now:    time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC),
	}
}

// Len reports how many tasks are persisted.
func (f *FakeStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

func (f *FakeStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *FakeStore) GetTask(ctx context.Context, id int) (models.Task, error) {
	if f.GetErr != nil {
		return models.Task{}, f.GetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, store.ErrNotFound
}

func (f *FakeStore) CreateTask(ctx context.Context, name, description string) (models.Task, error) {
	if f.CreateErr != nil {
		return models.Task{}, f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	t := models.Task{
		ID:          f.nextID,
		Name:        name,
		Description: description,
		CreatedAt:   f.now,
	}
	f.nextID++
	f.now = f.now.Add(time.Second)

	f.tasks = append([]models.Task{t}, f.tasks...)
	return t, nil
}

func (f *FakeStore) UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error) {
	if f.UpdateErr != nil {
		return models.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
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
	return models.Task{}, store.ErrNotFound
}

func (f *FakeStore) DeleteTask(ctx context.Context, id int) (models.Task, error) {
	if f.DeleteErr != nil {
		return models.Task{}, f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return models.Task{}, store.ErrNotFound
}
