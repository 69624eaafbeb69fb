package models

import (
	"errors"
	"strings"
	"time"
)

type Task struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// TaskUpdate carries a partial update. A nil field means "leave unchanged",
// so absent-from-request stays distinct from the zero value.
type TaskUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Empty reports whether the update carries no fields at all.
func (u TaskUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Completed == nil
}

// ValidateTaskName enforces the only hard rule on tasks: a name must be
// present and fit the column.
func ValidateTaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("task name is required")
	}
	if len(name) > 255 {
		return errors.New("task name must be at most 255 characters")
	}
	return nil
}
