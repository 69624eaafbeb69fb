package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskbox/models"
)

const queryTimeout = 10 * time.Second

const createTableStmt = `
	CREATE TABLE IF NOT EXISTS tasks (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

const taskColumns = "id, name, description, completed, created_at"

// PostgresStore implements TaskStore on a pgx connection pool.
type PostgresStore struct {
	db *pgxpool.Pool
}

func OpenDB(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	config.MaxConns = 20
	config.MinConns = 2
	config.MaxConnIdleTime = 20 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Test the connection
	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the tasks table if it is missing. It runs once at process
// start; there is no further schema versioning.
func (s *PostgresStore) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.db.Exec(ctx, createTableStmt); err != nil {
		return fmt.Errorf("creating tasks table: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT " + taskColumns + " FROM tasks ORDER BY created_at DESC, id DESC"
	rows, err := s.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading task rows: %w", err)
	}
	return tasks, nil
}

func (s *PostgresStore) GetTask(ctx context.Context, id int) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"
	return scanTaskRow(s.db.QueryRow(ctx, stmt, id))
}

func (s *PostgresStore) CreateTask(ctx context.Context, name, description string) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "INSERT INTO tasks (name, description) VALUES ($1, $2) RETURNING " + taskColumns
	return scanTaskRow(s.db.QueryRow(ctx, stmt, name, description))
}

func (s *PostgresStore) UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error) {
	stmt, args, err := buildUpdateStmt(id, upd)
	if err != nil {
		return models.Task{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return scanTaskRow(s.db.QueryRow(ctx, stmt, args...))
}

func (s *PostgresStore) DeleteTask(ctx context.Context, id int) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "DELETE FROM tasks WHERE id = $1 RETURNING " + taskColumns
	return scanTaskRow(s.db.QueryRow(ctx, stmt, id))
}

// buildUpdateStmt assembles an UPDATE from only the supplied fields, in the
// fixed order name, description, completed, with the id placeholder last.
// SQL text never contains user values; everything goes through placeholders.
func buildUpdateStmt(id int, upd models.TaskUpdate) (string, []any, error) {
	var sets []string
	var args []any

	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if upd.Completed != nil {
		args = append(args, *upd.Completed)
		sets = append(sets, fmt.Sprintf("completed = $%d", len(args)))
	}

	if len(sets) == 0 {
		return "", nil, errors.New("store: no fields to update")
	}

	args = append(args, id)
	stmt := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), taskColumns)
	return stmt, args, nil
}

func scanTaskRow(row pgx.Row) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("scanning task: %w", err)
	}
	return t, nil
}
