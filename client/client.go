// Package client is a Go client for the taskbox REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskbox/models"
)

// ErrNotFound is returned when the service answers 404 for a task id.
var ErrNotFound = errors.New("client: task not found")

// ErrInvalid is returned when the service rejects the request as invalid.
var ErrInvalid = errors.New("client: invalid request")

const requestTimeout = 10 * time.Second

// Client talks to a running taskbox service.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, http.StatusOK, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodGet, taskPath(id), nil, http.StatusOK, &task)
	return task, err
}

func (c *Client) CreateTask(ctx context.Context, name, description string) (models.Task, error) {
	body := map[string]string{"name": name, "description": description}
	var task models.Task
	err := c.do(ctx, http.MethodPost, "/api/tasks", body, http.StatusCreated, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error) {
	var task models.Task
	err := c.do(ctx, http.MethodPut, taskPath(id), upd, http.StatusOK, &task)
	return task, err
}

// DeleteTask removes a task and returns the deleted snapshot.
func (c *Client) DeleteTask(ctx context.Context, id int) (models.Task, error) {
	var out struct {
		Message string      `json:"message"`
		Task    models.Task `json:"task"`
	}
	err := c.do(ctx, http.MethodDelete, taskPath(id), nil, http.StatusOK, &out)
	return out.Task, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, http.StatusOK, nil)
}

func taskPath(id int) string {
	return "/api/tasks/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// statusError maps an error response to the client taxonomy, keeping the
// service's message when it sent one.
func statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalid, msg)
	default:
		return fmt.Errorf("service error (%d): %s", resp.StatusCode, msg)
	}
}
