package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Task is the task representation returned by the API.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      string    `json:"user_id"`
	Steps       []Step    `json:"steps"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Step is an embedded checklist item, addressed by its position.
type Step struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTask is the payload for creating a task.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Steps       []Step `json:"steps,omitempty"`
}

// TaskUpdate is a partial update; nil fields are omitted from the request so
// the server leaves them untouched. Steps replace the whole sequence.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Steps       *[]Step `json:"steps,omitempty"`
}

// APIError is a non-2xx response decoded from the server's {message} envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the task-management API. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates an API client for the given base URL, e.g. "http://localhost:4000".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the bearer token attached to authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently installed bearer token, if any.
func (c *Client) Token() string {
	return c.token
}

// Register creates an account and returns the issued token.
func (c *Client) Register(username, email, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/users/register", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login verifies credentials and returns the issued token.
func (c *Client) Login(email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/users/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListTasks fetches the caller's full task set.
func (c *Client) ListTasks() ([]Task, error) {
	var tasks []Task
	if err := c.do(http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask fetches a single owned task.
func (c *Client) GetTask(id string) (*Task, error) {
	var task Task
	if err := c.do(http.MethodGet, "/api/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask persists a new task and returns the server's copy.
func (c *Client) CreateTask(input NewTask) (*Task, error) {
	var task Task
	if err := c.do(http.MethodPost, "/api/tasks", input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update and returns the server's copy.
func (c *Client) UpdateTask(id string, update TaskUpdate) (*Task, error) {
	var task Task
	if err := c.do(http.MethodPut, "/api/tasks/"+id, update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes an owned task.
func (c *Client) DeleteTask(id string) error {
	return c.do(http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Message = envelope.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
