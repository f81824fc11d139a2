package client

import (
	"errors"
	"strings"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrNoSuchTask  = errors.New("task not in local state")
	ErrNoSuchStep  = errors.New("step index out of range")
)

// App holds the client-side application state: the session, the task
// collection mirrored from the server, the derived filtered view, the current
// selection and the search query. All mutation goes through the action
// methods below; every create/update/delete round-trips through the server
// and replaces local state with the authoritative response.
//
// Like the UI it models, App reacts to one completed request at a time and is
// not safe for concurrent use.
type App struct {
	api *Client

	tasks         []Task
	filteredTasks []Task
	selectedTask  *Task
	searchQuery   string
}

// NewApp creates an application state bound to the given API client.
func NewApp(api *Client) *App {
	return &App{api: api}
}

// SignedIn reports whether a session token is present.
func (a *App) SignedIn() bool {
	return a.api.Token() != ""
}

// Tasks returns the mirrored task collection.
func (a *App) Tasks() []Task {
	return a.tasks
}

// FilteredTasks returns the tasks matching the current search query.
func (a *App) FilteredTasks() []Task {
	return a.filteredTasks
}

// Selected returns the currently selected task, or nil.
func (a *App) Selected() *Task {
	return a.selectedTask
}

// SearchQuery returns the current filter query.
func (a *App) SearchQuery() string {
	return a.searchQuery
}

// Register creates an account, stores the session and loads the task set.
func (a *App) Register(username, email, password string) error {
	token, err := a.api.Register(username, email, password)
	if err != nil {
		return err
	}
	a.api.SetToken(token)
	return a.Refresh()
}

// Login starts a session and loads the task set.
func (a *App) Login(email, password string) error {
	token, err := a.api.Login(email, password)
	if err != nil {
		return err
	}
	a.api.SetToken(token)
	return a.Refresh()
}

// Logout drops the session and all mirrored state.
func (a *App) Logout() {
	a.api.SetToken("")
	a.tasks = nil
	a.filteredTasks = nil
	a.selectedTask = nil
	a.searchQuery = ""
}

// Refresh replaces the local task set with the server's.
func (a *App) Refresh() error {
	if !a.SignedIn() {
		return ErrNotSignedIn
	}
	tasks, err := a.api.ListTasks()
	if err != nil {
		return err
	}
	a.tasks = tasks
	a.applyFilter()
	a.reconcileSelection()
	return nil
}

// SetSearchQuery updates the query and recomputes the filtered view.
func (a *App) SetSearchQuery(query string) {
	a.searchQuery = query
	a.applyFilter()
}

// Select marks the task with the given ID as selected.
func (a *App) Select(taskID string) error {
	for i := range a.tasks {
		if a.tasks[i].ID == taskID {
			task := a.tasks[i]
			a.selectedTask = &task
			return nil
		}
	}
	return ErrNoSuchTask
}

// Deselect clears the current selection.
func (a *App) Deselect() {
	a.selectedTask = nil
}

// CreateTask persists a new task and appends the server's copy locally.
func (a *App) CreateTask(input NewTask) (*Task, error) {
	if !a.SignedIn() {
		return nil, ErrNotSignedIn
	}
	task, err := a.api.CreateTask(input)
	if err != nil {
		return nil, err
	}
	a.tasks = append(a.tasks, *task)
	a.applyFilter()
	return task, nil
}

// UpdateTask sends a partial update and replaces the local entry with the
// server's authoritative response.
func (a *App) UpdateTask(taskID string, update TaskUpdate) (*Task, error) {
	if !a.SignedIn() {
		return nil, ErrNotSignedIn
	}
	task, err := a.api.UpdateTask(taskID, update)
	if err != nil {
		return nil, err
	}
	a.replaceTask(*task)
	return task, nil
}

// SetStatus updates a task's status.
func (a *App) SetStatus(taskID, status string) (*Task, error) {
	return a.UpdateTask(taskID, TaskUpdate{Status: &status})
}

// ToggleStep flips one step's completed flag by submitting the entire
// mutated sequence, the only way the API mutates steps.
func (a *App) ToggleStep(taskID string, stepIndex int) (*Task, error) {
	task := a.findTask(taskID)
	if task == nil {
		return nil, ErrNoSuchTask
	}
	if stepIndex < 0 || stepIndex >= len(task.Steps) {
		return nil, ErrNoSuchStep
	}

	steps := make([]Step, len(task.Steps))
	copy(steps, task.Steps)
	steps[stepIndex].Completed = !steps[stepIndex].Completed

	return a.UpdateTask(taskID, TaskUpdate{Steps: &steps})
}

// DeleteTask removes a task on the server and locally; a deleted selected
// task is deselected.
func (a *App) DeleteTask(taskID string) error {
	if !a.SignedIn() {
		return ErrNotSignedIn
	}
	if err := a.api.DeleteTask(taskID); err != nil {
		return err
	}

	kept := a.tasks[:0]
	for _, t := range a.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	a.tasks = kept
	if a.selectedTask != nil && a.selectedTask.ID == taskID {
		a.selectedTask = nil
	}
	a.applyFilter()
	return nil
}

// matchesQuery is the search predicate: case-insensitive substring match
// against title, description or status.
func matchesQuery(task Task, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(task.Title), q) ||
		strings.Contains(strings.ToLower(task.Description), q) ||
		strings.Contains(strings.ToLower(task.Status), q)
}

func (a *App) applyFilter() {
	query := strings.TrimSpace(a.searchQuery)
	if query == "" {
		a.filteredTasks = a.tasks
		return
	}

	filtered := []Task{}
	for _, task := range a.tasks {
		if matchesQuery(task, query) {
			filtered = append(filtered, task)
		}
	}
	a.filteredTasks = filtered
}

func (a *App) findTask(taskID string) *Task {
	for i := range a.tasks {
		if a.tasks[i].ID == taskID {
			return &a.tasks[i]
		}
	}
	return nil
}

func (a *App) replaceTask(task Task) {
	for i := range a.tasks {
		if a.tasks[i].ID == task.ID {
			a.tasks[i] = task
			break
		}
	}
	if a.selectedTask != nil && a.selectedTask.ID == task.ID {
		a.selectedTask = &task
	}
	a.applyFilter()
}

// reconcileSelection drops the selection when the selected task no longer
// exists after a refresh, or refreshes it with the server copy when it does.
func (a *App) reconcileSelection() {
	if a.selectedTask == nil {
		return
	}
	if current := a.findTask(a.selectedTask.ID); current != nil {
		task := *current
		a.selectedTask = &task
		return
	}
	a.selectedTask = nil
}
