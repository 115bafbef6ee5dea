// Package store owns the in-memory task collection and coordinates the ROI
// engine, the display comparator and the undo buffer. All mutation of the
// collection routes through here; nothing else holds a mutable reference.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/modi-meet/task-glitch-Erino/internal/models"
	"github.com/modi-meet/task-glitch-Erino/internal/ordering"
	"github.com/modi-meet/task-glitch-Erino/internal/repository"
	"github.com/modi-meet/task-glitch-Erino/internal/undo"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("unknown priority")
	ErrStoreClosed     = errors.New("store is closed")
)

// CreateInput carries the caller-supplied fields for a new task. ID and
// CreatedAt are always store-generated and never accepted from the caller.
type CreateInput struct {
	Title     string
	Revenue   float64
	TimeTaken float64
	Priority  models.TaskPriority
	Status    models.TaskStatus
	Notes     string
}

// UpdateInput is a partial patch; nil fields are left untouched. ID and
// CreatedAt cannot be patched.
type UpdateInput struct {
	Title     *string
	Revenue   *float64
	TimeTaken *float64
	Priority  *models.TaskPriority
	Status    *models.TaskStatus
	Notes     *string
}

// TaskStore holds the authoritative in-memory collection in insertion order.
// A single mutex serializes every mutating operation together with the undo
// slot; display order is derived per view and never written back.
type TaskStore struct {
	mu    sync.Mutex
	repo  repository.TaskRepository
	newID func() string
	now   func() time.Time

	tasks   []models.Task
	undo    undo.Buffer
	loading bool
	loaded  bool
	closed  bool
}

// New creates a TaskStore backed by repo. IDs come from uuid and timestamps
// from the wall clock; tests override both through the struct fields.
func New(repo repository.TaskRepository) *TaskStore {
	return &TaskStore{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Load fetches the initial collection through the repository at most once
// per store lifetime. Re-invoking while a load is in flight, or after one
// has completed, is a no-op, so a spurious duplicate trigger cannot cause a
// second fetch. A fetch that completes after Close is discarded.
func (s *TaskStore) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	if s.loaded || s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	tasks, err := s.repo.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if s.closed {
		return ErrStoreClosed
	}
	if err != nil {
		// Not loaded: a later Load may try again.
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}
	s.tasks = tasks
	s.loaded = true
	return nil
}

// Close tears the store down. Subsequent operations fail with ErrStoreClosed
// and an in-flight Load discards its result.
func (s *TaskStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Create assigns a fresh id and creation timestamp, persists the task and
// appends it to the collection.
func (s *TaskStore) Create(ctx context.Context, input CreateInput) (models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Task{}, ErrTitleRequired
	}
	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}
	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Task{}, ErrStoreClosed
	}

	task := models.Task{
		ID:        s.newID(),
		Title:     input.Title,
		Revenue:   input.Revenue,
		TimeTaken: input.TimeTaken,
		Priority:  input.Priority,
		Status:    input.Status,
		Notes:     input.Notes,
		CreatedAt: s.now(),
	}
	if err := s.repo.Insert(ctx, &task); err != nil {
		return models.Task{}, fmt.Errorf("failed to persist task: %w", err)
	}
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Update merges the patch into the task with the given id. The collection is
// unchanged when the id is absent or the patch invalid.
func (s *TaskStore) Update(ctx context.Context, id string, patch UpdateInput) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Task{}, ErrStoreClosed
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	task := s.tasks[i]
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return models.Task{}, ErrTitleRequired
		}
		task.Title = *patch.Title
	}
	if patch.Revenue != nil {
		task.Revenue = *patch.Revenue
	}
	if patch.TimeTaken != nil {
		task.TimeTaken = *patch.TimeTaken
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return models.Task{}, ErrInvalidPriority
		}
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}

	if err := s.repo.Update(ctx, &task); err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	s.tasks[i] = task
	return task, nil
}

// Delete removes the task and captures a snapshot of it into the undo
// buffer, replacing whatever the buffer held before. The returned token
// identifies this capture.
func (s *TaskStore) Delete(ctx context.Context, id string) (models.Task, undo.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Task{}, 0, ErrStoreClosed
	}

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, 0, ErrTaskNotFound
	}

	task := s.tasks[i]
	if err := s.repo.Remove(ctx, id); err != nil {
		return models.Task{}, 0, fmt.Errorf("failed to delete task: %w", err)
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	token := s.undo.Capture(task)
	return task, token, nil
}

// Restore takes the captured snapshot, if any, and appends it back to the
// collection. An empty buffer is a no-op, not an error: restored reports
// whether a task was re-inserted. A restore consumes the capture, so it can
// never apply twice.
func (s *TaskStore) Restore(ctx context.Context) (models.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.Task{}, false, ErrStoreClosed
	}

	task, _, ok := s.undo.TakeAndClear()
	if !ok {
		return models.Task{}, false, nil
	}
	if err := s.repo.Insert(ctx, &task); err != nil {
		// Put the snapshot back so the restore can be retried.
		s.undo.Capture(task)
		return models.Task{}, false, fmt.Errorf("failed to restore task: %w", err)
	}
	s.tasks = append(s.tasks, task)
	return task, true, nil
}

// DismissUndo empties the undo buffer unconditionally. Manual dismissal and
// the undo window's expiry timer both route through this single entry point.
func (s *TaskStore) DismissUndo() {
	s.mu.Lock()
	s.undo.Clear()
	s.mu.Unlock()
}

// PendingUndo returns the currently captured snapshot, if any, without
// consuming it.
func (s *TaskStore) PendingUndo() (models.Task, undo.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo.Peek()
}

// View returns the collection annotated with ROI. With sortEnabled the
// display order is applied; otherwise tasks stay in insertion order. View
// never mutates the collection.
func (s *TaskStore) View(sortEnabled bool) []ordering.AnnotatedTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	annotated := ordering.Annotate(s.tasks)
	if sortEnabled {
		ordering.Sort(annotated)
	}
	return annotated
}

func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
