package repository

import (
	"context"

	"github.com/modi-meet/task-glitch-Erino/internal/models"
)

// TaskRepository is the persistence collaborator of the task store: the
// initial fetch plus write-through for mutations. The store stays the
// in-memory authority; the repository never dictates display order.
type TaskRepository interface {
	// FetchAll returns every task in insertion order.
	FetchAll(ctx context.Context) ([]models.Task, error)

	// Insert persists a new task.
	Insert(ctx context.Context, task *models.Task) error

	// Update persists the current state of an existing task.
	Update(ctx context.Context, task *models.Task) error

	// Remove deletes a task by id.
	Remove(ctx context.Context, id string) error
}
