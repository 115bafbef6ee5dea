// Package undo holds the single-slot buffer backing the delete/undo
// affordance of the dashboard.
package undo

import (
	"github.com/modi-meet/task-glitch-Erino/internal/models"
)

// Token identifies one capture. A caller holding the token from an earlier
// delete can tell whether the buffer still refers to that delete.
type Token uint64

// Buffer holds at most one deleted-task snapshot. It is not a history: a
// second capture replaces the first, and the replaced snapshot is gone for
// good. Not safe for concurrent use; the task store serializes access.
type Buffer struct {
	task  *models.Task
	token Token
	last  Token
}

// Capture overwrites the slot with a snapshot of task and returns the token
// for this capture.
func (b *Buffer) Capture(task models.Task) Token {
	b.last++
	b.token = b.last
	b.task = &task
	return b.token
}

// Clear unconditionally empties the slot. Every path that ends the undo
// window goes through here, manual dismissal and timeout alike.
func (b *Buffer) Clear() {
	b.task = nil
}

// Peek returns the captured snapshot without mutating the buffer.
func (b *Buffer) Peek() (models.Task, Token, bool) {
	if b.task == nil {
		return models.Task{}, 0, false
	}
	return *b.task, b.token, true
}

// TakeAndClear returns the snapshot and empties the slot in a single step,
// so one capture can never be restored twice.
func (b *Buffer) TakeAndClear() (models.Task, Token, bool) {
	if b.task == nil {
		return models.Task{}, 0, false
	}
	task, token := *b.task, b.token
	b.task = nil
	return task, token, true
}
