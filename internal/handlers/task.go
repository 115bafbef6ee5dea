package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modi-meet/task-glitch-Erino/internal/dto"
	apierrors "github.com/modi-meet/task-glitch-Erino/internal/errors"
	"github.com/modi-meet/task-glitch-Erino/internal/models"
	"github.com/modi-meet/task-glitch-Erino/internal/roi"
	"github.com/modi-meet/task-glitch-Erino/internal/store"
)

type TaskHandler struct {
	store *store.TaskStore
}

func NewTaskHandler(s *store.TaskStore) *TaskHandler {
	return &TaskHandler{store: s}
}

// ListTasks returns the task table feed. Display order is on by default;
// sort=false returns insertion order.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	sortEnabled := c.DefaultQuery("sort", "true") != "false"
	tasks := h.store.View(sortEnabled)
	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, sortEnabled))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title     string  `json:"title" binding:"required"`
		Revenue   float64 `json:"revenue"`
		TimeTaken float64 `json:"time_taken"`
		Priority  string  `json:"priority"`
		Status    string  `json:"status"`
		Notes     string  `json:"notes"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.store.Create(c.Request.Context(), store.CreateInput{
		Title:     req.Title,
		Revenue:   req.Revenue,
		TimeTaken: req.TimeTaken,
		Priority:  models.TaskPriority(req.Priority),
		Status:    models.TaskStatus(req.Status),
		Notes:     req.Notes,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(task, roi.Compute(task.Revenue, task.TimeTaken)))
}

// UpdateTask patches an existing task. Absent fields are left untouched; id
// and created_at are never patchable.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title     *string  `json:"title"`
		Revenue   *float64 `json:"revenue"`
		TimeTaken *float64 `json:"time_taken"`
		Priority  *string  `json:"priority"`
		Status    *string  `json:"status"`
		Notes     *string  `json:"notes"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	patch := store.UpdateInput{
		Title:     req.Title,
		Revenue:   req.Revenue,
		TimeTaken: req.TimeTaken,
		Notes:     req.Notes,
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.store.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(task, roi.Compute(task.Revenue, task.TimeTaken)))
}

// DeleteTask removes a task and opens the undo window. The response carries
// the removed task and the capture token so the frontend toast can refer to
// exactly this delete.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, token, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":       dto.ToTaskDTO(task, roi.Compute(task.Revenue, task.TimeTaken)),
		"undo_token": token,
	})
}

// RestoreTask re-inserts the most recently deleted task. An empty undo
// buffer is a successful no-op, reported as restored=false so the frontend
// can tell it apart from a failure.
func (h *TaskHandler) RestoreTask(c *gin.Context) {
	task, restored, err := h.store.Restore(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if !restored {
		c.JSON(http.StatusOK, gin.H{"restored": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restored": true,
		"task":     dto.ToTaskDTO(task, roi.Compute(task.Revenue, task.TimeTaken)),
	})
}

// DismissUndo closes the undo window. The frontend calls this both for the
// explicit dismiss button and when its toast timer expires.
func (h *TaskHandler) DismissUndo(c *gin.Context) {
	h.store.DismissUndo()
	c.Status(http.StatusNoContent)
}

// GetSummary returns the aggregate chart feed.
func (h *TaskHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BuildSummary(h.store.View(false)))
}

func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, store.ErrTitleRequired), errors.Is(err, store.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
