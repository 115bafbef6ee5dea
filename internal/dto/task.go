package dto

import (
	"time"

	"github.com/modi-meet/task-glitch-Erino/internal/models"
	"github.com/modi-meet/task-glitch-Erino/internal/ordering"
	"github.com/modi-meet/task-glitch-Erino/internal/roi"
)

// TaskDTO represents a task in API responses. ROI is null when not
// applicable and ROIDisplay is always printable: a two-decimal number or the
// literal "N/A", never a blank, "NaN" or "Inf".
type TaskDTO struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Revenue    float64             `json:"revenue"`
	TimeTaken  float64             `json:"time_taken"`
	Priority   models.TaskPriority `json:"priority"`
	Status     models.TaskStatus   `json:"status"`
	Notes      string              `json:"notes"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	ROI        *float64            `json:"roi"`
	ROIDisplay string              `json:"roi_display"`
}

// TaskListResponse represents the task table feed.
type TaskListResponse struct {
	Tasks  []TaskDTO `json:"tasks"`
	Sorted bool      `json:"sorted"`
	Total  int       `json:"total"`
}

// ROIBucketDTO is one bar of the aggregate ROI chart.
type ROIBucketDTO struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SummaryResponse feeds the dashboard charts.
type SummaryResponse struct {
	TotalTasks int            `json:"total_tasks"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
	ROIBuckets []ROIBucketDTO `json:"roi_buckets"`
}

// ToTaskDTO converts a task and its computed ROI to a TaskDTO
func ToTaskDTO(task models.Task, value roi.Value) TaskDTO {
	dto := TaskDTO{
		ID:         task.ID,
		Title:      task.Title,
		Revenue:    task.Revenue,
		TimeTaken:  task.TimeTaken,
		Priority:   task.Priority,
		Status:     task.Status,
		Notes:      task.Notes,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
		ROIDisplay: value.String(),
	}
	if value.Applicable {
		ratio := value.Ratio
		dto.ROI = &ratio
	}
	return dto
}

// ToTaskListResponse converts an annotated view to the table feed.
func ToTaskListResponse(tasks []ordering.AnnotatedTask, sorted bool) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskDTO(t.Task, t.ROI)
	}
	return TaskListResponse{
		Tasks:  items,
		Sorted: sorted,
		Total:  len(items),
	}
}

// ROI histogram boundaries; lower bound inclusive.
var roiBuckets = []struct {
	label string
	from  float64
	to    float64
}{
	{"0-1", 0, 1},
	{"1-5", 1, 5},
	{"5+", 5, 0},
}

// BuildSummary aggregates the collection for the charts. NotApplicable is a
// category of its own, distinct from a zero ROI.
func BuildSummary(tasks []ordering.AnnotatedTask) SummaryResponse {
	summary := SummaryResponse{
		TotalTasks: len(tasks),
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}

	counts := make(map[string]int, len(roiBuckets)+1)
	for _, t := range tasks {
		summary.ByStatus[string(t.Task.Status)]++
		summary.ByPriority[string(t.Task.Priority)]++
		counts[bucketLabel(t.ROI)]++
	}

	summary.ROIBuckets = append(summary.ROIBuckets, ROIBucketDTO{Label: "N/A", Count: counts["N/A"]})
	for _, b := range roiBuckets {
		summary.ROIBuckets = append(summary.ROIBuckets, ROIBucketDTO{Label: b.label, Count: counts[b.label]})
	}
	return summary
}

func bucketLabel(v roi.Value) string {
	if !v.Applicable {
		return "N/A"
	}
	for _, b := range roiBuckets[:len(roiBuckets)-1] {
		if v.Ratio >= b.from && v.Ratio < b.to {
			return b.label
		}
	}
	return roiBuckets[len(roiBuckets)-1].label
}
