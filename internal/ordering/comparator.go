// Package ordering defines the display order of the task table.
package ordering

import (
	"sort"
	"strings"

	"github.com/modi-meet/task-glitch-Erino/internal/models"
	"github.com/modi-meet/task-glitch-Erino/internal/roi"
)

// AnnotatedTask pairs a task with its computed ROI for ordering and display.
type AnnotatedTask struct {
	Task models.Task
	ROI  roi.Value
}

// Annotate computes the ROI for each task.
func Annotate(tasks []models.Task) []AnnotatedTask {
	annotated := make([]AnnotatedTask, len(tasks))
	for i, t := range tasks {
		annotated[i] = AnnotatedTask{Task: t, ROI: roi.Compute(t.Revenue, t.TimeTaken)}
	}
	return annotated
}

// Compare reports the display order of a and b: negative when a comes first,
// positive when b comes first, zero only for the same task. The tie-break
// chain is ROI descending (NotApplicable after every applicable value),
// priority weight descending, title ascending case-insensitive, then id
// ascending. The id key differs for any two distinct tasks and no key reads
// time or randomness, so repeated calls on unchanged tasks always agree.
func Compare(a, b AnnotatedTask) int {
	if c := compareROI(a.ROI, b.ROI); c != 0 {
		return c
	}
	if aw, bw := a.Task.Priority.Weight(), b.Task.Priority.Weight(); aw != bw {
		if aw > bw {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.Task.Title), strings.ToLower(b.Task.Title)); c != 0 {
		return c
	}
	return strings.Compare(a.Task.ID, b.Task.ID)
}

func compareROI(a, b roi.Value) int {
	switch {
	case a.Applicable && !b.Applicable:
		return -1
	case !a.Applicable && b.Applicable:
		return 1
	case !a.Applicable && !b.Applicable:
		return 0
	case a.Ratio > b.Ratio:
		return -1
	case a.Ratio < b.Ratio:
		return 1
	default:
		return 0
	}
}

// Sort orders tasks in place under Compare. The order is total, so sorting
// an already-sorted slice leaves it unchanged.
func Sort(tasks []AnnotatedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Compare(tasks[i], tasks[j]) < 0
	})
}
