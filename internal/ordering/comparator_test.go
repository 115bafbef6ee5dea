package ordering

import (
	"testing"

	"github.com/modi-meet/task-glitch-Erino/internal/models"
	"github.com/modi-meet/task-glitch-Erino/internal/roi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotated(id, title string, priority models.TaskPriority, revenue, timeTaken float64) AnnotatedTask {
	task := models.Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		Revenue:   revenue,
		TimeTaken: timeTaken,
	}
	return AnnotatedTask{Task: task, ROI: roi.Compute(revenue, timeTaken)}
}

func ids(tasks []AnnotatedTask) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Task.ID
	}
	return out
}

func TestCompareTieBreakChain(t *testing.T) {
	// Equal ROI, equal priority: title decides. Equal ROI: priority decides.
	a := annotated("a", "Beta", models.TaskPriorityHigh, 10, 2)
	b := annotated("b", "Alpha", models.TaskPriorityHigh, 10, 2)
	c := annotated("c", "Alpha", models.TaskPriorityMedium, 10, 2)

	tasks := []AnnotatedTask{a, b, c}
	Sort(tasks)
	assert.Equal(t, []string{"b", "a", "c"}, ids(tasks))
}

func TestCompareROIDescending(t *testing.T) {
	high := annotated("h", "Task", models.TaskPriorityLow, 100, 2)
	low := annotated("l", "Task", models.TaskPriorityHigh, 10, 2)

	assert.Negative(t, Compare(high, low))
	assert.Positive(t, Compare(low, high))
}

func TestCompareNotApplicableRanksLast(t *testing.T) {
	// A high-priority task with no valid ROI still sorts after every task
	// with a numeric ROI, even a zero one.
	na := annotated("na", "Aaa", models.TaskPriorityHigh, 10, 0)
	zero := annotated("zero", "Zzz", models.TaskPriorityLow, 0, 5)

	assert.Positive(t, Compare(na, zero))
	assert.Negative(t, Compare(zero, na))
}

func TestCompareTitleCaseInsensitive(t *testing.T) {
	a := annotated("a", "alpha", models.TaskPriorityHigh, 10, 2)
	b := annotated("b", "BRAVO", models.TaskPriorityHigh, 10, 2)

	assert.Negative(t, Compare(a, b))
}

func TestCompareIDIsFinalKey(t *testing.T) {
	// Identical on every other key; the id must decide, never equality.
	a := annotated("aaa", "Same", models.TaskPriorityMedium, 10, 2)
	b := annotated("bbb", "same", models.TaskPriorityMedium, 10, 2)

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, a))
}

func TestCompareDeterministic(t *testing.T) {
	a := annotated("a", "Same", models.TaskPriorityMedium, 10, 2)
	b := annotated("b", "Same", models.TaskPriorityMedium, 10, 2)

	first := Compare(a, b)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, first, Compare(a, b))
	}
}

func TestSortIdempotent(t *testing.T) {
	tasks := []AnnotatedTask{
		annotated("1", "Write report", models.TaskPriorityLow, 50, 5),
		annotated("2", "Broken timer", models.TaskPriorityHigh, 10, 0),
		annotated("3", "Ship release", models.TaskPriorityHigh, 100, 4),
		annotated("4", "ship release", models.TaskPriorityHigh, 100, 4),
		annotated("5", "Refund", models.TaskPriorityMedium, -20, 2),
	}

	Sort(tasks)
	once := ids(tasks)
	Sort(tasks)
	require.Equal(t, once, ids(tasks))

	// Applicable ROIs first, NA entries at the end.
	assert.Equal(t, []string{"3", "4", "1", "2", "5"}, once)
}

func TestAnnotate(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Revenue: 10, TimeTaken: 2},
		{ID: "2", Revenue: 10, TimeTaken: 0},
	}

	annotated := Annotate(tasks)
	require.Len(t, annotated, 2)
	assert.Equal(t, roi.Value{Ratio: 5, Applicable: true}, annotated[0].ROI)
	assert.Equal(t, roi.NotApplicable, annotated[1].ROI)
}
