// Package roi computes the derived return-on-investment metric for a task.
package roi

import (
	"math"
	"strconv"
)

// Value is the outcome of an ROI computation. NotApplicable is a first-class
// result, distinct from zero: it marks inputs that cannot produce a
// meaningful ratio. The zero Value is not applicable.
type Value struct {
	Ratio      float64
	Applicable bool
}

// NotApplicable is the Value returned for inputs that fail validation.
var NotApplicable = Value{}

// Compute derives revenue / timeTaken. It returns NotApplicable when either
// input is non-finite, when timeTaken is not strictly positive, or when
// revenue is negative. Invalid input is a normal, representable outcome,
// never an error: negative revenue is rejected here rather than surfaced as
// a negative ratio, and a non-positive duration can never divide.
func Compute(revenue, timeTaken float64) Value {
	if !isFinite(revenue) || !isFinite(timeTaken) {
		return NotApplicable
	}
	if timeTaken <= 0 {
		return NotApplicable
	}
	if revenue < 0 {
		return NotApplicable
	}
	return Value{Ratio: revenue / timeTaken, Applicable: true}
}

// String renders the value for display: two decimal places, or the literal
// "N/A". Callers must never see "NaN", "Inf" or an empty cell.
func (v Value) String() string {
	if !v.Applicable {
		return "N/A"
	}
	return strconv.FormatFloat(v.Ratio, 'f', 2, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
