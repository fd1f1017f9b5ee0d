package scale

import "fmt"

// DegenerateRangeError is returned when a transform's divisor collapses to
// zero, i.e. every value in the column is identical. There is no recovery
// path; the caller must supply a column with variance.
type DegenerateRangeError struct {
	Stat  string
	Value float64
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("degenerate input: %s is zero, every value equals %v", e.Stat, e.Value)
}
