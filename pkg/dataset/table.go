package dataset

import (
	"fmt"

	"github.com/c9s/rescale/pkg/datatype/floats"
)

// ShapeMismatchError is returned when two columns that must be paired
// row-by-row have different lengths.
type ShapeMismatchError struct {
	Len1, Len2 int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("column length mismatch: %d != %d", e.Len1, e.Len2)
}

// Table is a two-feature sample table. Both columns always have the same
// number of rows. A Table is never mutated in place; derived tables are
// built from copies.
type Table struct {
	Axis1 floats.Slice
	Axis2 floats.Slice
}

func NewTable(axis1, axis2 floats.Slice) (*Table, error) {
	if len(axis1) != len(axis2) {
		return nil, &ShapeMismatchError{Len1: len(axis1), Len2: len(axis2)}
	}

	return &Table{Axis1: axis1, Axis2: axis2}, nil
}

func (t *Table) NumRows() int {
	return len(t.Axis1)
}

// Row returns the i-th (axis1, axis2) pair.
func (t *Table) Row(i int) (float64, float64) {
	return t.Axis1[i], t.Axis2[i]
}

// WithRow returns a new table with one row appended. The receiver is left
// untouched.
func (t *Table) WithRow(axis1, axis2 float64) *Table {
	return &Table{
		Axis1: t.Axis1.Copy().Push(axis1),
		Axis2: t.Axis2.Copy().Push(axis2),
	}
}

// Map applies f to each column independently and assembles the results into
// a new table. The first column that fails aborts the whole mapping.
func (t *Table) Map(f func(floats.Slice) (floats.Slice, error)) (*Table, error) {
	axis1, err := f(t.Axis1)
	if err != nil {
		return nil, err
	}

	axis2, err := f(t.Axis2)
	if err != nil {
		return nil, err
	}

	return NewTable(axis1, axis2)
}
