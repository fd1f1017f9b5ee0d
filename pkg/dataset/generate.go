package dataset

// IntSource supplies independent uniformly-distributed integers in [0, n).
// *math/rand.Rand satisfies this.
type IntSource interface {
	Intn(n int) int
}

// Generate builds an n-row table with axis1 drawn uniformly from
// [0, bound1) and axis2 from [0, bound2), each column an independent draw.
func Generate(src IntSource, n, bound1, bound2 int) *Table {
	t := &Table{}
	for i := 0; i < n; i++ {
		t.Axis1 = t.Axis1.Push(float64(src.Intn(bound1)))
	}
	for i := 0; i < n; i++ {
		t.Axis2 = t.Axis2.Push(float64(src.Intn(bound2)))
	}
	return t
}
