package floats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s Slice) Push(v float64) Slice {
	return append(s, v)
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Copy() Slice {
	out := make(Slice, len(s))
	copy(out, s)
	return out
}

func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}

	return s[len(s)-size:]
}

func (s Slice) Add(b Slice) (c Slice) {
	for i, v := range s {
		c = append(c, v+b[i])
	}

	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	for i, v := range s {
		c = append(c, v-b[i])
	}

	return c
}

func (s Slice) AddScalar(x float64) (c Slice) {
	for _, v := range s {
		c = append(c, v+x)
	}

	return c
}

func (s Slice) DivScalar(x float64) (c Slice) {
	for _, v := range s {
		c = append(c, v/x)
	}

	return c
}

func (s Slice) MulScalar(x float64) (c Slice) {
	for _, v := range s {
		c = append(c, v*x)
	}

	return c
}

func (s Slice) Sum() float64 {
	return floats.Sum(s)
}

func (s Slice) Min() float64 {
	return floats.Min(s)
}

func (s Slice) Max() float64 {
	return floats.Max(s)
}

func (s Slice) Mean() float64 {
	return stat.Mean(s, nil)
}

// Stdev is the sample standard deviation (n-1 denominator).
func (s Slice) Stdev() float64 {
	return stat.StdDev(s, nil)
}

func (s Slice) Last() float64 {
	if len(s) == 0 {
		return 0.0
	}
	return s[len(s)-1]
}
