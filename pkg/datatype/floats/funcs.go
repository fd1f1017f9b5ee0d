package floats

func Average(arr []float64) float64 {
	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}

// Extent returns the lowest and highest values of the series.
func Extent(arr []float64) (min float64, max float64) {
	min, max = arr[0], arr[0]
	for _, a := range arr[1:] {
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return min, max
}

// FromInts widens an integer series into a float series.
func FromInts(arr []int) Slice {
	out := make(Slice, len(arr))
	for i, a := range arr {
		out[i] = float64(a)
	}
	return out
}
