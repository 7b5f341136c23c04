package filter

// OneZero runs the first-order feed-forward filter y[n] = a0·x[n] + a1·x[n-1]
// over x with zero initial state. The input is not modified.
func OneZero(x []float32, a0, a1 float32) []float32 {
	out := make([]float32, len(x))
	var x1 float32
	for i, xn := range x {
		out[i] = a0*xn + a1*x1
		x1 = xn
	}
	return out
}

// OnePole runs the first-order feedback filter y[n] = a0·x[n] − b1·y[n-1]
// over x with zero initial state. |b1| < 1 keeps the filter stable; the
// function does not enforce it.
func OnePole(x []float32, a0, b1 float32) []float32 {
	out := make([]float32, len(x))
	var y1 float32
	for i, xn := range x {
		y1 = a0*xn - b1*y1
		out[i] = y1
	}
	return out
}
