package dtw

import (
	"fmt"
	"math"
)

// Distance computes the DTW distance between a and b with |a[i]−b[j]| as
// the local cost. A nil opts means DefaultOptions.
//
// Recurrence:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	D[i][j] = |a[i-1]−b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// Cells outside the window stay +∞, so a window narrower than the length
// difference yields +Inf rather than an error.
func Distance(a, b []float32, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, fmt.Errorf("window=%d penalty=%g: %w", o.Window, o.SlopePenalty, ErrBadInput)
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return 0, nil, fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	inf := math.Inf(1)
	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
		for j := range dp[r] {
			dp[r][j] = inf
		}
	}
	dp[0][0] = 0

	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	for i := 1; i <= n; i++ {
		prev, curr := row(i-1), row(i)
		lo, hi := 1, m
		if o.Window >= 0 {
			lo = max(1, i-o.Window)
			hi = min(m, i+o.Window)
		}
		if lo > hi {
			// The band has left the matrix; every later row stays +∞.
			return inf, nil, nil
		}
		if o.MemoryMode == TwoRows {
			// The recycled row still holds band i-2. Only the cells flanking
			// band i are read before being written.
			curr[lo-1] = inf
			if hi < m {
				curr[hi+1] = inf
			}
		}
		for j := lo; j <= hi; j++ {
			cost := math.Abs(float64(a[i-1]) - float64(b[j-1]))
			best := min(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = cost + best
		}
	}

	dist := row(n)[m]
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}
	return dist, backtrack(dp, o.SlopePenalty), nil
}

// backtrack walks from (n,m) to (1,1) preferring the diagonal on ties.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
