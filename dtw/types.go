package dtw

import "errors"

// MemoryMode controls how much of the DP matrix is kept.
type MemoryMode int

const (
	// FullMatrix keeps every row; required for ReturnPath.
	FullMatrix MemoryMode = iota
	// TwoRows keeps the previous and current row only.
	TwoRows
)

// Options configures Distance.
//
//   - Window:       Sakoe–Chiba half-width; -1 disables the band. Values
//     below -1 are rejected.
//   - SlopePenalty: cost added to insertion and deletion steps (>= 0).
//   - ReturnPath:   backtrack the optimal path (FullMatrix only).
//   - MemoryMode:   FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{Window: -1, MemoryMode: FullMatrix}
}

// Coord is one step of the warping path: a[I] is matched with b[J].
type Coord struct {
	I, J int
}

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or NaN
	// penalty, unknown memory mode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath was requested without FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)
