package constants

import "math"

// pi holds 4·atan(1) rounded to single precision. Assigned once during
// package initialization and never mutated afterwards.
var pi = float32(math.Atan(1)) * 4

// Pi returns π as a single-precision float, computed as 4·atan(1).
//
// The call has no inputs, no failure mode and no side effects; every
// call returns the identical bit pattern.
func Pi() float32 {
	return pi
}
