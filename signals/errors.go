package signals

import (
	"errors"
	"fmt"
)

// ErrBadLength indicates a requested signal length below the minimum the
// generator needs (n < 1, or n < 2 for ImpulseN).
var ErrBadLength = errors.New("signals: invalid length")

// ErrUnknownSignal indicates a signal name ByName does not recognize.
var ErrUnknownSignal = errors.New("signals: unknown signal")

// lengthError wraps ErrBadLength with the generator name and the offending n.
func lengthError(method string, n int) error {
	return fmt.Errorf("%s: n=%d: %w", method, n, ErrBadLength)
}
