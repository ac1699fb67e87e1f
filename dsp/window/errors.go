package window

import (
	"errors"
	"fmt"
)

// ErrInvalidType reports a window type outside the supported enumeration.
var ErrInvalidType = errors.New("window: invalid window type")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}
