package stft

// addZeroPadding pads a signal for framing: half a window of zeros on each
// side to soften the window taper at the edges, plus a tail pad that tops the
// original length up to a hop multiple.
//
// An odd windowLength is reduced by one for this computation, matching the
// even-normalization the transforms apply to all framing math. The returned
// padded length satisfies (len(padded) - evenWindowLength) % hopLength == 0.
func addZeroPadding(signal []float64, windowLength, hopLength int) (padded []float64, headPad, tailPad int) {
	windowLength &^= 1

	headPad = windowLength / 2

	if r := len(signal) % hopLength; r != 0 {
		tailPad = hopLength - r
	}

	padded = make([]float64, headPad+len(signal)+headPad+tailPad)
	copy(padded[headPad:], signal)

	return padded, headPad, tailPad
}

// trimFramePadding drops the frame columns that fall entirely within the
// head and tail padding regions.
func trimFramePadding(matrix [][]complex128, headPad, tailPad, hopLength int) [][]complex128 {
	if len(matrix) == 0 {
		return matrix
	}

	frames := len(matrix[0])
	first := headPad / hopLength

	last := frames - (headPad+tailPad)/hopLength
	if last < first {
		last = first
	}

	out := make([][]complex128, len(matrix))
	for i, row := range matrix {
		out[i] = row[first:last]
	}

	return out
}

// trimSignalPadding removes windowLength-hopLength samples from each end of
// a reconstructed signal, undoing the framing pad of addZeroPadding for the
// same window and hop values.
func trimSignalPadding(signal []float64, windowLength, hopLength int) []float64 {
	start := windowLength - hopLength

	stop := len(signal) - start
	if stop < start {
		return nil
	}

	return signal[start:stop]
}
