package stft

import "math/cmplx"

// addReflection appends the conjugate mirror of rows [n-2 .. 1], in reverse
// order, below a Nyquist-inclusive half spectrum. DC and Nyquist rows are not
// mirrored; for an input of n rows the result has 2*(n-1) rows, the full
// spectrum of a real-valued time-domain signal.
func addReflection(matrix [][]complex128) [][]complex128 {
	n := len(matrix)
	if n < 2 {
		return matrix
	}

	out := make([][]complex128, 0, 2*(n-1))
	out = append(out, matrix...)

	for i := n - 2; i >= 1; i-- {
		row := make([]complex128, len(matrix[i]))
		for j, v := range matrix[i] {
			row[j] = cmplx.Conj(v)
		}

		out = append(out, row)
	}

	return out
}
