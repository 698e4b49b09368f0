// SPDX-License-Identifier: MIT

package mat2

import (
	"strconv"
	"strings"
)

// FormatScalar renders c as a compact complex literal that ParseScalar reads
// back: "10", "5+2i", "-0.5i". Real values drop the imaginary part.
func FormatScalar(c complex128) string {
	if imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', -1, 64)
	}
	if real(c) == 0 {
		return strconv.FormatFloat(imag(c), 'g', -1, 64) + "i"
	}
	s := strconv.FormatComplex(c, 'g', -1, 128)

	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}

// ParseScalar parses a complex literal such as "3", "4i", "5+2i" or "(5+2i)".
// Returns ErrBadScalar on malformed input.
func ParseScalar(s string) (complex128, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, mat2Errorf(opParseScalar, ErrBadScalar)
	}

	return c, nil
}

// String renders m as [[m00 m01] [m10 m11]].
func (m Matrix) String() string {
	var b strings.Builder
	b.WriteString("[[")
	b.WriteString(FormatScalar(m.M00))
	b.WriteByte(' ')
	b.WriteString(FormatScalar(m.M01))
	b.WriteString("] [")
	b.WriteString(FormatScalar(m.M10))
	b.WriteByte(' ')
	b.WriteString(FormatScalar(m.M11))
	b.WriteString("]]")

	return b.String()
}
