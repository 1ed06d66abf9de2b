package gomap

import (
	"errors"
	"math"
	"strconv"
)

var errNotFinite = errors.New("number is not finite")

// formatFloat renders f with the fewest digits that read back as the same
// value, so 1.2 becomes "1.2" and 3.0 becomes "3". Like encoding/json,
// exponents are used only below 1e-6 and from 1e21 on.
func formatFloat(f float64, bits int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", errNotFinite
	}
	mode := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			mode = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, mode, -1, bits)
	if mode == 'e' {
		// e-09 -> e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b), nil
}

// validNumber reports whether s is a decimal number. Out of range values
// are still numbers; hex, underscores, inf and nan are not.
func validNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return false
		}
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
