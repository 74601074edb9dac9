package util

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// SafeDiv returns n/d, or 0 when d is (numerically) zero.
func SafeDiv(n, d float64) float64 {
	const eps = 1e-12
	if d > eps || d < -eps {
		return n / d
	}
	return 0
}

// FmtFloat formats x with the given number of decimals.
// Infinities render as "inf"/"-inf" and NaN as "nan".
func FmtFloat(x float64, prec int) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "nan"
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}

// FmtShortest formats x with the fewest digits that round-trip.
func FmtShortest(x float64) string {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return FmtFloat(x, 0)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// CreateFile creates path, making any missing parent directories first.
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}
