// Package util contain utility functions used by other components of dayglow
package util

import (
	"errors"
	"math"
	"os"
)

// MaxBrightness is the largest value the brightness file accepts.
const MaxBrightness = 255.0

func PathExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		} else {
			return false, err
		}
	}
	return true, nil
}

// ToPercent converts v into a percentage of max, rounded to prec decimals.
// A negative prec disables rounding.
func ToPercent(v, max float64, prec int) float64 {
	v = 100 * v / max
	if prec >= 0 {
		decs := math.Pow(10, float64(prec))
		v = math.Round(v*decs) / decs
	}
	return v
}

// Clamp limits v to [0, MaxBrightness] and rounds it.
func Clamp(v float64) uint8 {
	switch {
	case v < 0:
		return 0
	case v > MaxBrightness:
		return MaxBrightness
	default:
		return uint8(math.Round(v))
	}
}
