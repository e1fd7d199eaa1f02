package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/gpigna0/dayglow/backlight"
	"github.com/gpigna0/dayglow/util"
)

var rgx = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)%$|^(\d+)$`)

// set writes value to dev and returns the brightness actually written.
func set(dev *backlight.Device, value string) (uint8, error) {
	matches := rgx.FindStringSubmatch(value)
	if len(matches) == 0 {
		return 0, errors.New(
			"argument parsing error (" +
				value +
				"):\n\tthe value to set must be in the form\n\t[+ | -]N.n% or N")
	}

	var val uint8
	switch {
	case matches[3] != "":
		v, err := strconv.ParseFloat(matches[3], 64)
		if err != nil {
			return 0, err
		}
		val = util.Clamp(v)
	case matches[1] != "":
		v, err := percentIncrement(dev, matches[1]+matches[2])
		if err != nil {
			return 0, err
		}
		val = v
	default:
		v, err := percentBrightness(matches[2])
		if err != nil {
			return 0, err
		}
		val = v
	}

	if err := dev.Write(val); err != nil {
		return 0, fmt.Errorf("error writing new brightness %d: %w", val, err)
	}

	return val, nil
}

func percentBrightness(val string) (uint8, error) {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, err
	}

	switch {
	case v > 100:
		v = 100
	case v < 0:
		v = 0
	}

	return util.Clamp(util.MaxBrightness * v / 100), nil
}

func percentIncrement(dev *backlight.Device, amt string) (uint8, error) {
	curr, err := dev.Read()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(amt, 64)
	if err != nil {
		return 0, err
	}

	return util.Clamp(float64(curr) + util.MaxBrightness*v/100), nil
}
