package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gpigna0/dayglow/backlight"
	"github.com/gpigna0/dayglow/util"
)

// watch prints a BRIGHTNESS line to w for every value the device reports
// until ctx is done.
func watch(ctx context.Context, dev *backlight.Device, w io.Writer) error {
	values, err := dev.Watch(ctx)
	if err != nil {
		return fmt.Errorf("could not watch device: %w", err)
	}

	for v := range values {
		msg := fmt.Sprintf(
			"BRIGHTNESS::%s::%s::%s",
			dev.Path,
			strconv.Itoa(int(v)),
			strconv.FormatFloat(util.ToPercent(float64(v), util.MaxBrightness, 0), 'f', -1, 64),
		)
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return fmt.Errorf("error while writing brightness: %w", err)
		}
	}

	return nil
}
