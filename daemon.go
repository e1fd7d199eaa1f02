package main

import (
	"context"
	"fmt"

	"github.com/gpigna0/dayglow/backlight"
	"github.com/gpigna0/dayglow/control"
	"github.com/gpigna0/dayglow/logger"
	"github.com/gpigna0/dayglow/util"
)

// daemon drives the configured device until a fatal device error. Transient
// errors never reach the caller.
func daemon(ctx context.Context, log *logger.Logger) error {
	dev := backlight.New(util.Conf.Device.Path)
	ctrl := control.New(dev, util.Conf.States(), control.WithLogger(log))

	log.Infow("daemon started successfully",
		"device", dev.Path,
		"sunrise", util.Conf.Times.Sunrise,
		"noon", util.Conf.Times.Noon,
		"dusk", util.Conf.Times.Dusk,
	)

	if err := ctrl.Run(ctx); err != nil {
		return fmt.Errorf("daemon stopped: %w", err)
	}
	return nil
}
