package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gpigna0/dayglow/backlight"
	"github.com/gpigna0/dayglow/logger"
	"github.com/gpigna0/dayglow/util"
	"github.com/urfave/cli/v3"
)

func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Config file (.toml, .yaml or .yml). Defaults to ~/.config/dayglow/config.toml"},
		&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Brightness control file, e.g. /sys/class/backlight/rpi_backlight/brightness"},
		&cli.FloatFlag{Name: "sunrise", Aliases: []string{"s"}, Usage: "Start of the rising curve as a fraction of the day"},
		&cli.FloatFlag{Name: "noon", Aliases: []string{"n"}, Usage: "Start of full brightness as a fraction of the day"},
		&cli.FloatFlag{Name: "dusk", Aliases: []string{"d"}, Usage: "Start of the falling curve as a fraction of the day"},
		&cli.StringFlag{Name: "log-level", Usage: "One of " + strings.Join(logger.Levels, ", ")},
	}
}

// setup loads the config file, applies flag overrides and validates the
// result. needDevice requires a device path to be configured.
func setup(c *cli.Command, needDevice bool) (*logger.Logger, error) {
	if err := util.InitConfig(c.String("config")); err != nil {
		return nil, err
	}

	if c.IsSet("path") {
		util.Conf.Device.Path = c.String("path")
	}
	if c.IsSet("sunrise") {
		util.Conf.Times.Sunrise = c.Float("sunrise")
	}
	if c.IsSet("noon") {
		util.Conf.Times.Noon = c.Float("noon")
	}
	if c.IsSet("dusk") {
		util.Conf.Times.Dusk = c.Float("dusk")
	}
	if c.IsSet("log-level") {
		util.Conf.Log.Level = c.String("log-level")
	}

	if err := util.Validate(util.Conf); err != nil {
		return nil, err
	}
	if needDevice {
		if err := util.ValidateDevice(util.Conf); err != nil {
			return nil, err
		}
	}

	return logger.Get(util.Conf.Log.Level), nil
}

func cmdDaemon() *cli.Command {
	return &cli.Command{
		Name:  "daemon",
		Usage: "Keep the backlight on the curve until a fatal device error",
		Action: func(ctx context.Context, c *cli.Command) error {
			log, err := setup(c, true)
			if err != nil {
				return err
			}

			return daemon(ctx, log)
		},
	}
}

func cmdGet() *cli.Command {
	return &cli.Command{
		Name:                   "get",
		Usage:                  "Display the current and target brightness",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "human-readable", Aliases: []string{"H"}, Usage: "Display the brightness as percentage"},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "Format output as JSON"},
			&cli.IntFlag{Name: "precision", Usage: "Number of decimals used to display percentage values. Ignored if -H is not set"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := setup(c, true); err != nil {
				return err
			}
			hr := c.Bool("human-readable")

			dev := backlight.New(util.Conf.Device.Path)
			stats, err := get(dev, util.Conf.States(), time.Now(), hr, c.Int("precision"))
			if err != nil {
				return err
			}

			out, err := parse(stats, hr, c.Bool("json"))
			if err != nil {
				return err
			}
			fmt.Println(out)

			return nil
		},
	}
}

func cmdSet() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set the brightness once",
		ArgsUsage: "Available formats are:\n\tN -> set brightness in absolute value\n\tN% -> set brightness as percentage\n\t±N% Increment or decrement brightness by N percent",
		Action: func(ctx context.Context, c *cli.Command) error {
			if !c.Args().Present() {
				return errors.New("incorrect number of arguments: needs one")
			}
			log, err := setup(c, true)
			if err != nil {
				return err
			}

			dev := backlight.New(util.Conf.Device.Path)
			v, err := set(dev, c.Args().First())
			if err != nil {
				return err
			}
			log.Debugw("brightness set", "device", dev.Path, "value", v)

			return nil
		},
	}
}

func cmdCurve() *cli.Command {
	return &cli.Command{
		Name:  "curve",
		Usage: "Show the brightness the daemon targets over the day",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "at", Aliases: []string{"a"}, Usage: "Only show the target at HH:MM"},
			&cli.DurationFlag{Name: "step", Value: time.Hour, Usage: "Spacing of the day table"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := setup(c, false); err != nil {
				return err
			}
			states := util.Conf.States()

			if c.IsSet("at") {
				offset, err := parseClock(c.String("at"))
				if err != nil {
					return err
				}
				fmt.Println(formatPoint(pointAt(offset, states)))
				return nil
			}

			points, err := schedule(states, c.Duration("step"))
			if err != nil {
				return err
			}
			for _, p := range points {
				fmt.Println(formatPoint(p))
			}

			return nil
		},
	}
}

func cmdWatch() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Print the brightness every time the control file changes",
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := setup(c, true); err != nil {
				return err
			}

			return watch(ctx, backlight.New(util.Conf.Device.Path), os.Stdout)
		},
	}
}
