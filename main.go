package main

import (
	"context"
	"os"

	"github.com/gpigna0/dayglow/logger"
	"github.com/gpigna0/dayglow/util"
	"github.com/urfave/cli/v3"
)

func main() {
	daemon := cmdDaemon()
	get := cmdGet()
	set := cmdSet()
	curve := cmdCurve()
	watch := cmdWatch()

	cmd := cli.Command{
		Name:     "dayglow",
		Usage:    "Keep your backlight on a time of day curve",
		Flags:    rootFlags(),
		Commands: []*cli.Command{daemon, get, set, curve, watch},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Get(util.Conf.Log.Level).Fatalf("dayglow failed with errors:\n\n%v\n", err)
	}
}
