package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gpigna0/dayglow/backlight"
	"github.com/gpigna0/dayglow/curve"
	"github.com/gpigna0/dayglow/util"
)

type Stats struct {
	Path       string  `json:"path"`
	Brightness float64 `json:"brightness"`
	Target     float64 `json:"target"`
	Segment    string  `json:"segment"`
	InSync     bool    `json:"in_sync"`
}

func get(dev *backlight.Device, states curve.TimeStates, now time.Time, humanReadable bool, precision int) (Stats, error) {
	brg, err := dev.Read()
	if err != nil {
		return Stats{}, err
	}
	fraction := curve.DayFraction(now)
	target := curve.Compute(fraction, states)

	stats := Stats{
		dev.Path,
		float64(brg),
		float64(target),
		curve.SegmentAt(fraction, states).String(),
		brg == target,
	}

	if humanReadable {
		stats.Brightness = util.ToPercent(stats.Brightness, util.MaxBrightness, precision)
		stats.Target = util.ToPercent(stats.Target, util.MaxBrightness, precision)
	}

	return stats, nil
}

func parse(stats Stats, humanReadable bool, jsonFmt bool) (string, error) {
	if jsonFmt {
		out, err := json.MarshalIndent(stats, "", "\t")
		if err != nil {
			return "", fmt.Errorf("error while marshaling statistics: %w", err)
		}
		return string(out), nil
	}

	percent := ""
	if humanReadable {
		percent = "%"
	}

	return fmt.Sprintf(
		"Path: %s\nBrightness: %v%s\nTarget: %v%s\nSegment: %s\nIn sync: %t",
		stats.Path,
		stats.Brightness,
		percent,
		stats.Target,
		percent,
		stats.Segment,
		stats.InSync,
	), nil
}
