package main

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/gpigna0/dayglow/curve"
)

const day = 24 * time.Hour

var clockRgx = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// point is the target the daemon would write at a given time of day.
type point struct {
	Offset     time.Duration
	Fraction   float64
	Brightness uint8
	Segment    curve.Segment
}

// parseClock turns "HH:MM" into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	matches := clockRgx.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func pointAt(offset time.Duration, states curve.TimeStates) point {
	fraction := float64(offset/time.Minute) / float64(day/time.Minute)
	return point{
		Offset:     offset,
		Fraction:   fraction,
		Brightness: curve.Compute(fraction, states),
		Segment:    curve.SegmentAt(fraction, states),
	}
}

// schedule samples the curve from midnight every step. Steps under a minute
// are rejected since the curve only changes once per minute.
func schedule(states curve.TimeStates, step time.Duration) ([]point, error) {
	if step < time.Minute {
		return nil, fmt.Errorf("step must be at least 1m, got %v", step)
	}

	points := make([]point, 0, int(day/step)+1)
	for off := time.Duration(0); off < day; off += step {
		points = append(points, pointAt(off.Truncate(time.Minute), states))
	}
	return points, nil
}

func formatPoint(p point) string {
	h := int(p.Offset / time.Hour)
	m := int((p.Offset % time.Hour) / time.Minute)
	return fmt.Sprintf("%02d:%02d  %.4f  %3d  %s", h, m, p.Fraction, p.Brightness, p.Segment)
}
