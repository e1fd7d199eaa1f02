// Package curve maps the time of day to a backlight brightness.
package curve

import (
	"math"
	"time"
)

const (
	// Floor is the lowest brightness ever produced, so the panel never goes
	// fully dark. Valid range: 0 <= Floor, Floor+Scale <= 255.
	Floor = 10.0
	// Scale is the span added on top of Floor at full brightness.
	Scale = 245.0

	// phases is the number of equal parts the day is divided into.
	phases = 3.0

	minutesPerDay = 24 * 60
)

// TimeStates holds the three breakpoints of the curve as fractions of a day
// in [0, 1).
type TimeStates struct {
	Sunrise float64
	Noon    float64
	Dusk    float64
}

// Default breakpoints split the day in three roughly equal parts.
var Default = TimeStates{Sunrise: 0.0, Noon: 0.333, Dusk: 0.666}

type Segment int

const (
	Idle Segment = iota
	Rising
	Plateau
	Falling
)

func (s Segment) String() string {
	switch s {
	case Rising:
		return "rising"
	case Plateau:
		return "plateau"
	case Falling:
		return "falling"
	default:
		return "idle"
	}
}

// DayFraction returns (hour*60 + minute) / 1440 for t in its own location.
// Seconds are ignored.
func DayFraction(t time.Time) float64 {
	return float64(t.Hour()*60+t.Minute()) / minutesPerDay
}

// SegmentAt reports which part of the curve is active at fraction.
// All comparisons are strict: a fraction equal to a breakpoint is Idle.
func SegmentAt(fraction float64, states TimeStates) Segment {
	switch {
	case fraction > states.Dusk:
		return Falling
	case fraction > states.Noon && fraction < states.Dusk:
		return Plateau
	case fraction > states.Sunrise && fraction < states.Noon:
		return Rising
	default:
		return Idle
	}
}

// Level returns the normalized brightness in [0, 1] at fraction.
func Level(fraction float64, states TimeStates) float64 {
	switch SegmentAt(fraction, states) {
	case Rising:
		return -0.5*math.Cos(math.Pi*fraction*phases) + 0.5
	case Plateau:
		return 1.0
	case Falling:
		return 0.5*math.Cos(math.Pi*fraction*phases) + 0.5
	default:
		return 0.0
	}
}

// Compute returns the device brightness for fraction.
//
// The cosine argument assumes the breakpoints sit on thirds of the day. With
// other breakpoints the curve does not reach exactly 0 or 1 at the segment
// edges.
func Compute(fraction float64, states TimeStates) uint8 {
	return uint8(math.Round(Level(fraction, states)*Scale + Floor))
}

// At is Compute for a wall-clock time.
func At(t time.Time, states TimeStates) uint8 {
	return Compute(DayFraction(t), states)
}
