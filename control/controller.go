// Package control runs the loop that keeps a backlight on the day curve.
package control

import (
	"context"
	"fmt"
	"time"

	"github.com/gpigna0/dayglow/backlight"
	"github.com/gpigna0/dayglow/curve"
	"github.com/gpigna0/dayglow/logger"
	"github.com/zoobzio/clockz"
)

const (
	// IdleInterval is the pause after a tick that read the device
	// successfully, whether or not it wrote. Must be > 0.
	IdleInterval = 1 * time.Second
	// BackoffInterval is the pause after a transient device error. It is
	// used for every retry, with no growth and no limit. Must be > 0.
	BackoffInterval = 3 * time.Second
)

// Device is the brightness control surface driven by the controller.
type Device interface {
	Read() (uint8, error)
	Write(v uint8) error
}

// Controller keeps a Device on the brightness curve described by its
// TimeStates. It is not safe for concurrent use.
type Controller struct {
	dev    Device
	states curve.TimeStates
	clock  clockz.Clock
	log    *logger.Logger
}

type Option func(*Controller)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock clockz.Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func New(dev Device, states curve.TimeStates, opts ...Option) *Controller {
	c := &Controller{
		dev:    dev,
		states: states,
		clock:  clockz.RealClock,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probe reads the device once before the loop starts and reports its value.
// It follows the same error policy as Tick and returns how long to wait
// before the first tick.
func (c *Controller) Probe() (time.Duration, error) {
	v, err := c.dev.Read()
	if err != nil {
		return c.handle("read brightness", err)
	}
	c.log.Infow("device ready",
		"brightness", v,
		"target", curve.At(c.clock.Now(), c.states),
	)
	return 0, nil
}

// Tick runs one read, compute, write cycle. It returns the delay before the
// next tick, or an error when the device failed in a way waiting cannot fix.
func (c *Controller) Tick() (time.Duration, error) {
	current, err := c.dev.Read()
	if err != nil {
		return c.handle("read brightness", err)
	}

	fraction := curve.DayFraction(c.clock.Now())
	target := curve.Compute(fraction, c.states)
	if target == current {
		return IdleInterval, nil
	}

	if err := c.dev.Write(target); err != nil {
		return c.handle("write brightness", err)
	}

	c.log.Infof("old value: %d -> new value: %d", current, target)
	c.log.Debugw("curve", "fraction", fraction, "segment", curve.SegmentAt(fraction, c.states).String())
	return IdleInterval, nil
}

// handle applies the retry policy: transient errors are logged and retried
// after BackoffInterval, anything else ends the loop.
func (c *Controller) handle(op string, err error) (time.Duration, error) {
	if !backlight.IsTransient(err) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	c.log.Warnw("got minor error, retrying (device could just be busy)",
		"op", op,
		"err", err,
		"retry_in", BackoffInterval,
	)
	return BackoffInterval, nil
}

// Run probes the device and then ticks until a fatal error occurs. Transient
// errors are retried forever. Run also returns when ctx is done.
func (c *Controller) Run(ctx context.Context) error {
	wait, err := c.Probe()
	if err != nil {
		return err
	}

	for {
		if err := c.sleep(ctx, wait); err != nil {
			return err
		}
		wait, err = c.Tick()
		if err != nil {
			return err
		}
	}
}

func (c *Controller) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := c.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C():
		return nil
	}
}
