//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runner is the application side of a host run loop.
type Runner interface {
	// Pump feeds ticks into the interrupt domain until ctx ends.
	Pump(ctx context.Context, ticks <-chan uint64) error
	// Step runs one pass of the foreground loop.
	Step() error
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	// Hz is the foreground loop rate.
	Hz int
	// Ticks stops the run after this many ticks (0 = run until cancelled).
	Ticks uint64
	// Script is played against the virtual panel as the tick counter passes each action.
	Script []Action
}

// Action is a scripted panel input.
type Action struct {
	At uint64
	// Pin is the button to press; ignored when Turn is non-zero.
	Pin int
	// Hold is the press length in ticks.
	Hold int
	Turn int
}

const (
	// ShortHold and LongHold are press lengths that classify as short and long presses
	// with the default debounce thresholds.
	ShortHold = 60
	LongHold  = 700
)

var pinNames = map[string]int{
	"prev":  PinPrev,
	"next":  PinNext,
	"half":  PinHalf,
	"ok":    PinOK,
	"bcast": PinBroadcast,
}

// ParseAction parses "<button>[!]@<tick>" or "turn<+n|-n>@<tick>". A trailing "!" on
// the button makes it a long press; "<button>:<ticks>@<tick>" sets the hold explicitly.
func ParseAction(s string) (Action, error) {
	what, at, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Action{}, fmt.Errorf("action %q: missing @tick", s)
	}
	tick, err := strconv.ParseUint(at, 10, 64)
	if err != nil {
		return Action{}, fmt.Errorf("action %q: tick: %w", s, err)
	}
	a := Action{At: tick}

	if rest, ok := strings.CutPrefix(what, "turn"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n == 0 {
			return Action{}, fmt.Errorf("action %q: bad turn count", s)
		}
		a.Turn = n
		return a, nil
	}

	a.Hold = ShortHold
	if name, ok := strings.CutSuffix(what, "!"); ok {
		what = name
		a.Hold = LongHold
	}
	if name, hold, ok := strings.Cut(what, ":"); ok {
		n, err := strconv.Atoi(hold)
		if err != nil || n <= 0 {
			return Action{}, fmt.Errorf("action %q: bad hold", s)
		}
		what = name
		a.Hold = n
	}
	pin, ok := pinNames[strings.ToLower(what)]
	if !ok {
		return Action{}, fmt.Errorf("action %q: unknown button %q", s, what)
	}
	a.Pin = pin
	return a, nil
}

// Apply performs the action on the panel.
func (a Action) Apply(c *Controls) error {
	if a.Turn != 0 {
		c.Turn(a.Turn)
		return nil
	}
	return c.Press(a.Pin, a.Hold)
}

// RunHeadless runs the panel without opening a window. The tick source, the interrupt
// domain and the foreground loop run in one errgroup; the first error stops all three.
func RunHeadless(ctx context.Context, h *Host, app Runner, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	script := append([]Action(nil), cfg.Script...)
	sort.SliceStable(script, func(i, j int) bool { return script[i].At < script[j].At })

	g, ctx := errgroup.WithContext(ctx)
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g.Go(func() error {
		return app.Pump(ctx, h.t.Ticks())
	})

	g.Go(func() error {
		defer stop()
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-t.C:
			}
			seq := h.t.step()
			for len(script) > 0 && script[0].At <= seq {
				if err := script[0].Apply(h.Controls()); err != nil {
					return err
				}
				script = script[1:]
			}
			if err := app.Step(); err != nil {
				return err
			}
			if cfg.Ticks > 0 && seq >= cfg.Ticks {
				return nil
			}
		}
	})

	return g.Wait()
}
