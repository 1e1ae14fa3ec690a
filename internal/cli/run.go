package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"msgpanel/hal"
	"msgpanel/internal/buildinfo"
	"msgpanel/internal/tui"
)

func windowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run the panel in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runWindow(cmd.Context())
		},
	}
}

func (e *env) runWindow(ctx context.Context) error {
	s, err := e.boot(nil)
	if err != nil {
		return err
	}
	defer s.Close()
	return hal.RunWindow(ctx, s.h, s.sys)
}

func headlessCmd(e *env) *cobra.Command {
	var (
		cfg     hal.HeadlessConfig
		actions []string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the panel without a window and print the final display",
		Long: `Run the panel without a window. Frames sent on the serial link are printed as
they go out; the LCD contents are printed when the run ends.

Actions are "<button>@<tick>" for a short press, "<button>!@<tick>" for a long press,
"<button>:<ticks>@<tick>" for an explicit hold and "turn<+n|-n>@<tick>" for encoder
detents. Buttons are prev, next, half, ok and bcast.`,
		Example: `  msgpanel headless --ticks 3000 --do next@100 --do prev!@400 --do turn+2@1300 --do ok@1500`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			script, err := parseActions(actions)
			if err != nil {
				return err
			}
			cfg.Script = script
			return e.runHeadless(cmd.Context(), cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.Hz, "hz", 1000, "foreground loop rate")
	cmd.Flags().Uint64Var(&cfg.Ticks, "ticks", 0, "stop after N ticks (0 = run until interrupted)")
	cmd.Flags().StringArrayVar(&actions, "do", nil, "scripted input action (repeatable)")
	return cmd
}

func parseActions(in []string) ([]hal.Action, error) {
	out := make([]hal.Action, 0, len(in))
	for _, s := range in {
		a, err := hal.ParseAction(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (e *env) runHeadless(ctx context.Context, cfg hal.HeadlessConfig) error {
	s, err := e.boot(frameLines{w: e.stdout})
	if err != nil {
		return err
	}
	defer s.Close()

	err = hal.RunHeadless(ctx, s.h, s.sys, cfg)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	for _, line := range s.h.LCD().Snapshot().Lines() {
		fmt.Fprintf(e.stdout, "|%s|\n", line)
	}
	return err
}

func tuiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the panel in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Console logging would tear the alternate screen; the file sink still works.
			quiet := *e
			quiet.stderr = io.Discard
			frames := tui.NewFrameLog(4, nil)
			s, err := quiet.boot(frames)
			if err != nil {
				return err
			}
			defer s.Close()

			m := tui.New(s.h, s.sys, frames, "msgpanel "+buildinfo.Short())
			final, err := programFactory(m).Run()
			if err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			if fm, ok := final.(tui.Model); ok && fm.Err() != nil {
				return fm.Err()
			}
			return nil
		},
	}
}
