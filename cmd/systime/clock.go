package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/moby/systime/pkg/timestamp"
)

func newClockCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Print the active clock source's timestamp, resolution and timebase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(cmd, interval)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "Take a second reading after this long and report the measured elapsed time")
	return cmd
}

func runClock(cmd *cobra.Command, interval time.Duration) error {
	res, err := timestamp.Resolution()
	if err != nil {
		return errors.Wrap(err, "probing clock source")
	}
	ts, err := timestamp.Now()
	if err != nil {
		return errors.Wrap(err, "reading timestamp")
	}
	tb := timestamp.TimebaseInfo()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "timestamp:  %d\n", ts)
	fmt.Fprintf(out, "resolution: %d ticks/s\n", res)
	fmt.Fprintf(out, "timebase:   %d/%d\n", tb.Numer, tb.Denom)
	if raw, err := timestamp.Absolute(); err == nil {
		fmt.Fprintf(out, "absolute:   %d\n", raw)
	}

	if interval > 0 {
		start, err := timestamp.Now()
		if err != nil {
			return errors.Wrap(err, "reading timestamp")
		}
		time.Sleep(interval)
		elapsed, err := timestamp.Since(start)
		if err != nil {
			return errors.Wrap(err, "measuring elapsed time")
		}
		fmt.Fprintf(out, "elapsed:    %s\n", elapsed)
	}
	return nil
}
