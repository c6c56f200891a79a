package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/moby/systime/pkg/filetime"
	"github.com/moby/systime/pkg/pathmatch"
)

type touchOptions struct {
	atime     int64
	mtime     int64
	atimeUsec int64
	mtimeUsec int64
	match     []string
}

func newTouchCommand() *cobra.Command {
	var opts touchOptions

	cmd := &cobra.Command{
		Use:   "touch [OPTIONS] PATH",
		Short: "Set a file's access and modification times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTouch(args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.Int64Var(&opts.atime, "atime", 0, "Access time in seconds since the epoch")
	flags.Int64Var(&opts.mtime, "mtime", 0, "Modification time in seconds since the epoch")
	flags.Int64Var(&opts.atimeUsec, "atime-usec", 0, "Microsecond part of the access time (switches to the precise call)")
	flags.Int64Var(&opts.mtimeUsec, "mtime-usec", 0, "Microsecond part of the modification time (switches to the precise call)")
	flags.StringSliceVar(&opts.match, "match", nil, `Relaxed path matching modes ("unknown", "drive", "case")`)
	return cmd
}

func runTouch(path string, opts touchOptions) error {
	mode, err := parseMatchModes(opts.match)
	if err != nil {
		return err
	}
	pathmatch.SetMode(mode)

	var resolver pathmatch.Resolver
	if mode != pathmatch.ModeNone {
		resolver = caseResolver{}
	}
	u := filetime.NewUpdater(resolver)

	if opts.atimeUsec != 0 || opts.mtimeUsec != 0 {
		return u.SetPrecise(path, filetime.PreciseTimes{
			AccessSec:  opts.atime,
			AccessUsec: opts.atimeUsec,
			ModifySec:  opts.mtime,
			ModifyUsec: opts.mtimeUsec,
		})
	}
	return u.Set(path, filetime.Times{Access: opts.atime, Modify: opts.mtime})
}

func parseMatchModes(names []string) (pathmatch.Mode, error) {
	mode := pathmatch.ModeNone
	for _, name := range names {
		switch strings.ToLower(name) {
		case "unknown":
			mode |= pathmatch.ModeUnknown
		case "drive":
			mode |= pathmatch.ModeDrive
		case "case":
			mode |= pathmatch.ModeCase
		default:
			return pathmatch.ModeNone, errors.Errorf("unknown match mode %q", name)
		}
	}
	return mode, nil
}
