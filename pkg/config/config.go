// Package config resolves the raw flag surface into one validated, immutable
// run configuration. Resolution is pure: every configuration error is caught
// before any file is touched.
package config

import (
	"fmt"

	"github.com/wonderfulspam/datadiff/pkg/diff"
	"github.com/wonderfulspam/datadiff/pkg/document"
)

// UsageError reports conflicting or missing flags. It maps to exit code 2.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// Mode selects between a fresh comparison and replaying a saved session.
type Mode int

const (
	ModeCheck Mode = iota
	ModeLoad
)

// OutputTarget selects where the run's result goes.
type OutputTarget int

const (
	OutputDisplay OutputTarget = iota
	OutputSaveToFile
	OutputBrowser
)

// Output is the resolved destination. PrinterFriendly and AutoOpen only
// carry meaning for OutputBrowser.
type Output struct {
	Target          OutputTarget
	Path            string
	PrinterFriendly bool
	AutoOpen        bool
}

// RunConfig is the fully validated configuration for one run. It is built
// once by Resolve and read-only afterwards.
type RunConfig struct {
	Mode           Mode
	LeftPath       string
	RightPath      string
	SessionPath    string
	Kinds          []diff.Kind
	OrderSensitive bool
	Output         Output
}

// RawFlags is the untyped flag surface as the CLI hands it over.
type RawFlags struct {
	CheckFiles      []string
	ReadFrom        string
	WriteTo         string
	BrowserTo       string
	PrinterFriendly bool
	NoOpen          bool
	KeyDiffs        bool
	TypeDiffs       bool
	ValueDiffs      bool
	ArrayDiffs      bool
	OrderSensitive  bool
}

// Resolve validates the flag combination and produces the run configuration.
func Resolve(flags RawFlags) (*RunConfig, error) {
	checking := len(flags.CheckFiles) > 0
	loading := flags.ReadFrom != ""

	if checking && loading {
		return nil, usageErrorf("-c and -r are mutually exclusive: compare files or replay a session, not both")
	}
	if !checking && !loading {
		return nil, usageErrorf("nothing to do: pass -c with two files or -r with a session file")
	}

	cfg := &RunConfig{
		Kinds:          requestedKinds(flags),
		OrderSensitive: flags.OrderSensitive,
		Output:         resolveOutput(flags),
	}

	if loading {
		cfg.Mode = ModeLoad
		cfg.SessionPath = flags.ReadFrom
		return cfg, nil
	}

	if len(flags.CheckFiles) != 2 {
		return nil, usageErrorf("-c expects exactly two files, got %d", len(flags.CheckFiles))
	}
	if document.Detect(flags.CheckFiles[0]) != document.Detect(flags.CheckFiles[1]) {
		return nil, usageErrorf("cannot compare %s against %s: both files must be JSON or both YAML",
			flags.CheckFiles[0], flags.CheckFiles[1])
	}
	if len(cfg.Kinds) == 0 {
		return nil, usageErrorf("select at least one difference kind to check for (-k, -t, -v, -a)")
	}
	cfg.Mode = ModeCheck
	cfg.LeftPath = flags.CheckFiles[0]
	cfg.RightPath = flags.CheckFiles[1]
	return cfg, nil
}

func requestedKinds(flags RawFlags) []diff.Kind {
	var kinds []diff.Kind
	if flags.KeyDiffs {
		kinds = append(kinds, diff.KindKey)
	}
	if flags.TypeDiffs {
		kinds = append(kinds, diff.KindType)
	}
	if flags.ValueDiffs {
		kinds = append(kinds, diff.KindValue)
	}
	if flags.ArrayDiffs {
		kinds = append(kinds, diff.KindArray)
	}
	return kinds
}

// resolveOutput picks the single output destination. A session write beats
// the browser report; the browser-only flags then have no effect, matching
// the documented behavior of -b alongside -w.
func resolveOutput(flags RawFlags) Output {
	if flags.WriteTo != "" {
		return Output{Target: OutputSaveToFile, Path: flags.WriteTo}
	}
	if flags.BrowserTo != "" {
		return Output{
			Target:          OutputBrowser,
			Path:            flags.BrowserTo,
			PrinterFriendly: flags.PrinterFriendly,
			AutoOpen:        !flags.NoOpen,
		}
	}
	return Output{Target: OutputDisplay}
}
