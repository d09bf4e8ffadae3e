package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/wonderfulspam/datadiff/pkg/compare"
	"github.com/wonderfulspam/datadiff/pkg/config"
	"github.com/wonderfulspam/datadiff/pkg/diff"
	"github.com/wonderfulspam/datadiff/pkg/document"
	"github.com/wonderfulspam/datadiff/pkg/renderer"
	"github.com/wonderfulspam/datadiff/pkg/store"
)

// run drives the resolved pipeline: build or load the session, then send it
// to the configured output.
func run(cmd *cobra.Command, cfg *config.RunConfig) error {
	session, err := buildSession(cfg)
	if err != nil {
		return err
	}

	// In load mode the requested kinds act purely as a display filter over
	// what the file stored; no recomputation ever happens. An empty filter
	// means "show everything stored".
	displayKinds := diff.NewKindSet(cfg.Kinds...)
	if len(cfg.Kinds) == 0 {
		displayKinds = session.KindSet()
	}

	switch cfg.Output.Target {
	case config.OutputSaveToFile:
		if err := store.Save(session, cfg.Output.Path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session saved to %s\n", cfg.Output.Path)
		return nil

	case config.OutputBrowser:
		theme := renderer.ThemeDefault
		if cfg.Output.PrinterFriendly {
			theme = renderer.ThemePrinterFriendly
		}
		html, err := renderer.Render(session, renderer.Options{
			Target: renderer.TargetDocument,
			Theme:  theme,
			Kinds:  displayKinds,
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.Path, []byte(html), 0644); err != nil {
			return fmt.Errorf("writing report %s: %w", cfg.Output.Path, err)
		}
		if cfg.Output.AutoOpen {
			// Best effort: a missing browser must never fail the run.
			if err := browser.OpenFile(cfg.Output.Path); err != nil {
				slog.Warn("could not open report in browser", "path", cfg.Output.Path, "error", err)
			}
		}
		return nil

	default:
		out, err := renderer.Render(session, renderer.Options{
			Target: renderer.TargetTable,
			Kinds:  displayKinds,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
}

func buildSession(cfg *config.RunConfig) (*diff.Session, error) {
	if cfg.Mode == config.ModeLoad {
		return store.Load(cfg.SessionPath)
	}

	left, err := document.Load(cfg.LeftPath)
	if err != nil {
		return nil, err
	}
	right, err := document.Load(cfg.RightPath)
	if err != nil {
		return nil, err
	}

	kinds := diff.NewKindSet(cfg.Kinds...)
	raw := compare.NewEngine().Compare(left, right, kinds)
	records := diff.Classify(raw, cfg.OrderSensitive, kinds)
	return diff.NewSession(cfg.Kinds, cfg.OrderSensitive, records, cfg.LeftPath, cfg.RightPath), nil
}
