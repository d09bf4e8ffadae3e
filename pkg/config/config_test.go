package config

import (
	"errors"
	"testing"

	"github.com/wonderfulspam/datadiff/pkg/diff"
)

func TestResolve_RejectsBadFlagCombinations(t *testing.T) {
	tests := []struct {
		name  string
		flags RawFlags
	}{
		{
			name:  "no mode selected",
			flags: RawFlags{},
		},
		{
			name: "both modes selected",
			flags: RawFlags{
				CheckFiles: []string{"a.json", "b.json"},
				ReadFrom:   "session.json",
				ValueDiffs: true,
			},
		},
		{
			name: "one file only",
			flags: RawFlags{
				CheckFiles: []string{"a.json"},
				ValueDiffs: true,
			},
		},
		{
			name: "three files",
			flags: RawFlags{
				CheckFiles: []string{"a.json", "b.json", "c.json"},
				ValueDiffs: true,
			},
		},
		{
			name: "mixed formats",
			flags: RawFlags{
				CheckFiles: []string{"a.json", "b.yaml"},
				ValueDiffs: true,
			},
		},
		{
			name: "no kinds in check mode",
			flags: RawFlags{
				CheckFiles: []string{"a.json", "b.json"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.flags)
			if err == nil {
				t.Fatal("Expected an error")
			}
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Errorf("Expected a usage error, got %T: %v", err, err)
			}
		})
	}
}

func TestResolve_CheckMode(t *testing.T) {
	cfg, err := Resolve(RawFlags{
		CheckFiles:     []string{"left.yaml", "right.yml"},
		KeyDiffs:       true,
		ValueDiffs:     true,
		OrderSensitive: true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Mode != ModeCheck {
		t.Error("Expected check mode")
	}
	if cfg.LeftPath != "left.yaml" || cfg.RightPath != "right.yml" {
		t.Errorf("Unexpected paths %q / %q", cfg.LeftPath, cfg.RightPath)
	}
	if len(cfg.Kinds) != 2 || cfg.Kinds[0] != diff.KindKey || cfg.Kinds[1] != diff.KindValue {
		t.Errorf("Unexpected kinds %v", cfg.Kinds)
	}
	if !cfg.OrderSensitive {
		t.Error("Expected order sensitivity to carry over")
	}
	if cfg.Output.Target != OutputDisplay {
		t.Error("Expected display output by default")
	}
}

func TestResolve_LoadModeNeedsNoKinds(t *testing.T) {
	cfg, err := Resolve(RawFlags{ReadFrom: "session.json"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Mode != ModeLoad {
		t.Error("Expected load mode")
	}
	if cfg.SessionPath != "session.json" {
		t.Errorf("Unexpected session path %q", cfg.SessionPath)
	}
	if len(cfg.Kinds) != 0 {
		t.Errorf("Expected no kinds, got %v", cfg.Kinds)
	}
}

func TestResolve_LoadModeKindsActAsFilter(t *testing.T) {
	cfg, err := Resolve(RawFlags{ReadFrom: "session.json", ArrayDiffs: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cfg.Kinds) != 1 || cfg.Kinds[0] != diff.KindArray {
		t.Errorf("Unexpected kinds %v", cfg.Kinds)
	}
}

func TestResolve_WriteBeatsBrowser(t *testing.T) {
	cfg, err := Resolve(RawFlags{
		CheckFiles: []string{"a.json", "b.json"},
		ValueDiffs: true,
		WriteTo:    "out.json",
		BrowserTo:  "report.html",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Output.Target != OutputSaveToFile || cfg.Output.Path != "out.json" {
		t.Errorf("Expected session write to win, got %+v", cfg.Output)
	}
}

func TestResolve_BrowserOutput(t *testing.T) {
	cfg, err := Resolve(RawFlags{
		CheckFiles:      []string{"a.json", "b.json"},
		ValueDiffs:      true,
		BrowserTo:       "report.html",
		PrinterFriendly: true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := cfg.Output
	if out.Target != OutputBrowser || out.Path != "report.html" {
		t.Errorf("Unexpected output %+v", out)
	}
	if !out.PrinterFriendly {
		t.Error("Expected printer friendly theme")
	}
	if !out.AutoOpen {
		t.Error("Expected auto open by default")
	}
}

func TestResolve_NoOpenDisablesAutoOpen(t *testing.T) {
	cfg, err := Resolve(RawFlags{
		CheckFiles: []string{"a.json", "b.json"},
		ValueDiffs: true,
		BrowserTo:  "report.html",
		NoOpen:     true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Output.AutoOpen {
		t.Error("Expected auto open to be disabled")
	}
}
