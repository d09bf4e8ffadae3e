package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonderfulspam/datadiff/pkg/config"
)

const version = "1.0.0"

var flags config.RawFlags

var rootCmd = &cobra.Command{
	Use:   "datadiff",
	Short: "Find the differences in your data structures",
	Long: `datadiff compares two JSON or YAML documents and reports key, type,
value and array differences. Results are rendered as terminal tables, as a
standalone HTML report, or saved as a session file that can be replayed
later with -r.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(flags)
		if err != nil {
			return err
		}
		return run(cmd, cfg)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringSliceVarP(&flags.CheckFiles, "check", "c", nil, "the two files to compare (-c left.json -c right.json)")
	f.StringVarP(&flags.ReadFrom, "read", "r", "", "replay a session file from a previous check instead of checking again")
	f.StringVarP(&flags.WriteTo, "write", "w", "", "save the session to a file instead of rendering")
	f.StringVarP(&flags.BrowserTo, "browser", "b", "", "write an HTML report to the given path (has no effect if used with -w)")
	f.BoolVarP(&flags.PrinterFriendly, "printer-friendly", "p", false, "printer friendly HTML output")
	f.BoolVarP(&flags.NoOpen, "no-open", "n", false, "don't open the HTML report in a browser")
	f.BoolVarP(&flags.KeyDiffs, "key-diffs", "k", false, "check for key differences")
	f.BoolVarP(&flags.TypeDiffs, "type-diffs", "t", false, "check for type differences")
	f.BoolVarP(&flags.ValueDiffs, "value-diffs", "v", false, "check for value differences")
	f.BoolVarP(&flags.ArrayDiffs, "array-diffs", "a", false, "check for array differences")
	f.BoolVarP(&flags.OrderSensitive, "ordered", "o", false, "treat arrays as ordered: report indexed value differences instead of membership differences")
	f.BoolP("version", "V", false, "print version information")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &config.UsageError{Msg: err.Error()}
	})
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
