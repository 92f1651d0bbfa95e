// Package cli implements the gridstar command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	jsonOutput bool
	logLevel   string
}

// NewRootCmd builds the command tree. Each call returns independent flag state.
func NewRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:     "gridstar",
		Version: version,
		Short:   "A* path search on occupancy grids",
		Long: `gridstar finds least-cost paths on 2-D occupancy grids with A*.

Scenarios are YAML files holding a grid, a start, a goal and optional
search settings. See "gridstar solve --help" for the format.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(gf.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().BoolVar(&gf.jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newSolveCmd(gf),
		newRenderCmd(),
		newServeCmd(),
	)

	return root
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}

	return level, nil
}

// Execute runs the command line and prints any error to stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "✗ %v\n", err)
	}

	return err
}
