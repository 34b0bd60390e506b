package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ineyio/partquote"
	"github.com/ineyio/partquote/meter"
	"github.com/ineyio/partquote/supplier/catalog"
)

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitUnavailable = 2
)

// RootConfig holds the persistent flags shared by all subcommands.
type RootConfig struct {
	ConfigPath string
	LogLevel   string
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "partquote",
		Short:         "Quote robot parts at the cheapest supplier price",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&rc.ConfigPath, "config", "c", "suppliers.yaml", "Path to supplier catalog YAML")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	cmd.AddCommand(
		newQuoteCmd(rc),
		newOffersCmd(rc),
	)

	return cmd
}

// Execute runs the CLI with the given arguments and returns a process exit
// code. An unavailable part maps to ExitUnavailable.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		if partquote.IsUnavailable(err) {
			return ExitUnavailable
		}
		return ExitError
	}
	return ExitOK
}

// newSelector loads the supplier catalog and wires a logging selector.
func newSelector(cmd *cobra.Command, rc *RootConfig) (*partquote.Selector, error) {
	cfg, err := partquote.LoadConfig(os.ExpandEnv(rc.ConfigPath))
	if err != nil {
		return nil, err
	}

	suppliers, err := catalog.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), rc.LogLevel)
	return partquote.New(suppliers, partquote.WithMeter(meter.NewLogMeter(logger))), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func formatPrice(p float64) string {
	return fmt.Sprintf("%.2f", p)
}
