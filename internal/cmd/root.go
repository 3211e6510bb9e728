// Package cmd provides the CLI commands for rocket.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitkit/rocket-go/internal/config"
	"github.com/orbitkit/rocket-go/internal/logging"
	"github.com/orbitkit/rocket-go/internal/output"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

var (
	cfgFile  string
	noColor  bool
	logLevel string
)

// ExitError carries a specific process exit code. An empty Message means
// the command already reported the problem on its own output.
type ExitError struct {
	Code    int
	Message string
}

// NewExitError creates an ExitError.
func NewExitError(code int, msg string) *ExitError {
	return &ExitError{Code: code, Message: msg}
}

func (e *ExitError) Error() string {
	return e.Message
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Fly flight plans against a simulated rocket",
	Long: `rocket drives a single rocket through a flight plan of refuel and launch
steps and reports the status and fuel level after every step.

A rocket starts ON_GROUND with an empty tank (capacity 1000). A launch burns
100 units and needs at least that much on board; trying with less, or
overfilling the tank, leaves the rocket DAMAGED for good.

Exit codes:
  0  Every step succeeded
  1  Usage or configuration error
  2  One or more steps failed`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with ctx. This is called by main.main().
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .rocket/config.yaml or rocket.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, off")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(flyCmd)
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves configuration from --config or by searching upward
// from the working directory, then applies global flag overrides.
func loadConfig() (*config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	var cfg *config.Config
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err == nil {
			config.LoadDotEnv(cwd)
			cfg.ApplyEnv()
		}
	} else {
		cfg, err = config.LoadFromDir(cwd)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	if noColor {
		cfg.Rocket.Color = false
	}
	if logLevel != "" {
		cfg.Rocket.LogLevel = logLevel
	}

	if cfg.Rocket.Color {
		output.EnableColor()
	} else {
		output.DisableColor()
	}

	return cfg, cwd, nil
}

// newLogger builds the command logger. Logs go to stderr so they never mix
// with report output.
func newLogger(cmd *cobra.Command, cfg *config.Config) (hclog.Logger, error) {
	logger, err := logging.New(cfg.Rocket.LogLevel, cfg.Rocket.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, NewExitError(1, err.Error())
	}
	return logger, nil
}
