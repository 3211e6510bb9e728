package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/orbitkit/rocket-go/internal/config"
	"github.com/orbitkit/rocket-go/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configValidate bool
	configFormat   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate rocket configuration",
	Long: `Display the effective configuration after merging defaults, the config
file and ROCKET_* environment overrides.

Examples:
    rocket config                     # Show current config
    rocket config --validate          # Check config validity
    rocket config --format yaml       # Output as YAML`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configValidate, "validate", false, "validate configuration and check paths")
	configCmd.Flags().StringVar(&configFormat, "format", "terminal", "output format: terminal, yaml, json")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, cwd, err := loadConfig()
	if err != nil {
		return err
	}

	if configValidate {
		return validateConfig(cmd, cfg, cwd)
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg.Rocket, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		cmd.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		cmd.Print(string(data))
		return nil
	default:
		return displayConfigTerminal(cmd, cfg, cwd)
	}
}

func validateConfig(cmd *cobra.Command, cfg *config.Config, cwd string) error {
	cmd.Println(output.Header("Configuration Validation", 60))
	cmd.Println()

	var warnings []string

	if configPath, err := configSource(cwd); err != nil {
		warnings = append(warnings, "Config file not found (using defaults)")
	} else {
		cmd.Printf("  %s Config file: %s\n", output.Color("[PASS]", output.Green), configPath)
	}

	plansDir := cfg.PlansPath(cwd)
	if _, err := os.Stat(plansDir); os.IsNotExist(err) {
		warnings = append(warnings, fmt.Sprintf("Plans directory not found: %s", plansDir))
	} else {
		cmd.Printf("  %s Plans dir: %s\n", output.Color("[PASS]", output.Green), plansDir)
	}

	errs := cfg.Validate()

	cmd.Println()
	for _, e := range errs {
		cmd.Printf("  %s %s\n", output.Color("[FAIL]", output.Red), e)
	}
	for _, w := range warnings {
		cmd.Printf("  %s %s\n", output.Color("[WARN]", output.Yellow), w)
	}
	cmd.Println()

	switch {
	case len(errs) > 0:
		cmd.Printf("Status: %s\n", output.Color("INVALID", output.Red))
		return NewExitError(1, "configuration validation failed")
	case len(warnings) > 0:
		cmd.Printf("Status: %s\n", output.Color("VALID (with warnings)", output.Yellow))
	default:
		cmd.Printf("Status: %s\n", output.Color("VALID", output.Green))
	}
	return nil
}

func displayConfigTerminal(cmd *cobra.Command, cfg *config.Config, cwd string) error {
	cmd.Println(output.Header("Rocket Configuration", 60))
	cmd.Println()

	configPath, err := configSource(cwd)
	if err != nil {
		configPath = "(defaults)"
	}

	cmd.Println("Paths:")
	cmd.Printf("  Config file: %s\n", configPath)
	cmd.Printf("  Plans dir:   %s\n", cfg.PlansPath(cwd))
	cmd.Println()

	cmd.Println("Logging:")
	cmd.Printf("  Level:  %s\n", cfg.Rocket.LogLevel)
	cmd.Printf("  Format: %s\n", cfg.Rocket.LogFormat)
	cmd.Println()

	cmd.Println("Flights:")
	cmd.Printf("  Output:          %s\n", cfg.Rocket.Output)
	cmd.Printf("  Color:           %v\n", cfg.Rocket.Color)
	cmd.Printf("  Halt on failure: %v\n", cfg.Rocket.HaltOnFailure)

	return nil
}

// configSource returns the config file in effect.
func configSource(cwd string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.FindConfig(cwd)
}
