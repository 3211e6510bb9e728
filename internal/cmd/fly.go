package cmd

import (
	"fmt"

	"github.com/orbitkit/rocket-go/internal/config"
	"github.com/orbitkit/rocket-go/internal/mission"
	"github.com/orbitkit/rocket-go/internal/output"
	"github.com/spf13/cobra"
)

var (
	flyPlan      string
	flyName      string
	flyFormat    string
	flyKeepGoing bool
)

var flyCmd = &cobra.Command{
	Use:   "fly [step...]",
	Short: "Run a flight plan against a fresh rocket",
	Long: `Run a flight plan against a fresh rocket and print a report.

Steps are given as arguments or loaded from a YAML plan with --plan:
  refuel:<amount>   add fuel (refuel=<amount> also works)
  launch            launch the rocket
  status            record the current status
  fuel              record the current fuel level

A bare --plan name is looked up as <plans_dir>/<name>.yaml.

Examples:
    rocket fly refuel:150 launch          # Reach orbit with 50 left
    rocket fly --keep-going launch status # Record every step after a failure
    rocket fly --plan maiden -o json      # Run .rocket/plans/maiden.yaml`,
	RunE: runFly,
}

func init() {
	flyCmd.Flags().StringVarP(&flyPlan, "plan", "p", "", "plan file or name in plans_dir")
	flyCmd.Flags().StringVar(&flyName, "name", "cli", "plan name for steps given as arguments")
	flyCmd.Flags().StringVarP(&flyFormat, "format", "o", "", "output format: terminal, json, yaml (default from config)")
	flyCmd.Flags().BoolVar(&flyKeepGoing, "keep-going", false, "run remaining steps after a failure")
}

func runFly(cmd *cobra.Command, args []string) error {
	cfg, cwd, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Rocket.Output
	if flyFormat != "" {
		format = flyFormat
	}
	if !config.IsValidOutput(format) {
		return NewExitError(1, fmt.Sprintf("invalid output format: %q", format))
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	plan, err := resolvePlan(cfg, cwd, args)
	if err != nil {
		return NewExitError(1, err.Error())
	}
	if flyKeepGoing {
		plan.HaltOnFailure = false
	}

	report, err := mission.Run(cmd.Context(), plan, logger)
	if err != nil {
		return fmt.Errorf("mission interrupted: %w", err)
	}

	if err := output.WriteReport(cmd.OutOrStdout(), report, format); err != nil {
		return err
	}

	if n := len(report.Failures()); n > 0 {
		return NewExitError(2, fmt.Sprintf("mission failed: %d step(s) failed", n))
	}
	return nil
}

func resolvePlan(cfg *config.Config, cwd string, args []string) (*mission.Plan, error) {
	switch {
	case flyPlan != "" && len(args) > 0:
		return nil, fmt.Errorf("use either --plan or step arguments, not both")
	case flyPlan != "":
		return mission.LoadPlan(cfg.PlanPath(cwd, flyPlan), cfg.Rocket.HaltOnFailure)
	case len(args) > 0:
		return mission.PlanFromArgs(flyName, args, cfg.Rocket.HaltOnFailure)
	default:
		return nil, fmt.Errorf("no steps given; pass steps like 'refuel:150 launch' or --plan")
	}
}
