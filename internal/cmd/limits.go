package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/orbitkit/rocket-go/internal/output"
	"github.com/orbitkit/rocket-go/pkg/rocket"
	"github.com/spf13/cobra"
)

var limitsJSON bool

// Limits describes the fixed rocket parameters.
type Limits struct {
	MaxFuelLevel float64  `json:"max_fuel_level"`
	FuelToLaunch float64  `json:"fuel_to_launch"`
	Statuses     []string `json:"statuses"`
	Initial      string   `json:"initial_status"`
}

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show rocket fuel limits and statuses",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := loadConfig(); err != nil {
			return err
		}

		limits := Limits{
			MaxFuelLevel: rocket.MaxFuelLevel,
			FuelToLaunch: rocket.FuelToLaunch,
			Initial:      rocket.New().Status().String(),
		}
		for _, s := range rocket.AllStatuses() {
			limits.Statuses = append(limits.Statuses, s.String())
		}

		if limitsJSON {
			data, err := json.MarshalIndent(limits, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal limits: %w", err)
			}
			cmd.Println(string(data))
			return nil
		}

		cmd.Println(output.Header("Rocket Limits", 60))
		cmd.Println()
		cmd.Printf("  Tank capacity:  %.0f\n", limits.MaxFuelLevel)
		cmd.Printf("  Launch burn:    %.0f (minimum fuel to launch)\n", limits.FuelToLaunch)
		cmd.Printf("  Initial status: %s\n", limits.Initial)
		cmd.Println()
		cmd.Println("Statuses:")
		for _, s := range rocket.AllStatuses() {
			note := ""
			if s.IsTerminal() {
				note = " (terminal)"
			}
			cmd.Printf("  %s %s%s\n", output.StatusIcon(s.String()), s, note)
		}
		return nil
	},
}

func init() {
	limitsCmd.Flags().BoolVar(&limitsJSON, "json", false, "output as JSON")
}
