package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/orbitkit/rocket-go/internal/mission"
	"github.com/orbitkit/rocket-go/pkg/rocket"
	"gopkg.in/yaml.v3"
)

const reportWidth = 60

// WriteReport writes a mission report in the given format: terminal, json or yaml.
func WriteReport(w io.Writer, report *mission.Report, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case "terminal", "":
		writeTerminalReport(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

func writeTerminalReport(w io.Writer, report *mission.Report) {
	fmt.Fprintln(w, Header("Flight Report: "+report.Plan, reportWidth))
	fmt.Fprintf(w, "Mission: %s\n\n", report.ID)

	table := NewTable("#", "Step", "Result", "Status", "Fuel")
	for _, res := range report.Results {
		status := string(res.After.Status)
		table.AddRow(
			strconv.Itoa(res.Index),
			res.Step.String(),
			stepOutcome(res),
			Color(status, StatusColor(status)),
			FormatFuel(res.After.FuelLevel, rocket.MaxFuelLevel),
		)
	}
	if table.Len() > 0 {
		fmt.Fprint(w, table.Render())
		fmt.Fprintln(w)
	}

	final := report.Final
	fmt.Fprintf(w, "Final: %s %s  %s %s\n",
		StatusIcon(string(final.Status)),
		Color(string(final.Status), StatusColor(string(final.Status))),
		FuelGauge(final.FuelLevel, rocket.MaxFuelLevel, rocket.FuelToLaunch, 20),
		FormatFuel(final.FuelLevel, rocket.MaxFuelLevel))

	failures := report.Failures()
	if len(failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failures:")
		for _, f := range failures {
			fmt.Fprintf(w, "  %s step %d (%s): %s\n", Checkmark(false), f.Index, f.Step, f.Error)
		}
	}
	if report.Halted {
		fmt.Fprintln(w, Color("Halted on failure; remaining steps skipped", Yellow))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "(%d steps, %d failed)\n", len(report.Results), len(failures))
}

func stepOutcome(res mission.Result) string {
	if res.Failed() {
		return Color("FAIL "+res.Kind, Red)
	}
	switch res.Step.Op {
	case mission.OpLaunch:
		if res.Launched {
			return Color("launched", Green)
		}
		return "not launched"
	case mission.OpStatus:
		return "status=" + string(res.After.Status)
	case mission.OpFuel:
		return "fuel=" + strconv.FormatFloat(res.After.FuelLevel, 'f', 1, 64)
	default:
		return "ok"
	}
}
