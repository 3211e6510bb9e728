package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitkit/rocket-go/internal/config"
	"github.com/orbitkit/rocket-go/internal/mission"
	"github.com/orbitkit/rocket-go/pkg/rocket"
)

// RocketOption configures a test rocket.
type RocketOption func(t *testing.T, r *rocket.Rocket)

// NewTestRocket creates a rocket and applies opts in order.
func NewTestRocket(t *testing.T, opts ...RocketOption) *rocket.Rocket {
	t.Helper()

	r := rocket.New()
	for _, opt := range opts {
		opt(t, r)
	}
	return r
}

// WithFuel refuels the rocket, failing the test on error.
func WithFuel(amount float64) RocketOption {
	return func(t *testing.T, r *rocket.Rocket) {
		t.Helper()
		if err := r.Refuel(amount); err != nil {
			t.Fatalf("refuel %v: %v", amount, err)
		}
	}
}

// InSpace refuels enough to launch with extra fuel left and launches.
func InSpace(extra float64) RocketOption {
	return func(t *testing.T, r *rocket.Rocket) {
		t.Helper()
		WithFuel(rocket.FuelToLaunch+extra)(t, r)
		if ok, err := r.Launch(); err != nil || !ok {
			t.Fatalf("launch: ok=%v err=%v", ok, err)
		}
	}
}

// Damaged overflows the tank so the rocket ends up DAMAGED.
func Damaged() RocketOption {
	return func(t *testing.T, r *rocket.Rocket) {
		t.Helper()
		if err := r.Refuel(rocket.MaxFuelLevel + 1); err == nil {
			t.Fatal("expected overflow while damaging test rocket")
		}
	}
}

// NewTestPlan builds a plan from step strings, failing the test on error.
func NewTestPlan(t *testing.T, name string, halt bool, steps ...string) *mission.Plan {
	t.Helper()

	plan, err := mission.PlanFromArgs(name, steps, halt)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	return plan
}

// FixedID returns a deterministic mission ID for golden output.
func FixedID(n int) string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
}

// RunTestPlan runs plan with a discarding logger and replaces the report
// ID with FixedID(id).
func RunTestPlan(t *testing.T, plan *mission.Plan, id int) *mission.Report {
	t.Helper()

	report, err := mission.Run(context.Background(), plan, hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("run plan: %v", err)
	}
	report.ID = FixedID(id)
	return report
}

// WritePlanFile writes a YAML plan under dir and returns its path.
func WritePlanFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create plan dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write plan: %v", err)
	}
	return path
}

// NewTestProject creates a temp directory with a .rocket/config.yaml
// built from cfg (defaults when nil) and returns the directory.
func NewTestProject(t *testing.T, cfg *config.Config) string {
	t.Helper()

	dir := t.TempDir()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Save(filepath.Join(dir, ".rocket", "config.yaml")); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	return dir
}
