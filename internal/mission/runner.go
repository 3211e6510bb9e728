package mission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/orbitkit/rocket-go/pkg/rocket"
)

// Result records the outcome of one step.
type Result struct {
	Index    int             `json:"index" yaml:"index"`
	Step     Step            `json:"step" yaml:"step"`
	Launched bool            `json:"launched,omitempty" yaml:"launched,omitempty"`
	Kind     string          `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Error    string          `json:"error,omitempty" yaml:"error,omitempty"`
	Before   rocket.Snapshot `json:"before" yaml:"before"`
	After    rocket.Snapshot `json:"after" yaml:"after"`
}

// Failed returns true if the step returned an error.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Report is the outcome of a plan run.
type Report struct {
	ID      string          `json:"id" yaml:"id"`
	Plan    string          `json:"plan" yaml:"plan"`
	Results []Result        `json:"results" yaml:"results"`
	Final   rocket.Snapshot `json:"final" yaml:"final"`
	// Halted is set when steps were skipped after a failure.
	Halted bool `json:"halted" yaml:"halted"`
}

// Failures returns the results of failed steps.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Failed() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Failed returns true if any step failed.
func (r *Report) Failed() bool {
	return len(r.Failures()) > 0
}

// Run executes the plan against a new rocket.
// It returns ctx.Err() if the context is cancelled between steps, along
// with the partial report.
func Run(ctx context.Context, plan *Plan, logger hclog.Logger) (*Report, error) {
	return RunOn(ctx, rocket.New(), plan, logger)
}

// RunOn executes the plan against r.
func RunOn(ctx context.Context, r *rocket.Rocket, plan *Plan, logger hclog.Logger) (*Report, error) {
	report := &Report{
		ID:   uuid.New().String(),
		Plan: plan.Name,
	}
	logger = logger.With("mission", report.ID)
	logger.Info("mission started", "plan", plan.Name, "steps", len(plan.Steps))

	for i, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			report.Final = r.Snapshot()
			return report, err
		}

		res := execute(r, i+1, step)
		report.Results = append(report.Results, res)

		if res.Failed() {
			logger.Warn("step failed", "index", res.Index, "step", step.String(),
				"kind", res.Kind, "error", res.Error, "status", res.After.Status)
			if plan.HaltOnFailure {
				report.Halted = i < len(plan.Steps)-1
				break
			}
			continue
		}
		logger.Debug("step executed", "index", res.Index, "step", step.String(),
			"status", res.After.Status, "fuel", res.After.FuelLevel)
	}

	report.Final = r.Snapshot()
	logger.Info("mission finished", "status", report.Final.Status,
		"fuel", report.Final.FuelLevel, "failures", len(report.Failures()))
	return report, nil
}

func execute(r *rocket.Rocket, index int, step Step) Result {
	res := Result{Index: index, Step: step, Before: r.Snapshot()}

	var err error
	switch step.Op {
	case OpRefuel:
		err = r.Refuel(step.Amount)
	case OpLaunch:
		res.Launched, err = r.Launch()
	case OpStatus, OpFuel:
		// read-only
	default:
		err = errors.New("unknown operation " + string(step.Op))
	}

	if err != nil {
		res.Error = err.Error()
		res.Kind = "unknown"
		if k := rocket.KindOf(err); k != 0 {
			res.Kind = k.String()
		}
	}
	res.After = r.Snapshot()
	return res
}
