package mission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is an ordered list of steps executed against one rocket.
type Plan struct {
	Name string `yaml:"name"`
	// HaltOnFailure stops the run at the first failed step.
	HaltOnFailure bool   `yaml:"halt_on_failure"`
	Steps         []Step `yaml:"steps"`
}

// PlanFromArgs builds a plan from command line step arguments.
func PlanFromArgs(name string, args []string, haltOnFailure bool) (*Plan, error) {
	plan := &Plan{Name: name, HaltOnFailure: haltOnFailure}
	for _, arg := range args {
		step, err := ParseStep(arg)
		if err != nil {
			return nil, err
		}
		plan.Steps = append(plan.Steps, step)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// ParsePlan decodes a YAML plan. haltOnFailure is used when the document
// does not set halt_on_failure.
func ParsePlan(data []byte, haltOnFailure bool) (*Plan, error) {
	plan := &Plan{HaltOnFailure: haltOnFailure}
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// LoadPlan reads a YAML plan from a file.
func LoadPlan(path string, haltOnFailure bool) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	plan, err := ParsePlan(data, haltOnFailure)
	if err != nil {
		return nil, err
	}
	if plan.Name == "" {
		plan.Name = path
	}
	return plan, nil
}

// Validate checks that the plan has something to do.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("plan %q has no steps", p.Name)
	}
	return nil
}
