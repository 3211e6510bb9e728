// Package mission runs flight plans against a fresh rocket.
package mission

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op is an operation a flight plan can perform.
type Op string

const (
	OpRefuel Op = "refuel"
	OpLaunch Op = "launch"
	OpStatus Op = "status"
	OpFuel   Op = "fuel"
)

// AllOps returns all valid operations.
func AllOps() []Op {
	return []Op{OpRefuel, OpLaunch, OpStatus, OpFuel}
}

// Step is a single operation in a flight plan.
type Step struct {
	Op     Op
	Amount float64
}

// ParseStep parses "launch", "status", "fuel", "refuel:<amount>" or
// "refuel=<amount>".
func ParseStep(s string) (Step, error) {
	raw := strings.TrimSpace(s)
	name, arg, hasArg := cutAny(raw, ":=")
	op := Op(strings.ToLower(strings.TrimSpace(name)))

	switch op {
	case OpRefuel:
		if !hasArg || strings.TrimSpace(arg) == "" {
			return Step{}, fmt.Errorf("step %q: refuel requires an amount", s)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return Step{}, fmt.Errorf("step %q: invalid amount: %w", s, err)
		}
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return Step{}, fmt.Errorf("step %q: amount must be finite", s)
		}
		return Step{Op: OpRefuel, Amount: amount}, nil
	case OpLaunch, OpStatus, OpFuel:
		if hasArg {
			return Step{}, fmt.Errorf("step %q: %s takes no argument", s, op)
		}
		return Step{Op: op}, nil
	default:
		return Step{}, fmt.Errorf("step %q: unknown operation", s)
	}
}

// String returns the step in the form accepted by ParseStep.
func (s Step) String() string {
	if s.Op == OpRefuel {
		return fmt.Sprintf("refuel:%s", strconv.FormatFloat(s.Amount, 'f', -1, 64))
	}
	return string(s.Op)
}

// MarshalYAML encodes the step as its string form.
func (s Step) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a step from its string form.
func (s *Step) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	step, err := ParseStep(raw)
	if err != nil {
		return err
	}
	*s = step
	return nil
}

// MarshalText encodes the step for JSON output.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func cutAny(s, seps string) (before, after string, found bool) {
	if i := strings.IndexAny(s, seps); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
