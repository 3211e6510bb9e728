package rocket

import (
	"errors"
	"fmt"
)

// Kind classifies a rocket failure.
type Kind int

const (
	// KindLaunchFailure means a launch was attempted with insufficient fuel.
	KindLaunchFailure Kind = iota + 1
	// KindOverflow means a refuel would have exceeded MaxFuelLevel.
	KindOverflow
	// KindInvalidArgument means a refuel amount was negative.
	KindInvalidArgument
)

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindLaunchFailure:
		return "launch_failure"
	case KindOverflow:
		return "overflow"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

func (k Kind) message() string {
	switch k {
	case KindLaunchFailure:
		return "launch catastrophe, insufficient fuel"
	case KindOverflow:
		return "fuel tank damaged due to overflow"
	case KindInvalidArgument:
		return "fuel amount must be positive"
	default:
		return "rocket failure"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrLaunchFailure   = &Error{Kind: KindLaunchFailure}
	ErrOverflow        = &Error{Kind: KindOverflow}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
)

// Error is returned by Launch and Refuel.
type Error struct {
	Kind Kind
	// Op is the operation that failed ("launch" or "refuel").
	Op string
	// FuelLevel is the fuel level at the time of the call.
	FuelLevel float64
	// Amount is the requested refuel amount; zero for launch.
	Amount float64
}

func (e *Error) Error() string {
	return e.Kind.message()
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Detail returns the message along with the fuel figures that caused it.
func (e *Error) Detail() string {
	if e.Op == "refuel" {
		return fmt.Sprintf("%s: %s (fuel %.1f, amount %.1f)", e.Op, e.Error(), e.FuelLevel, e.Amount)
	}
	return fmt.Sprintf("%s: %s (fuel %.1f, need %.1f)", e.Op, e.Error(), e.FuelLevel, FuelToLaunch)
}

// KindOf returns the Kind of err, or 0 if err is not a rocket error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
