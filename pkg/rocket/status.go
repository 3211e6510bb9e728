package rocket

import (
	"fmt"
	"strings"
)

// Status represents where a rocket currently is in its lifecycle.
type Status string

const (
	StatusOnGround Status = "ON_GROUND"
	StatusInSpace  Status = "IN_SPACE"
	StatusDamaged  Status = "DAMAGED"
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusOnGround, StatusInSpace, StatusDamaged}
}

// ParseStatus parses a string into a Status, case-insensitive.
// Dashes and spaces are accepted in place of underscores.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch norm {
	case "ON_GROUND":
		return StatusOnGround, nil
	case "IN_SPACE":
		return StatusInSpace, nil
	case "DAMAGED":
		return StatusDamaged, nil
	default:
		return "", fmt.Errorf("invalid status: %q", s)
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true if no operation can move the rocket out of this status.
func (s Status) IsTerminal() bool {
	return s == StatusDamaged
}
