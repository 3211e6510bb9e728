package mission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		input   string
		want    Step
		wantErr bool
	}{
		{"launch", Step{Op: OpLaunch}, false},
		{"LAUNCH", Step{Op: OpLaunch}, false},
		{"  status ", Step{Op: OpStatus}, false},
		{"fuel", Step{Op: OpFuel}, false},
		{"refuel:150", Step{Op: OpRefuel, Amount: 150}, false},
		{"refuel=12.5", Step{Op: OpRefuel, Amount: 12.5}, false},
		{"Refuel: -10", Step{Op: OpRefuel, Amount: -10}, false},
		{"refuel:1e3", Step{Op: OpRefuel, Amount: 1000}, false},
		{"refuel", Step{}, true},
		{"refuel:", Step{}, true},
		{"refuel:lots", Step{}, true},
		{"refuel:NaN", Step{}, true},
		{"refuel:+Inf", Step{}, true},
		{"launch:now", Step{}, true},
		{"land", Step{}, true},
		{"", Step{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStep(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "launch", Step{Op: OpLaunch}.String())
	assert.Equal(t, "refuel:150", Step{Op: OpRefuel, Amount: 150}.String())
	assert.Equal(t, "refuel:0.25", Step{Op: OpRefuel, Amount: 0.25}.String())
}

func TestAllOpsParse(t *testing.T) {
	for _, op := range AllOps() {
		input := string(op)
		if op == OpRefuel {
			input += ":1"
		}
		step, err := ParseStep(input)
		require.NoError(t, err, input)
		assert.Equal(t, op, step.Op)
	}
}

// FuzzParseStep ensures arbitrary input never panics and that every
// accepted step survives a String/ParseStep round trip.
func FuzzParseStep(f *testing.F) {
	f.Add("launch")
	f.Add("refuel:150")
	f.Add("refuel=-0.5")
	f.Add("refuel:")
	f.Add("refuel:1:2")
	f.Add("status=")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, input string) {
		step, err := ParseStep(input)
		if err != nil {
			return
		}
		again, err := ParseStep(step.String())
		if err != nil {
			t.Fatalf("ParseStep(%q) failed on round trip of %q: %v", step.String(), input, err)
		}
		if again != step {
			t.Fatalf("round trip of %q: got %+v, want %+v", input, again, step)
		}
	})
}
