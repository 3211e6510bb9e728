package mission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePlan(t *testing.T) {
	data := []byte(`
name: maiden-voyage
halt_on_failure: false
steps:
  - refuel:150
  - launch
  - status
`)
	plan, err := ParsePlan(data, true)
	require.NoError(t, err)

	assert.Equal(t, "maiden-voyage", plan.Name)
	assert.False(t, plan.HaltOnFailure)
	assert.Equal(t, []Step{
		{Op: OpRefuel, Amount: 150},
		{Op: OpLaunch},
		{Op: OpStatus},
	}, plan.Steps)
}

func TestParsePlanDefaultsHalt(t *testing.T) {
	plan, err := ParsePlan([]byte("steps: [launch]"), true)
	require.NoError(t, err)
	assert.True(t, plan.HaltOnFailure)
}

func TestParsePlanErrors(t *testing.T) {
	tests := map[string]string{
		"bad step":  "steps: [refuel]",
		"no steps":  "name: empty",
		"bad yaml":  "steps: [launch",
		"not a str": "steps: [{op: launch}]",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePlan([]byte(doc), true)
			assert.Error(t, err)
		})
	}
}

func TestLoadPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: [\"refuel:100\", launch]\n"), 0644))

	plan, err := LoadPlan(path, true)
	require.NoError(t, err)
	assert.Equal(t, path, plan.Name, "name defaults to the file path")
	assert.Len(t, plan.Steps, 2)

	_, err = LoadPlan(filepath.Join(dir, "missing.yaml"), true)
	assert.Error(t, err)
}

func TestPlanFromArgs(t *testing.T) {
	plan, err := PlanFromArgs("cli", []string{"refuel:150", "launch"}, true)
	require.NoError(t, err)
	assert.Equal(t, "cli", plan.Name)
	assert.Len(t, plan.Steps, 2)

	_, err = PlanFromArgs("cli", nil, true)
	assert.Error(t, err)

	_, err = PlanFromArgs("cli", []string{"launch", "orbit"}, true)
	assert.Error(t, err)
}

func TestPlanMarshalYAML(t *testing.T) {
	plan := &Plan{
		Name:          "round-trip",
		HaltOnFailure: true,
		Steps:         []Step{{Op: OpRefuel, Amount: 42.5}, {Op: OpLaunch}},
	}

	data, err := yaml.Marshal(plan)
	require.NoError(t, err)
	assert.Contains(t, string(data), "refuel:42.5")

	back, err := ParsePlan(data, false)
	require.NoError(t, err)
	assert.Equal(t, plan, back)
}
