package rocket

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRocket(t *testing.T) {
	r := New()

	assert.Equal(t, StatusOnGround, r.Status())
	assert.Equal(t, 0.0, r.FuelLevel())
}

func TestRefuel(t *testing.T) {
	r := New()

	require.NoError(t, r.Refuel(50))
	assert.Equal(t, 50.0, r.FuelLevel())
	assert.Equal(t, StatusOnGround, r.Status())

	require.NoError(t, r.Refuel(25.5))
	assert.Equal(t, 75.5, r.FuelLevel())
}

func TestRefuelToExactCapacity(t *testing.T) {
	r := New()

	require.NoError(t, r.Refuel(MaxFuelLevel))
	assert.Equal(t, MaxFuelLevel, r.FuelLevel())
	assert.Equal(t, StatusOnGround, r.Status())

	require.NoError(t, r.Refuel(0))
	assert.Equal(t, MaxFuelLevel, r.FuelLevel())
}

func TestRefuelNegative(t *testing.T) {
	r := New()

	err := r.Refuel(-10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "fuel amount must be positive", err.Error())
	assert.Equal(t, 0.0, r.FuelLevel())
	assert.Equal(t, StatusOnGround, r.Status())
}

func TestRefuelNegativeNeverOverflows(t *testing.T) {
	amounts := []float64{-0.001, -1, -999, -1000, -1e9, math.Inf(-1)}

	for _, fuel := range []float64{0, 500, MaxFuelLevel} {
		for _, amount := range amounts {
			r := New()
			require.NoError(t, r.Refuel(fuel))

			err := r.Refuel(amount)
			assert.ErrorIs(t, err, ErrInvalidArgument, "fuel=%v amount=%v", fuel, amount)
			assert.NotErrorIs(t, err, ErrOverflow)
			assert.Equal(t, fuel, r.FuelLevel())
			assert.Equal(t, StatusOnGround, r.Status())
		}
	}
}

func TestRefuelOverflow(t *testing.T) {
	r := New()

	err := r.Refuel(1001)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, "fuel tank damaged due to overflow", err.Error())
	assert.Equal(t, StatusDamaged, r.Status())
	assert.Equal(t, 0.0, r.FuelLevel(), "overflow must not add fuel")
}

func TestRefuelOverflowAfterPartialFill(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(900))

	err := r.Refuel(100.5)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, StatusDamaged, r.Status())
	assert.Equal(t, 900.0, r.FuelLevel())
}

func TestLaunchWithoutFuel(t *testing.T) {
	r := New()

	launched, err := r.Launch()
	require.Error(t, err)
	assert.False(t, launched)
	assert.ErrorIs(t, err, ErrLaunchFailure)
	assert.Equal(t, "launch catastrophe, insufficient fuel", err.Error())
	assert.Equal(t, StatusDamaged, r.Status())
	assert.Equal(t, 0.0, r.FuelLevel())
}

func TestLaunchJustBelowThreshold(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(99.9))

	_, err := r.Launch()
	assert.ErrorIs(t, err, ErrLaunchFailure)
	assert.Equal(t, StatusDamaged, r.Status())
}

func TestLaunchAtThreshold(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(FuelToLaunch))

	launched, err := r.Launch()
	require.NoError(t, err)
	assert.True(t, launched)
	assert.Equal(t, 0.0, r.FuelLevel())
	assert.Equal(t, StatusInSpace, r.Status())
}

func TestRefuelThenLaunch(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(150))

	launched, err := r.Launch()
	require.NoError(t, err)
	assert.True(t, launched)
	assert.Equal(t, 50.0, r.FuelLevel())
	assert.Equal(t, StatusInSpace, r.Status())
}

// A second launch from orbit with less than FuelToLaunch left destroys the
// rocket because the fuel check runs before the status check.
func TestSecondLaunchWithLowFuelDamages(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(150))
	_, err := r.Launch()
	require.NoError(t, err)

	launched, err := r.Launch()
	assert.False(t, launched)
	assert.ErrorIs(t, err, ErrLaunchFailure)
	assert.Equal(t, StatusDamaged, r.Status())
	assert.Equal(t, 50.0, r.FuelLevel())
}

func TestSecondLaunchWithFuelReturnsFalse(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(500))
	_, err := r.Launch()
	require.NoError(t, err)

	launched, err := r.Launch()
	require.NoError(t, err)
	assert.False(t, launched)
	assert.Equal(t, StatusInSpace, r.Status())
	assert.Equal(t, 400.0, r.FuelLevel())
}

func TestDamagedIsTerminal(t *testing.T) {
	r := New()
	_, err := r.Launch()
	require.Error(t, err)
	require.Equal(t, StatusDamaged, r.Status())

	require.NoError(t, r.Refuel(200))
	assert.Equal(t, StatusDamaged, r.Status())

	launched, err := r.Launch()
	require.NoError(t, err)
	assert.False(t, launched)
	assert.Equal(t, StatusDamaged, r.Status())
	assert.Equal(t, 200.0, r.FuelLevel())

	_ = r.Refuel(5000)
	assert.Equal(t, StatusDamaged, r.Status())
}

func TestAccessorsDoNotMutate(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(120))

	for i := 0; i < 5; i++ {
		assert.Equal(t, StatusOnGround, r.Status())
		assert.Equal(t, 120.0, r.FuelLevel())
		_ = r.Snapshot()
	}
}

func TestSnapshot(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(250))

	snap := r.Snapshot()
	assert.Equal(t, Snapshot{Status: StatusOnGround, FuelLevel: 250, FuelPercent: 25}, snap)
}

func TestErrorDetails(t *testing.T) {
	r := New()
	require.NoError(t, r.Refuel(40))

	err := r.Refuel(2000)
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, KindOverflow, rerr.Kind)
	assert.Equal(t, "refuel", rerr.Op)
	assert.Equal(t, 40.0, rerr.FuelLevel)
	assert.Equal(t, 2000.0, rerr.Amount)
	assert.Contains(t, rerr.Detail(), "amount 2000.0")

	_, err = r.Launch()
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "launch", rerr.Op)
	assert.Contains(t, rerr.Detail(), "need 100.0")
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"launch", &Error{Kind: KindLaunchFailure}, KindLaunchFailure},
		{"overflow", &Error{Kind: KindOverflow}, KindOverflow},
		{"invalid", &Error{Kind: KindInvalidArgument}, KindInvalidArgument},
		{"wrapped", errors.Join(errors.New("step 2"), ErrOverflow), KindOverflow},
		{"foreign", errors.New("boom"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestSentinelsDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrOverflow, ErrLaunchFailure)
	assert.NotErrorIs(t, ErrInvalidArgument, ErrOverflow)
	assert.ErrorIs(t, &Error{Kind: KindLaunchFailure, Op: "launch"}, ErrLaunchFailure)
}
