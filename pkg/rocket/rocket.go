// Package rocket models a single rocket with fuel bookkeeping.
//
// A Rocket starts on the ground with an empty tank and is mutated only
// through Refuel and Launch:
//
//	r := rocket.New()
//	if err := r.Refuel(150); err != nil {
//	    return err
//	}
//	launched, err := r.Launch()
//
// Failed operations may leave the rocket DAMAGED, and nothing moves a
// rocket out of DAMAGED. A Rocket is not safe for concurrent use.
package rocket

const (
	// MaxFuelLevel is the tank capacity. Filling past it damages the rocket.
	MaxFuelLevel = 1000.0
	// FuelToLaunch is burned by a launch and is the minimum needed to attempt one.
	FuelToLaunch = 100.0
)

// Rocket holds status and fuel level.
type Rocket struct {
	status    Status
	fuelLevel float64
}

// Snapshot is a point-in-time copy of a rocket's state.
type Snapshot struct {
	Status      Status  `json:"status" yaml:"status"`
	FuelLevel   float64 `json:"fuel_level" yaml:"fuel_level"`
	FuelPercent float64 `json:"fuel_percent" yaml:"fuel_percent"`
}

// New returns a rocket on the ground with no fuel.
func New() *Rocket {
	return &Rocket{status: StatusOnGround}
}

// Launch attempts to put the rocket in space.
//
// The fuel check runs before the status check, so a rocket already in
// space (or damaged) with less than FuelToLaunch is damaged by the call.
// Launch returns false without mutation when the rocket has enough fuel
// but is not on the ground.
func (r *Rocket) Launch() (bool, error) {
	if r.fuelLevel < FuelToLaunch {
		fuel := r.fuelLevel
		r.status = StatusDamaged
		return false, &Error{Kind: KindLaunchFailure, Op: "launch", FuelLevel: fuel}
	}
	if r.status == StatusOnGround {
		r.fuelLevel -= FuelToLaunch
		r.status = StatusInSpace
		return true, nil
	}
	return false, nil
}

// Refuel adds amount to the tank.
//
// Overflow is checked first and damages the rocket. A negative amount
// can never overflow, so it always falls through to the invalid argument
// check and leaves the rocket untouched.
func (r *Rocket) Refuel(amount float64) error {
	if r.fuelLevel+amount > MaxFuelLevel {
		r.status = StatusDamaged
		return &Error{Kind: KindOverflow, Op: "refuel", FuelLevel: r.fuelLevel, Amount: amount}
	}
	if amount < 0 {
		return &Error{Kind: KindInvalidArgument, Op: "refuel", FuelLevel: r.fuelLevel, Amount: amount}
	}
	r.fuelLevel += amount
	return nil
}

// Status returns the current status.
func (r *Rocket) Status() Status {
	return r.status
}

// FuelLevel returns the current fuel level.
func (r *Rocket) FuelLevel() float64 {
	return r.fuelLevel
}

// Snapshot returns the current state.
func (r *Rocket) Snapshot() Snapshot {
	return Snapshot{
		Status:      r.status,
		FuelLevel:   r.fuelLevel,
		FuelPercent: r.fuelLevel * 100.0 / MaxFuelLevel,
	}
}
