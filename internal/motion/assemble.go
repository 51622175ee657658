package motion

import (
	"fmt"

	"github.com/banshee-data/motion.report/internal/units"
)

// Assemble runs the full pipeline for one parameter set: trajectory
// generation, travel-to-filament conversion, axis smoothing, and
// differentiation into velocity and acceleration.
//
// A zero-distance move yields a single at-rest sample and is not an error.
func Assemble(p Params) (*Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	dt := p.Dt()

	if p.Distance == 0 {
		return &Profile{
			Dt:           dt,
			Position:     []float64{0},
			Velocity:     []float64{0},
			Acceleration: []float64{0},
		}, nil
	}

	// Bound the allocation before generating anything; smoothing adds at
	// most a couple of smoothTime windows on top of the move itself.
	pt := SolvePhases(p.Distance, p.Rate, p.Accel, 0, 0)
	estimate := (pt.Total()+2*p.SmoothTime)/dt + trailingRepeat + 1
	if estimate > MaxProfileSamples {
		return nil, fmt.Errorf("%w: move needs ~%.0f samples (max %d); lower the sample rate or shorten the move",
			ErrProfileTooLarge, estimate, MaxProfileSamples)
	}

	var travel []float64
	var err error
	switch p.Trajectory {
	case Trapezoid:
		travel, err = GenerateTrapezoid(p.Distance, p.Rate, p.Accel, dt)
	case Sextic:
		travel, err = GenerateSextic(p.Distance, p.Rate, p.Accel, p.AccelOvershoot, dt)
	default:
		return nil, fmt.Errorf("%w: unknown trajectory kind %d", ErrInvalidParameter, int(p.Trajectory))
	}
	if err != nil {
		return nil, err
	}

	// Travel mm -> filament mm.
	factor := units.FilamentPerTravel(p.LineWidth, p.LayerHeight)
	pos := make([]float64, len(travel))
	for i, s := range travel {
		pos[i] = s * factor
	}

	pos = Smooth(NewFilterState(p.SmoothOrder), pos, p.SmoothTime, dt)
	vel := Differentiate(pos, dt)
	acc := Differentiate(vel, dt)

	return &Profile{Dt: dt, Position: pos, Velocity: vel, Acceleration: acc}, nil
}
