// Package motion implements the step-smoothing motion planner pipeline used
// for extruder simulation: a one-dimensional move is expanded into a
// time-sampled trajectory under a trapezoidal or sextic position law, the
// position trace is converted to filament length, run through a cascaded
// low-pass axis-smoothing filter, differentiated into velocity and
// acceleration, and optionally composited with a linear-advance correction.
//
// Every operation in this package is a pure function of its inputs: identical
// parameters always produce identical sample sequences, and no state is
// carried between moves.
package motion

import (
	"errors"
	"fmt"
)

// TrajectoryKind selects the position law used for the accel and decel
// phases of a move.
type TrajectoryKind int

const (
	// Trapezoid is the classic accelerate-cruise-decelerate law with
	// constant acceleration in the outer phases.
	Trapezoid TrajectoryKind = iota

	// Sextic uses a 6th-degree polynomial per accel/decel phase, giving a
	// continuous acceleration with a controllable mid-phase peak.
	Sextic
)

// String returns the config/CLI name of the trajectory kind.
func (k TrajectoryKind) String() string {
	switch k {
	case Trapezoid:
		return "trapezoid"
	case Sextic:
		return "sextic"
	default:
		return fmt.Sprintf("TrajectoryKind(%d)", int(k))
	}
}

// ParseTrajectoryKind parses a config/CLI trajectory name.
func ParseTrajectoryKind(s string) (TrajectoryKind, error) {
	switch s {
	case "trapezoid", "trapezoidal":
		return Trapezoid, nil
	case "sextic", "6poly":
		return Sextic, nil
	default:
		return 0, fmt.Errorf("%w: unknown trajectory %q (want trapezoid or sextic)", ErrInvalidParameter, s)
	}
}

var (
	// ErrInvalidParameter reports a parameter set rejected before any
	// generation runs. It is the only error surfaced to callers for bad
	// upstream configuration; recoverable, never a crash.
	ErrInvalidParameter = errors.New("invalid motion parameter")

	// ErrProfileTooLarge reports a move whose sample count would exceed
	// MaxProfileSamples, guarding against unbounded allocation when a
	// pathological sample rate meets a long move.
	ErrProfileTooLarge = errors.New("profile exceeds sample budget")
)

// MaxProfileSamples bounds the length of a single generated trace. At the
// usual 1kHz sample rate this is well over an hour of motion.
const MaxProfileSamples = 4 << 20

// Params describes one simulated move. It is treated as an immutable value:
// Assemble never modifies it and allocates fresh output per call.
type Params struct {
	Trajectory TrajectoryKind

	Distance float64 // travel distance, mm (>= 0)
	Rate     float64 // requested cruise rate, mm/s (> 0)
	Accel    float64 // nominal acceleration, mm/s² (> 0)

	// AccelOvershoot is the factor by which the sextic law's mid-phase
	// acceleration exceeds Accel. Ignored for Trapezoid.
	AccelOvershoot float64

	AdvanceK    float64 // linear-advance constant, s (>= 0)
	LineWidth   float64 // extruded line width, mm (> 0)
	LayerHeight float64 // layer height, mm (> 0)

	SampleRate  float64 // Hz (> 0)
	SmoothTime  float64 // axis smoothing time, s (>= 0)
	SmoothOrder int     // cascaded filter stages (>= 1)
}

// Dt returns the sample timestep.
func (p Params) Dt() float64 { return 1 / p.SampleRate }

// Validate rejects parameter sets before any generator runs. All other edge
// cases (zero distance, short moves, disabled smoothing) are resolved
// internally by the pipeline and are not errors.
func (p Params) Validate() error {
	if p.Trajectory != Trapezoid && p.Trajectory != Sextic {
		return fmt.Errorf("%w: unknown trajectory kind %d", ErrInvalidParameter, int(p.Trajectory))
	}
	if p.Distance < 0 {
		return fmt.Errorf("%w: distance must be >= 0, got %g", ErrInvalidParameter, p.Distance)
	}
	if p.Rate <= 0 {
		return fmt.Errorf("%w: rate must be > 0, got %g", ErrInvalidParameter, p.Rate)
	}
	if p.Accel <= 0 {
		return fmt.Errorf("%w: acceleration must be > 0, got %g", ErrInvalidParameter, p.Accel)
	}
	if p.Trajectory == Sextic && p.AccelOvershoot <= 0 {
		return fmt.Errorf("%w: acceleration overshoot must be > 0, got %g", ErrInvalidParameter, p.AccelOvershoot)
	}
	if p.AdvanceK < 0 {
		return fmt.Errorf("%w: advance constant must be >= 0, got %g", ErrInvalidParameter, p.AdvanceK)
	}
	if p.LineWidth <= 0 {
		return fmt.Errorf("%w: line width must be > 0, got %g", ErrInvalidParameter, p.LineWidth)
	}
	if p.LayerHeight <= 0 {
		return fmt.Errorf("%w: layer height must be > 0, got %g", ErrInvalidParameter, p.LayerHeight)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0, got %g", ErrInvalidParameter, p.SampleRate)
	}
	if p.SmoothTime < 0 {
		return fmt.Errorf("%w: smoothing time must be >= 0, got %g", ErrInvalidParameter, p.SmoothTime)
	}
	if p.SmoothOrder < 1 {
		return fmt.Errorf("%w: smoothing order must be >= 1, got %d", ErrInvalidParameter, p.SmoothOrder)
	}
	return nil
}
