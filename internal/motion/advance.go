package motion

import (
	"fmt"
	"math"
)

// AdvanceMode selects how the effective extruder motion is derived from an
// assembled profile. Two formulations exist in the upstream firmware change
// proposals; both are kept as named strategies rather than picking one.
type AdvanceMode int

const (
	// AdvanceLinear adds a velocity-proportional correction to position
	// (pos + k*vel) and re-differentiates. This is the classic linear
	// advance formulation and the default.
	AdvanceLinear AdvanceMode = iota

	// AdvanceLag runs a single-pole exponential smoother with time constant
	// k over each trace independently, modelling nozzle/melt-zone lag.
	AdvanceLag
)

// String returns the config/CLI name of the advance mode.
func (m AdvanceMode) String() string {
	switch m {
	case AdvanceLinear:
		return "linear"
	case AdvanceLag:
		return "lag"
	default:
		return fmt.Sprintf("AdvanceMode(%d)", int(m))
	}
}

// ParseAdvanceMode parses a config/CLI advance mode name.
func ParseAdvanceMode(s string) (AdvanceMode, error) {
	switch s {
	case "linear":
		return AdvanceLinear, nil
	case "lag":
		return AdvanceLag, nil
	default:
		return 0, fmt.Errorf("%w: unknown advance mode %q (want linear or lag)", ErrInvalidParameter, s)
	}
}

// WithAdvance derives the effective extruder profile from an assembled one.
// It is a pure function: the input profile is never mutated, and k <= 0
// returns an unmodified copy.
func WithAdvance(p *Profile, mode AdvanceMode, k float64) *Profile {
	if k <= 0 || p.Len() == 0 {
		return p.Clone()
	}
	switch mode {
	case AdvanceLag:
		return advanceLag(p, k)
	default:
		return advanceLinear(p, k)
	}
}

func advanceLinear(p *Profile, k float64) *Profile {
	pos := make([]float64, p.Len())
	for i := range pos {
		pos[i] = p.Position[i] + k*p.Velocity[i]
	}
	vel := Differentiate(pos, p.Dt)
	acc := Differentiate(vel, p.Dt)
	return &Profile{Dt: p.Dt, Position: pos, Velocity: vel, Acceleration: acc}
}

func advanceLag(p *Profile, tau float64) *Profile {
	alpha := 1 - math.Exp(-p.Dt/tau)
	lag := func(in []float64) []float64 {
		out := make([]float64, len(in))
		var y float64
		for i, x := range in {
			y += alpha * (x - y)
			out[i] = y
		}
		return out
	}
	return &Profile{
		Dt:           p.Dt,
		Position:     lag(p.Position),
		Velocity:     lag(p.Velocity),
		Acceleration: lag(p.Acceleration),
	}
}
