package motion

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Profile is an assembled trajectory: three parallel sample sequences at
// uniform timestep Dt. Position is in mm of filament, velocity in mm/s,
// acceleration in mm/s². Consumers must treat a Profile as read-only and
// must not assume any particular length across calls.
type Profile struct {
	Dt           float64
	Position     []float64
	Velocity     []float64
	Acceleration []float64
}

// Len returns the number of samples per trace.
func (p *Profile) Len() int { return len(p.Position) }

// Duration returns the time span covered by the profile.
func (p *Profile) Duration() float64 {
	if p.Len() == 0 {
		return 0
	}
	return float64(p.Len()-1) * p.Dt
}

// Times returns the sample timestamps, mainly for plotting.
func (p *Profile) Times() []float64 {
	ts := make([]float64, p.Len())
	for i := range ts {
		ts[i] = float64(i) * p.Dt
	}
	return ts
}

// Clone returns a deep copy.
func (p *Profile) Clone() *Profile {
	out := &Profile{
		Dt:           p.Dt,
		Position:     make([]float64, len(p.Position)),
		Velocity:     make([]float64, len(p.Velocity)),
		Acceleration: make([]float64, len(p.Acceleration)),
	}
	copy(out.Position, p.Position)
	copy(out.Velocity, p.Velocity)
	copy(out.Acceleration, p.Acceleration)
	return out
}

// TraceStats summarizes one trace for the renderer's numeric readouts.
type TraceStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Summary carries per-trace stats plus the profile dimensions.
type Summary struct {
	Samples      int        `json:"samples"`
	Duration     float64    `json:"duration_s"`
	Position     TraceStats `json:"position"`
	Velocity     TraceStats `json:"velocity"`
	Acceleration TraceStats `json:"acceleration"`
}

func traceStats(xs []float64) TraceStats {
	if len(xs) == 0 {
		return TraceStats{}
	}
	return TraceStats{
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
		Mean: stat.Mean(xs, nil),
	}
}

// Summarize computes per-trace min/max/mean.
func (p *Profile) Summarize() Summary {
	return Summary{
		Samples:      p.Len(),
		Duration:     p.Duration(),
		Position:     traceStats(p.Position),
		Velocity:     traceStats(p.Velocity),
		Acceleration: traceStats(p.Acceleration),
	}
}
