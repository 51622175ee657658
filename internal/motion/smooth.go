package motion

import "math"

// filterEpsilon is the smoothing time below which the filter is a straight
// pass-through, in seconds.
const filterEpsilon = 1e-3

// FilterState holds the per-stage accumulators of the cascaded low-pass
// filter, one entry per stage. The caller owns the state and passes a fresh
// zero state for each full profile computation; nothing persists between
// unrelated moves.
type FilterState []float64

// NewFilterState allocates a zeroed state for the given number of stages.
func NewFilterState(order int) FilterState {
	return make(FilterState, order)
}

// Smooth runs a cascade of single-pole low-pass stages over samples and
// returns a new slice; the input is never mutated. All stages share the gain
// alpha = 1 - exp(-dt*order/smoothTime), so the cascade's overall settling
// time stays near smoothTime as the order grows.
//
// Padding/trim policy: the final input value is appended ceil(2*delay) times
// (delay = smoothTime/dt) so the output settles to the true final value
// instead of truncating mid-transient, then round(delay) leading samples are
// trimmed to cancel the cascade's group delay and keep the output aligned
// with the input time axis. The no-trim variant with a plain round of the
// pad is deliberately not implemented; output length is
// len(samples) + ceil(2*delay) - round(delay).
//
// A smoothTime at or below filterEpsilon disables filtering and returns a
// copy of the input unchanged.
func Smooth(state FilterState, samples []float64, smoothTime, dt float64) []float64 {
	if smoothTime <= filterEpsilon || len(state) == 0 || len(samples) == 0 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out
	}

	order := len(state)
	alpha := 1 - math.Exp(-dt*float64(order)/smoothTime)

	delay := smoothTime / dt
	pad := int(math.Ceil(2 * delay))
	trim := int(math.Round(delay))

	last := samples[len(samples)-1]
	out := make([]float64, 0, len(samples)+pad-trim)
	for i := 0; i < len(samples)+pad; i++ {
		x := last
		if i < len(samples) {
			x = samples[i]
		}
		// Each stage moves toward the previous stage's output; the first
		// stage moves toward the raw input.
		for s := range state {
			state[s] += alpha * (x - state[s])
			x = state[s]
		}
		if i >= trim {
			out = append(out, x)
		}
	}
	return out
}
