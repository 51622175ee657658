package motion

import (
	"fmt"
	"math"
)

// trailingRepeat is the number of times the final sample is repeated so that
// downstream backward differencing and the smoothing filter's tail padding
// always have defined neighbors.
const trailingRepeat = 3

// positionLaw evaluates position at elapsed time t. Implementations must
// clamp t past the end of the move to the final position.
type positionLaw func(t float64) float64

// samplePositions samples pos on [0, total] at step dt. The last regular
// sample lands at or past total (over-run by at most one step), then the
// final value is repeated trailingRepeat more times.
func samplePositions(pos positionLaw, total, dt float64) []float64 {
	n := int(math.Ceil(total/dt)) + 1
	out := make([]float64, 0, n+trailingRepeat)
	for i := 0; i < n; i++ {
		out = append(out, pos(float64(i)*dt))
	}
	last := out[len(out)-1]
	for i := 0; i < trailingRepeat; i++ {
		out = append(out, last)
	}
	return out
}

// checkGeneratorArgs enforces the shared caller contract of both trajectory
// generators.
func checkGeneratorArgs(distance, rate, accel, dt float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: rate must be > 0, got %g", ErrInvalidParameter, rate)
	}
	if accel <= 0 {
		return fmt.Errorf("%w: acceleration must be > 0, got %g", ErrInvalidParameter, accel)
	}
	if distance < 0 {
		return fmt.Errorf("%w: distance must be >= 0, got %g", ErrInvalidParameter, distance)
	}
	if dt <= 0 {
		return fmt.Errorf("%w: dt must be > 0, got %g", ErrInvalidParameter, dt)
	}
	return nil
}
