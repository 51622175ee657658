package motion

// Differentiate returns the backward finite difference of samples at fixed
// timestep dt. The first element is 0 so the output stays parallel to the
// input. The input is never mutated.
func Differentiate(samples []float64, dt float64) []float64 {
	out := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		out[i] = (samples[i] - samples[i-1]) / dt
	}
	return out
}
