package motion

// GenerateTrapezoid samples the classic accelerate-cruise-decelerate position
// law for a move starting and ending at rest. Moves too short to reach the
// requested rate collapse to a triangular profile with a reduced peak speed.
//
// A zero distance yields a single at-rest sample.
func GenerateTrapezoid(distance, rate, accel, dt float64) ([]float64, error) {
	if err := checkGeneratorArgs(distance, rate, accel, dt); err != nil {
		return nil, err
	}
	if distance == 0 {
		return []float64{0}, nil
	}

	pt := SolvePhases(distance, rate, accel, 0, 0)
	return samplePositions(trapezoidLaw(pt, accel, distance), pt.Total(), dt), nil
}

// trapezoidLaw returns the constant-acceleration position law for the given
// phase timings.
func trapezoidLaw(pt PhaseTimings, accel, distance float64) positionLaw {
	// Boundary positions at the end of the accel and cruise phases.
	s1 := pt.StartV*pt.AccelT + 0.5*accel*pt.AccelT*pt.AccelT
	s2 := s1 + pt.CruiseV*pt.CruiseT
	total := pt.Total()

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t < pt.AccelT:
			return pt.StartV*t + 0.5*accel*t*t
		case t < pt.AccelT+pt.CruiseT:
			return s1 + pt.CruiseV*(t-pt.AccelT)
		case t < total:
			tau := t - pt.AccelT - pt.CruiseT
			return s2 + pt.CruiseV*tau - 0.5*accel*tau*tau
		default:
			return distance
		}
	}
}
