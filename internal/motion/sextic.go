package motion

import "fmt"

// The sextic law replaces the constant-acceleration outer phases with a
// 6th-degree polynomial in the normalized phase parameter u = t/Ts. A
// quintic baseline pins position and velocity at both phase boundaries; a
// boundary-preserving correction term c6*K(u), K(u) = u³(1-u)³, is then added
// and c6 solved so the mid-phase acceleration hits a requested multiple of
// the nominal acceleration. K and its first two derivatives vanish at u=0
// and u=1, so the boundary conditions survive the correction.

// kMidAccel is the second derivative of K(u) = u³(1-u)³ at u = 0.5:
// 6u(1-u)³ - 18u²(1-u)² + 6u³(1-u) evaluates to 0.375 - 1.125 + 0.375.
const kMidAccel = -0.375

// sexticPhase holds the solved coefficients for one accel or decel phase.
type sexticPhase struct {
	s0, v0, ts     float64
	c3, c4, c5, c6 float64
}

// solveSexticPhase fits one phase from (s0, v0) to (s1, v1) over duration ts
// such that the normalized mid-phase acceleration equals targetAccel (in
// mm/s²; pass a negative target for the decel phase).
func solveSexticPhase(s0, s1, v0, v1, ts, targetAccel float64) sexticPhase {
	if ts <= 0 {
		return sexticPhase{s0: s0, v0: v0}
	}

	dp := s1 - s0 - v0*ts
	dv := (v1 - v0) * ts

	c3 := 10*dp - 4*dv
	c4 := -15*dp + 7*dv
	c5 := 6*dp - 3*dv

	// Quintic normalized acceleration at u=0.5: s5''(0.5) = 3c3 + 3c4 + 2.5c5.
	quinticMid := 3*c3 + 3*c4 + 2.5*c5
	c6 := (targetAccel*ts*ts - quinticMid) / kMidAccel

	return sexticPhase{s0: s0, v0: v0, ts: ts, c3: c3, c4: c4, c5: c5, c6: c6}
}

// position evaluates the phase at elapsed time t within the phase.
func (ph sexticPhase) position(t float64) float64 {
	if ph.ts <= 0 {
		return ph.s0
	}
	u := t / ph.ts
	u2 := u * u
	u3 := u2 * u
	w := 1 - u
	k := u3 * w * w * w
	return ph.s0 + ph.v0*ph.ts*u + ph.c3*u3 + ph.c4*u3*u + ph.c5*u3*u2 + ph.c6*k
}

// GenerateSextic samples the sextic position law. Phase timing and boundary
// speeds are identical to the trapezoidal solve; only the in-phase shape
// changes. overshoot scales the mid-phase acceleration target relative to
// the nominal acceleration (negated for the decel phase).
func GenerateSextic(distance, rate, accel, overshoot, dt float64) ([]float64, error) {
	if err := checkGeneratorArgs(distance, rate, accel, dt); err != nil {
		return nil, err
	}
	if overshoot <= 0 {
		return nil, fmt.Errorf("%w: acceleration overshoot must be > 0, got %g", ErrInvalidParameter, overshoot)
	}
	if distance == 0 {
		return []float64{0}, nil
	}

	pt := SolvePhases(distance, rate, accel, 0, 0)

	s1 := pt.StartV*pt.AccelT + 0.5*accel*pt.AccelT*pt.AccelT
	s2 := s1 + pt.CruiseV*pt.CruiseT
	total := pt.Total()

	accelPhase := solveSexticPhase(0, s1, pt.StartV, pt.CruiseV, pt.AccelT, overshoot*accel)
	decelPhase := solveSexticPhase(s2, distance, pt.CruiseV, pt.EndV, pt.DecelT, -overshoot*accel)

	law := func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t < pt.AccelT:
			return accelPhase.position(t)
		case t < pt.AccelT+pt.CruiseT:
			return s1 + pt.CruiseV*(t-pt.AccelT)
		case t < total:
			return decelPhase.position(t - pt.AccelT - pt.CruiseT)
		default:
			return distance
		}
	}
	return samplePositions(law, total, dt), nil
}
