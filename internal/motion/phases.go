package motion

import "math"

// PhaseTimings is the accelerate/cruise/decelerate split of one move. Both
// trajectory laws share this solve; only the position law within each phase
// differs.
type PhaseTimings struct {
	AccelT  float64 // accel phase duration, s
	CruiseT float64 // cruise phase duration, s (0 for short moves)
	DecelT  float64 // decel phase duration, s

	// CruiseV is the achieved nominal speed. It equals the requested rate
	// unless the move is too short to reach it, in which case the profile
	// degenerates to a triangle and CruiseV drops below the request.
	CruiseV float64

	StartV float64
	EndV   float64
}

// Total returns the full move duration.
func (pt PhaseTimings) Total() float64 {
	return pt.AccelT + pt.CruiseT + pt.DecelT
}

// SolvePhases computes the phase durations for a move of the given length.
// startV and endV are the boundary speeds (both 0 for the isolated moves this
// simulator generates, but the solve keeps the general form).
//
// When the analytic cruise time comes out negative the distance is too short
// for the requested rate: the cruise phase is clamped to zero and the peak
// speed recomputed for a pure triangular profile.
func SolvePhases(distance, rate, accel, startV, endV float64) PhaseTimings {
	invA := 1 / accel
	ldiff := distance + 0.5*invA*(startV*startV+endV*endV)

	v := rate
	cruiseT := ldiff/v - invA*v
	if cruiseT < 0 {
		cruiseT = 0
		v = math.Sqrt(ldiff * accel)
	}

	return PhaseTimings{
		AccelT:  (v - startV) * invA,
		CruiseT: cruiseT,
		DecelT:  (v - endV) * invA,
		CruiseV: v,
		StartV:  startV,
		EndV:    endV,
	}
}
