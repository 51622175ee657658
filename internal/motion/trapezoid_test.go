package motion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
)

func sampleTimes(n int, dt float64) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * dt
	}
	return ts
}

func TestGenerateTrapezoid_RestToRest(t *testing.T) {
	t.Parallel()

	const dt = 1e-3
	pos, err := GenerateTrapezoid(10, 50, 500, dt)
	require.NoError(t, err)
	require.NotEmpty(t, pos)

	vel := Differentiate(pos, dt)

	// Both endpoints at rest.
	assert.Zero(t, vel[0])
	assert.InDelta(t, 0, vel[len(vel)-1], 1e-9)

	// Monotone non-decreasing position ending at the commanded distance.
	for i := 1; i < len(pos); i++ {
		assert.GreaterOrEqual(t, pos[i], pos[i-1]-1e-12)
	}
	assert.InDelta(t, 10.0, pos[len(pos)-1], 1e-9)
}

func TestGenerateTrapezoid_VelocityIntegratesToDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                string
		distance, rate, acc float64
	}{
		{"long cruise", 40, 60, 1000},
		{"short triangular", 2, 50, 500},
		{"zero cruise boundary", 5, 50, 500},
		{"slow accel", 25, 80, 300},
	}

	const dt = 1e-3
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pos, err := GenerateTrapezoid(tc.distance, tc.rate, tc.acc, dt)
			require.NoError(t, err)

			vel := Differentiate(pos, dt)
			got := integrate.Trapezoidal(sampleTimes(len(vel), dt), vel)
			assert.InEpsilon(t, tc.distance, got, 1e-3)
		})
	}
}

func TestGenerateTrapezoid_ClassicScenario(t *testing.T) {
	t.Parallel()

	// 10mm, 50mm/s, 500mm/s² at 1kHz: T1 = T3 = 0.1s, peak velocity
	// 50mm/s first reached at t ≈ 0.1s.
	const dt = 1e-3
	pos, err := GenerateTrapezoid(10, 50, 500, dt)
	require.NoError(t, err)

	vel := Differentiate(pos, dt)

	peak := 0.0
	for _, v := range vel {
		if v > peak {
			peak = v
		}
	}
	assert.InDelta(t, 50.0, peak, 0.5)

	firstAtPeak := 0
	for i, v := range vel {
		if v > peak-0.5 {
			firstAtPeak = i
			break
		}
	}
	assert.InDelta(t, 0.1, float64(firstAtPeak)*dt, 2*dt)
}

func TestGenerateTrapezoid_TriangularFallback(t *testing.T) {
	t.Parallel()

	// Too short to cruise: the peak velocity must stay strictly below the
	// requested rate and no flat cruise segment may appear.
	const dt = 1e-4
	pos, err := GenerateTrapezoid(2, 50, 500, dt)
	require.NoError(t, err)

	vel := Differentiate(pos, dt)
	peak := 0.0
	for _, v := range vel {
		if v > peak {
			peak = v
		}
	}
	assert.Less(t, peak, 50.0)
	assert.InDelta(t, 31.6227766, peak, 0.1)

	pt := SolvePhases(2, 50, 500, 0, 0)
	assert.Zero(t, pt.CruiseT)
}

func TestGenerateTrapezoid_TrailingSamples(t *testing.T) {
	t.Parallel()

	const dt = 1e-3
	pos, err := GenerateTrapezoid(10, 50, 500, dt)
	require.NoError(t, err)

	// The final value is repeated so downstream differencing and filter
	// padding always have defined neighbors.
	require.GreaterOrEqual(t, len(pos), trailingRepeat+1)
	last := pos[len(pos)-1]
	for i := 0; i < trailingRepeat; i++ {
		assert.Equal(t, last, pos[len(pos)-1-i])
	}

	// The last regular sample lands at or past the move end, over-running
	// by at most one step.
	total := SolvePhases(10, 50, 500, 0, 0).Total()
	n := len(pos) - trailingRepeat
	assert.GreaterOrEqual(t, float64(n-1)*dt, total-1e-12)
	assert.Less(t, float64(n-1)*dt, total+dt)
}

func TestGenerateTrapezoid_DegenerateAndInvalid(t *testing.T) {
	t.Parallel()

	t.Run("zero distance", func(t *testing.T) {
		t.Parallel()
		pos, err := GenerateTrapezoid(0, 50, 500, 1e-3)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, pos)
	})

	t.Run("non-positive rate", func(t *testing.T) {
		t.Parallel()
		_, err := GenerateTrapezoid(10, 0, 500, 1e-3)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("non-positive acceleration", func(t *testing.T) {
		t.Parallel()
		_, err := GenerateTrapezoid(10, 50, -1, 1e-3)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})

	t.Run("negative distance", func(t *testing.T) {
		t.Parallel()
		_, err := GenerateTrapezoid(-1, 50, 500, 1e-3)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})
}
