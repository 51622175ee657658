package motion

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/motion.report/internal/units"
)

func testParams() Params {
	return Params{
		Trajectory:     Trapezoid,
		Distance:       10,
		Rate:           50,
		Accel:          500,
		AccelOvershoot: 1.5,
		AdvanceK:       0.04,
		LineWidth:      0.4,
		LayerHeight:    0.2,
		SampleRate:     1000,
		SmoothTime:     0.01,
		SmoothOrder:    2,
	}
}

func TestAssemble_ParallelTraces(t *testing.T) {
	t.Parallel()

	p, err := Assemble(testParams())
	require.NoError(t, err)

	assert.Equal(t, len(p.Position), len(p.Velocity))
	assert.Equal(t, len(p.Position), len(p.Acceleration))
	assert.Equal(t, 1e-3, p.Dt)
	assert.Positive(t, p.Len())
}

func TestAssemble_FilamentConversion(t *testing.T) {
	t.Parallel()

	params := testParams()
	p, err := Assemble(params)
	require.NoError(t, err)

	// The smoothed trace settles to the converted final value: travel
	// distance scaled by the filament conversion factor.
	want := params.Distance * units.FilamentPerTravel(params.LineWidth, params.LayerHeight)
	assert.InDelta(t, want, p.Position[p.Len()-1], 1e-4)
}

func TestAssemble_Idempotent(t *testing.T) {
	t.Parallel()

	params := testParams()
	params.Trajectory = Sextic

	a, err := Assemble(params)
	require.NoError(t, err)
	b, err := Assemble(params)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(a, b))
}

func TestAssemble_ZeroDistance(t *testing.T) {
	t.Parallel()

	params := testParams()
	params.Distance = 0

	p, err := Assemble(params)
	require.NoError(t, err)

	require.Equal(t, 1, p.Len())
	assert.Zero(t, p.Position[0])
	assert.Zero(t, p.Velocity[0])
	assert.Zero(t, p.Acceleration[0])
}

func TestAssemble_SmoothingDisabled(t *testing.T) {
	t.Parallel()

	// With smoothing off, the assembled position is exactly the generated
	// trace scaled by the filament factor.
	params := testParams()
	params.SmoothTime = 0

	p, err := Assemble(params)
	require.NoError(t, err)

	raw, err := GenerateTrapezoid(params.Distance, params.Rate, params.Accel, params.Dt())
	require.NoError(t, err)
	require.Equal(t, len(raw), p.Len())

	factor := units.FilamentPerTravel(params.LineWidth, params.LayerHeight)
	for i, s := range raw {
		assert.InDelta(t, s*factor, p.Position[i], 1e-12)
	}
}

func TestAssemble_InvalidParameters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative distance", func(p *Params) { p.Distance = -1 }},
		{"zero rate", func(p *Params) { p.Rate = 0 }},
		{"negative acceleration", func(p *Params) { p.Accel = -100 }},
		{"zero sample rate", func(p *Params) { p.SampleRate = 0 }},
		{"zero smoothing order", func(p *Params) { p.SmoothOrder = 0 }},
		{"negative smoothing time", func(p *Params) { p.SmoothTime = -0.01 }},
		{"zero line width", func(p *Params) { p.LineWidth = 0 }},
		{"zero layer height", func(p *Params) { p.LayerHeight = 0 }},
		{"negative advance", func(p *Params) { p.AdvanceK = -0.1 }},
		{"sextic without overshoot", func(p *Params) { p.Trajectory = Sextic; p.AccelOvershoot = 0 }},
		{"bogus trajectory", func(p *Params) { p.Trajectory = TrajectoryKind(99) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			params := testParams()
			tc.mutate(&params)

			p, err := Assemble(params)
			assert.Nil(t, p, "no partial output on rejected parameters")
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestAssemble_ProfileTooLarge(t *testing.T) {
	t.Parallel()

	params := testParams()
	params.Distance = 1e9
	params.Rate = 1
	params.SampleRate = 100000

	p, err := Assemble(params)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrProfileTooLarge), "got %v", err)
}

func TestParseTrajectoryKind(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]TrajectoryKind{
		"trapezoid":   Trapezoid,
		"trapezoidal": Trapezoid,
		"sextic":      Sextic,
		"6poly":       Sextic,
	} {
		got, err := ParseTrajectoryKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTrajectoryKind("septic")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestProfileSummarize(t *testing.T) {
	t.Parallel()

	p, err := Assemble(testParams())
	require.NoError(t, err)

	s := p.Summarize()
	assert.Equal(t, p.Len(), s.Samples)
	assert.InDelta(t, p.Duration(), s.Duration, 1e-12)
	assert.InDelta(t, 0, s.Velocity.Min, 1e-3)
	assert.Greater(t, s.Velocity.Max, 0.0)
	assert.Greater(t, s.Acceleration.Max, 0.0)
	assert.Less(t, s.Acceleration.Min, 0.0)
	assert.GreaterOrEqual(t, s.Position.Max, s.Position.Min)
}
