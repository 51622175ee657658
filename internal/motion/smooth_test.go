package motion

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestSmooth_ConstantConverges(t *testing.T) {
	t.Parallel()

	// A constant input must converge to the constant regardless of order.
	const (
		dt         = 1e-3
		smoothTime = 0.02
		v          = 7.5
	)
	for order := 1; order <= 6; order++ {
		out := Smooth(NewFilterState(order), constant(400, v), smoothTime, dt)
		require.NotEmpty(t, out)
		assert.InDelta(t, v, out[len(out)-1], 1e-6, "order %d", order)
	}
}

func TestSmooth_DisabledIsIdentity(t *testing.T) {
	t.Parallel()

	in := []float64{0, 1, 2, 3, 2, 1, 0}

	t.Run("zero smoothing time", func(t *testing.T) {
		t.Parallel()
		out := Smooth(NewFilterState(2), in, 0, 1e-3)
		assert.Empty(t, cmp.Diff(in, out))
	})

	t.Run("sub-epsilon smoothing time", func(t *testing.T) {
		t.Parallel()
		out := Smooth(NewFilterState(2), in, 0.5e-3, 1e-3)
		assert.Empty(t, cmp.Diff(in, out))
	})
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []float64{0, 1, 4, 9, 16, 25}
	orig := append([]float64(nil), in...)

	_ = Smooth(NewFilterState(3), in, 0.01, 1e-3)
	assert.Empty(t, cmp.Diff(orig, in))
}

func TestSmooth_OutputLength(t *testing.T) {
	t.Parallel()

	// Pad ceil(2*delay) repeats of the final value, trim round(delay)
	// leading samples: length = n + ceil(2*delay) - round(delay).
	const (
		dt         = 1e-3
		smoothTime = 0.0125
		n          = 100
	)
	delay := smoothTime / dt
	want := n + int(math.Ceil(2*delay)) - int(math.Round(delay))

	out := Smooth(NewFilterState(2), constant(n, 1), smoothTime, dt)
	assert.Len(t, out, want)
}

func TestSmooth_StepSettlesToFinalValue(t *testing.T) {
	t.Parallel()

	// A step input must settle to the post-step value: the tail padding
	// keeps the filter running past the end of the raw input.
	in := make([]float64, 100)
	for i := 25; i < 100; i++ {
		in[i] = 3
	}
	for order := 1; order <= 4; order++ {
		out := Smooth(NewFilterState(order), in, 0.005, 1e-3)
		assert.InDelta(t, 3.0, out[len(out)-1], 1e-4, "order %d", order)
	}
}

func TestSmooth_DelayTrimKeepsAlignment(t *testing.T) {
	t.Parallel()

	// After trimming the group delay, a slow ramp's midpoint should sit
	// close to the unfiltered midpoint rather than lagging a full
	// smoothing window behind it.
	const (
		dt         = 1e-3
		smoothTime = 0.01
		n          = 400
	)
	in := make([]float64, n)
	for i := range in {
		in[i] = float64(i) * 0.01
	}

	out := Smooth(NewFilterState(1), in, smoothTime, dt)
	mid := n / 2
	assert.InDelta(t, in[mid], out[mid], 0.05)
}

func TestDifferentiate(t *testing.T) {
	t.Parallel()

	t.Run("backward difference", func(t *testing.T) {
		t.Parallel()
		vel := Differentiate([]float64{0, 1, 3, 6}, 0.5)
		assert.Empty(t, cmp.Diff([]float64{0, 2, 4, 6}, vel))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Differentiate(nil, 0.5))
	})

	t.Run("single sample", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []float64{0}, Differentiate([]float64{42}, 0.5))
	})
}
