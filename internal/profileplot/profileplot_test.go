package profileplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/motion.report/internal/motion"
)

func testProfile(t *testing.T) *motion.Profile {
	t.Helper()
	p, err := motion.Assemble(motion.Params{
		Trajectory:     motion.Trapezoid,
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
	})
	require.NoError(t, err)
	return p
}

func TestRenderProfile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r, err := NewRenderer(dir)
	require.NoError(t, err)

	files, err := r.RenderProfile(testProfile(t), "trapezoid")
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "plot file %s should not be empty", f)
		assert.Equal(t, ".png", filepath.Ext(f))
	}
}

func TestRenderComparison(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r, err := NewRenderer(dir)
	require.NoError(t, err)

	planned := testProfile(t)
	effective := motion.WithAdvance(planned, motion.AdvanceLinear, 0.04)

	files, err := r.RenderComparison(planned, effective, "trapezoid")
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRenderProfile_EmptyProfile(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	_, err = r.RenderProfile(nil, "x")
	assert.Error(t, err)

	_, err = r.RenderComparison(nil, nil, "x")
	assert.Error(t, err)
}

func TestNewRenderer_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "plots", "nested")
	r, err := NewRenderer(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, r.OutputDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
