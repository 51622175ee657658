// Package profileplot renders motion profiles to PNG line charts.
// It treats profiles as read-only input and writes one file per trace
// plus an optional overlay comparing the planned and effective moves.
package profileplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/motion.report/internal/motion"
)

// Renderer writes profile traces as PNG files into an output directory.
type Renderer struct {
	outputDir string

	// Canvas size in inches.
	Width  float64
	Height float64
}

// NewRenderer creates a renderer writing into outputDir, creating the
// directory if needed.
func NewRenderer(outputDir string) (*Renderer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Renderer{outputDir: outputDir, Width: 14, Height: 6}, nil
}

// OutputDir returns the directory files are written into.
func (r *Renderer) OutputDir() string {
	return r.outputDir
}

var (
	plannedColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
	effectiveColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255}
)

// traceXYs converts one trace to plot coordinates using the profile's
// sample spacing for the time axis.
func traceXYs(p *motion.Profile, trace []float64) plotter.XYs {
	pts := make(plotter.XYs, len(trace))
	for i, v := range trace {
		pts[i] = plotter.XY{X: float64(i) * p.Dt, Y: v}
	}
	return pts
}

func (r *Renderer) savePlot(pl *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.outputDir, name)
	if err := pl.Save(vg.Length(r.Width)*vg.Inch, vg.Length(r.Height)*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, nil
}

// RenderProfile writes one PNG per trace (position, velocity, acceleration)
// with a shared filename prefix. Returns the written file paths.
func (r *Renderer) RenderProfile(p *motion.Profile, prefix string) ([]string, error) {
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("empty profile")
	}

	traces := []struct {
		name  string
		yAxis string
		data  []float64
	}{
		{"position", "Extrusion (mm)", p.Position},
		{"velocity", "Velocity (mm/s)", p.Velocity},
		{"acceleration", "Acceleration (mm/s²)", p.Acceleration},
	}

	files := make([]string, 0, len(traces))
	for _, tr := range traces {
		pl := plot.New()
		pl.Title.Text = fmt.Sprintf("%s - %s", prefix, tr.name)
		pl.X.Label.Text = "Time (s)"
		pl.Y.Label.Text = tr.yAxis

		line, err := plotter.NewLine(traceXYs(p, tr.data))
		if err != nil {
			return files, err
		}
		line.Color = plannedColor
		line.Width = vg.Points(1)
		pl.Add(line)
		pl.Legend.Add(tr.name, line)
		pl.Legend.Top = true

		path, err := r.savePlot(pl, fmt.Sprintf("%s_%s.png", prefix, tr.name))
		if err != nil {
			return files, err
		}
		files = append(files, path)
	}

	return files, nil
}

// RenderComparison overlays the planned and effective profiles, one PNG per
// trace. The two profiles may differ in length; each keeps its own time axis.
func (r *Renderer) RenderComparison(planned, effective *motion.Profile, prefix string) ([]string, error) {
	if planned == nil || planned.Len() == 0 || effective == nil || effective.Len() == 0 {
		return nil, fmt.Errorf("empty profile")
	}

	traces := []struct {
		name      string
		yAxis     string
		planned   []float64
		effective []float64
	}{
		{"position", "Extrusion (mm)", planned.Position, effective.Position},
		{"velocity", "Velocity (mm/s)", planned.Velocity, effective.Velocity},
		{"acceleration", "Acceleration (mm/s²)", planned.Acceleration, effective.Acceleration},
	}

	files := make([]string, 0, len(traces))
	for _, tr := range traces {
		pl := plot.New()
		pl.Title.Text = fmt.Sprintf("%s - %s (planned vs effective)", prefix, tr.name)
		pl.X.Label.Text = "Time (s)"
		pl.Y.Label.Text = tr.yAxis

		plannedLine, err := plotter.NewLine(traceXYs(planned, tr.planned))
		if err != nil {
			return files, err
		}
		plannedLine.Color = plannedColor
		plannedLine.Width = vg.Points(1)

		effectiveLine, err := plotter.NewLine(traceXYs(effective, tr.effective))
		if err != nil {
			return files, err
		}
		effectiveLine.Color = effectiveColor
		effectiveLine.Width = vg.Points(1)

		pl.Add(plannedLine, effectiveLine)
		pl.Legend.Add("planned", plannedLine)
		pl.Legend.Add("effective", effectiveLine)
		pl.Legend.Top = true

		path, err := r.savePlot(pl, fmt.Sprintf("%s_%s_advance.png", prefix, tr.name))
		if err != nil {
			return files, err
		}
		files = append(files, path)
	}

	return files, nil
}

// FormatTimestamp generates a timestamp string for directory naming.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// MakePlotOutputDir returns a timestamped output directory under baseDir.
func MakePlotOutputDir(baseDir string) string {
	return filepath.Join(baseDir, FormatTimestamp(time.Now()))
}
