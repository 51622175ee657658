package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/motion.report/internal/motion"
)

// DefaultConfigPath is the path to the canonical profile defaults file.
// This is the single source of truth for all default profile values.
const DefaultConfigPath = "config/profile.defaults.json"

// ProfileConfig represents the root configuration for profile generation.
// The schema matches the /api/profile endpoint query parameters so the same
// names work for both startup configuration and per-request overrides.
type ProfileConfig struct {
	// Move params
	Trajectory     *string  `json:"trajectory,omitempty"` // "trapezoid" or "sextic"
	Distance       *float64 `json:"distance,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
	Accel          *float64 `json:"accel,omitempty"`
	AccelOvershoot *float64 `json:"accel_overshoot,omitempty"`

	// Extrusion params
	AdvanceMode *string  `json:"advance_mode,omitempty"` // "linear" or "lag"
	AdvanceK    *float64 `json:"advance_k,omitempty"`
	LineWidth   *float64 `json:"line_width,omitempty"`
	LayerHeight *float64 `json:"layer_height,omitempty"`

	// Sampling and smoothing params
	SampleRate  *float64 `json:"sample_rate,omitempty"`
	SmoothTime  *float64 `json:"smooth_time,omitempty"`
	SmoothOrder *int     `json:"smooth_order,omitempty"`
}

// EmptyProfileConfig returns a ProfileConfig with all fields set to nil.
// Use LoadProfileConfig to load actual values from the defaults file.
func EmptyProfileConfig() *ProfileConfig {
	return &ProfileConfig{}
}

// LoadProfileConfig loads a ProfileConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the max file size.
// Fields omitted from the JSON file retain their default values, so
// partial configs are safe.
func LoadProfileConfig(path string) (*ProfileConfig, error) {
	// Validate the config file path.
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse JSON into empty config. The Get* methods provide fallback
	// defaults for any fields not specified in the JSON.
	cfg := EmptyProfileConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical profile defaults from DefaultConfigPath.
// It searches for the file in the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *ProfileConfig {
	// Try paths from current dir up to repo root
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/
		"../../../" + DefaultConfigPath, // from cmd/tools/
	}
	for _, path := range candidates {
		if cfg, err := LoadProfileConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *ProfileConfig) Validate() error {
	if c.Trajectory != nil && *c.Trajectory != "" {
		if _, err := motion.ParseTrajectoryKind(*c.Trajectory); err != nil {
			return fmt.Errorf("invalid trajectory %q: %w", *c.Trajectory, err)
		}
	}

	if c.AdvanceMode != nil && *c.AdvanceMode != "" {
		if _, err := motion.ParseAdvanceMode(*c.AdvanceMode); err != nil {
			return fmt.Errorf("invalid advance_mode %q: %w", *c.AdvanceMode, err)
		}
	}

	if c.Distance != nil && *c.Distance < 0 {
		return fmt.Errorf("distance must be non-negative, got %f", *c.Distance)
	}

	if c.Rate != nil && *c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %f", *c.Rate)
	}

	if c.Accel != nil && *c.Accel <= 0 {
		return fmt.Errorf("accel must be positive, got %f", *c.Accel)
	}

	if c.SampleRate != nil && *c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %f", *c.SampleRate)
	}

	if c.SmoothOrder != nil && *c.SmoothOrder < 1 {
		return fmt.Errorf("smooth_order must be at least 1, got %d", *c.SmoothOrder)
	}

	return nil
}

// GetTrajectory returns the trajectory kind or the default.
func (c *ProfileConfig) GetTrajectory() motion.TrajectoryKind {
	if c.Trajectory == nil || *c.Trajectory == "" {
		return motion.Trapezoid // default
	}
	kind, err := motion.ParseTrajectoryKind(*c.Trajectory)
	if err != nil {
		return motion.Trapezoid // default on parse error
	}
	return kind
}

// GetDistance returns the distance value or the default.
func (c *ProfileConfig) GetDistance() float64 {
	if c.Distance == nil {
		return 10.0 // default, mm
	}
	return *c.Distance
}

// GetRate returns the rate value or the default.
func (c *ProfileConfig) GetRate() float64 {
	if c.Rate == nil {
		return 50.0 // default, mm/s
	}
	return *c.Rate
}

// GetAccel returns the accel value or the default.
func (c *ProfileConfig) GetAccel() float64 {
	if c.Accel == nil {
		return 500.0 // default, mm/s^2
	}
	return *c.Accel
}

// GetAccelOvershoot returns the accel_overshoot value or the default.
func (c *ProfileConfig) GetAccelOvershoot() float64 {
	if c.AccelOvershoot == nil {
		return 1.5
	}
	return *c.AccelOvershoot
}

// GetAdvanceMode returns the advance mode or the default.
func (c *ProfileConfig) GetAdvanceMode() motion.AdvanceMode {
	if c.AdvanceMode == nil || *c.AdvanceMode == "" {
		return motion.AdvanceLinear // default
	}
	mode, err := motion.ParseAdvanceMode(*c.AdvanceMode)
	if err != nil {
		return motion.AdvanceLinear // default on parse error
	}
	return mode
}

// GetAdvanceK returns the advance_k value or the default.
func (c *ProfileConfig) GetAdvanceK() float64 {
	if c.AdvanceK == nil {
		return 0.04
	}
	return *c.AdvanceK
}

// GetLineWidth returns the line_width value or the default.
func (c *ProfileConfig) GetLineWidth() float64 {
	if c.LineWidth == nil {
		return 0.4 // default, mm
	}
	return *c.LineWidth
}

// GetLayerHeight returns the layer_height value or the default.
func (c *ProfileConfig) GetLayerHeight() float64 {
	if c.LayerHeight == nil {
		return 0.2 // default, mm
	}
	return *c.LayerHeight
}

// GetSampleRate returns the sample_rate value or the default.
func (c *ProfileConfig) GetSampleRate() float64 {
	if c.SampleRate == nil {
		return 1000.0 // default, Hz
	}
	return *c.SampleRate
}

// GetSmoothTime returns the smooth_time value or the default.
func (c *ProfileConfig) GetSmoothTime() float64 {
	if c.SmoothTime == nil {
		return 0.04 // default, seconds
	}
	return *c.SmoothTime
}

// GetSmoothOrder returns the smooth_order value or the default.
func (c *ProfileConfig) GetSmoothOrder() int {
	if c.SmoothOrder == nil {
		return 2
	}
	return *c.SmoothOrder
}

// Params builds a motion.Params from the configured values, applying
// defaults for any unset fields.
func (c *ProfileConfig) Params() motion.Params {
	return motion.Params{
		Trajectory:     c.GetTrajectory(),
		Distance:       c.GetDistance(),
		Rate:           c.GetRate(),
		Accel:          c.GetAccel(),
		AccelOvershoot: c.GetAccelOvershoot(),
		AdvanceK:       c.GetAdvanceK(),
		LineWidth:      c.GetLineWidth(),
		LayerHeight:    c.GetLayerHeight(),
		SampleRate:     c.GetSampleRate(),
		SmoothTime:     c.GetSmoothTime(),
		SmoothOrder:    c.GetSmoothOrder(),
	}
}
