// Package units provides shared filament-geometry constants and speed-unit
// conversion for the motion pipeline and the tool layer.
package units

import "math"

const (
	// FilamentDiameter is the filament diameter assumed by the
	// travel-to-filament conversion, in mm.
	FilamentDiameter = 1.75

	// FilamentArea is the filament cross-section area in mm².
	FilamentArea = math.Pi * (FilamentDiameter / 2) * (FilamentDiameter / 2)
)

// Unit constants for displayed speeds.
const (
	MMPS = "mmps"
	MMPM = "mmpm"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MMPS, MMPM}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "mmps, mmpm"
}

// FilamentPerTravel returns the mm of filament extruded per mm of travel for
// a line of the given width and layer height.
func FilamentPerTravel(lineWidth, layerHeight float64) float64 {
	return lineWidth * layerHeight / FilamentArea
}

// ConvertSpeed converts a speed from mm/s to the target units.
// Profiles store speeds in mm/s.
func ConvertSpeed(speedMMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MMPM:
		return speedMMPS * 60 // mm/s to mm/min
	case MMPS:
		return speedMMPS // no conversion needed
	default:
		return speedMMPS // default to mm/s if unknown unit
	}
}
