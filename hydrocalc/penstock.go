package hydrocalc

import "math"

const inchesPerMeter = 39.3701

// PenstockDiameter returns the inner diameter in meters of a pipe that
// carries a discharge q (m³/s) at velocity v (m/s).
// It returns false if v is not positive.
func PenstockDiameter(q, v float64) (float64, bool) {
	if v <= 0 {
		return 0, false
	}
	return math.Sqrt((4 * q) / (math.Pi * v)), true
}

// MetersToInches converts a length in meters to inches.
func MetersToInches(m float64) float64 {
	return m * inchesPerMeter
}
