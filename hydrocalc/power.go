package hydrocalc

const (
	// WaterDensity holds the density of water in kg/m³.
	WaterDensity = 1000.0
	// Gravity holds the acceleration due to gravity in m/s².
	Gravity = 9.81
)

const (
	// waterWeight holds the specific weight of water in lb/ft³.
	waterWeight   = 62.4
	wattsPerHP    = 746
	ftLbfPerSecHP = 550
	wattsPerKW    = 1000
)

// HydraulicPower returns the theoretical power in watts available from
// a discharge q (m³/s) falling through a head h (m) for a fluid
// of density rho (kg/m³) under gravity g (m/s²).
func HydraulicPower(rho, g, q, h float64) float64 {
	return rho * g * q * h
}

// ActualPower returns the electrical output power in watts given the
// hydraulic power and the turbine and generator efficiencies as fractions.
func ActualPower(hydraulic, etaTurbine, etaGenerator float64) float64 {
	return hydraulic * etaTurbine * etaGenerator
}

// PowerImperial returns the electrical output power in kilowatts
// calculated from the weight of water: discharge in cusec, head in feet
// and the two efficiencies as fractions.
//
// This is an alternative estimate to ActualPower and its result is not
// expected to agree exactly with it.
func PowerImperial(qCusec, hFeet, etaTurbine, etaGenerator float64) float64 {
	return (waterWeight * qCusec * hFeet * etaTurbine * etaGenerator * wattsPerHP) / (ftLbfPerSecHP * wattsPerKW)
}
