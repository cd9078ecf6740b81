package hydrocalc

import "fmt"

// Turbine represents a class of water turbine.
type Turbine int

const (
	Kaplan Turbine = iota
	Francis
	Pelton
)

var turbineNames = []string{
	Kaplan:  "Kaplan / Propeller Turbine (Low Head)",
	Francis: "Francis Turbine (Medium Head)",
	Pelton:  "Pelton Turbine (High Head)",
}

func (t Turbine) String() string {
	if t < 0 || int(t) >= len(turbineNames) {
		return fmt.Sprintf("Turbine(%d)", int(t))
	}
	return turbineNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Turbine) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// SuggestTurbine returns the kind of turbine that suits
// the net head h, in meters.
func SuggestTurbine(h float64) Turbine {
	switch {
	case h > 300:
		return Pelton
	case h >= 50:
		return Francis
	default:
		return Kaplan
	}
}
