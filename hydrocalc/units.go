package hydrocalc

import (
	"strings"

	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("minihydro.hydrocalc")

// DischargeUnit identifies the unit of a discharge value.
type DischargeUnit string

// VelocityUnit identifies the unit of a flow velocity.
type VelocityUnit string

// HeadUnit identifies the unit of a net head.
type HeadUnit string

const (
	Cusec                DischargeUnit = "cusec"
	CubicMetersPerSecond DischargeUnit = "cubic-meters-per-second"

	FeetPerSecond   VelocityUnit = "feet-per-second"
	MetersPerSecond VelocityUnit = "meters-per-second"

	Meters HeadUnit = "meters"
	Feet   HeadUnit = "feet"
)

const (
	// cubicMetersPerCusec holds the number of m³ in a cubic foot.
	cubicMetersPerCusec = 0.0283168
	metersPerFoot       = 0.3048
	// feetPerMeter is the rounded figure used by the imperial power formula.
	feetPerMeter = 3.281
)

// ConvertDischarge returns the discharge v, measured in unit u, in m³/s.
// An unknown unit leaves the value unchanged.
func ConvertDischarge(v float64, u DischargeUnit) float64 {
	switch u {
	case Cusec:
		return v * cubicMetersPerCusec
	case CubicMetersPerSecond:
		return v
	}
	logger.Debugf("unknown discharge unit %q; assuming m³/s", u)
	return v
}

// ConvertVelocity returns the velocity v, measured in unit u, in m/s.
// An unknown unit leaves the value unchanged.
func ConvertVelocity(v float64, u VelocityUnit) float64 {
	switch u {
	case FeetPerSecond:
		return v * metersPerFoot
	case MetersPerSecond:
		return v
	}
	logger.Debugf("unknown velocity unit %q; assuming m/s", u)
	return v
}

// ConvertHead returns the head v, measured in unit u, in meters.
// An unknown unit leaves the value unchanged.
func ConvertHead(v float64, u HeadUnit) float64 {
	switch u {
	case Meters:
		return v
	case Feet:
		return v * metersPerFoot
	}
	logger.Debugf("unknown head unit %q; assuming meters", u)
	return v
}

// DischargeCusec returns the discharge in cusec given the raw value
// as entered, its unit and its already converted value in m³/s.
// When the raw value was entered in cusec it is returned as is
// so that no precision is lost through the round trip.
func DischargeCusec(raw, si float64, u DischargeUnit) float64 {
	if u == Cusec {
		return raw
	}
	return si / cubicMetersPerCusec
}

// HeadFeet converts a head in meters to feet.
func HeadFeet(m float64) float64 {
	return m * feetPerMeter
}

var dischargeUnitNames = map[string]DischargeUnit{
	"cusec":                   Cusec,
	"cusecs":                  Cusec,
	"cusec (ft³/s)":           Cusec,
	"cfs":                     Cusec,
	"ft³/s":                   Cusec,
	"ft3/s":                   Cusec,
	"cubic-meters-per-second": CubicMetersPerSecond,
	"m³/s":                    CubicMetersPerSecond,
	"m3/s":                    CubicMetersPerSecond,
	"m3s":                     CubicMetersPerSecond,
	"cumec":                   CubicMetersPerSecond,
	"cumecs":                  CubicMetersPerSecond,
}

var velocityUnitNames = map[string]VelocityUnit{
	"feet-per-second":   FeetPerSecond,
	"ft/s":              FeetPerSecond,
	"fps":               FeetPerSecond,
	"meters-per-second": MetersPerSecond,
	"m/s":               MetersPerSecond,
	"mps":               MetersPerSecond,
}

var headUnitNames = map[string]HeadUnit{
	"m":      Meters,
	"meter":  Meters,
	"meters": Meters,
	"metre":  Meters,
	"metres": Meters,
	"ft":     Feet,
	"foot":   Feet,
	"feet":   Feet,
}

// ParseDischargeUnit returns the discharge unit named by s, ignoring
// case and surrounding space. A name that is not recognised is returned
// unchanged as the unit, so conversion will pass its values through.
func ParseDischargeUnit(s string) DischargeUnit {
	if u, ok := dischargeUnitNames[normUnitName(s)]; ok {
		return u
	}
	return DischargeUnit(s)
}

// ParseVelocityUnit is like ParseDischargeUnit but for velocities.
func ParseVelocityUnit(s string) VelocityUnit {
	if u, ok := velocityUnitNames[normUnitName(s)]; ok {
		return u
	}
	return VelocityUnit(s)
}

// ParseHeadUnit is like ParseDischargeUnit but for heads.
func ParseHeadUnit(s string) HeadUnit {
	if u, ok := headUnitNames[normUnitName(s)]; ok {
		return u
	}
	return HeadUnit(s)
}

// Known reports whether u is one of the recognised discharge units.
func (u DischargeUnit) Known() bool {
	return u == Cusec || u == CubicMetersPerSecond
}

// Known reports whether u is one of the recognised velocity units.
func (u VelocityUnit) Known() bool {
	return u == FeetPerSecond || u == MetersPerSecond
}

// Known reports whether u is one of the recognised head units.
func (u HeadUnit) Known() bool {
	return u == Meters || u == Feet
}

func normUnitName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
