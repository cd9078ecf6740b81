package hydrocalc

import (
	"math"

	"gopkg.in/errgo.v1"
)

// ErrInvalidParams is the cause of all errors returned
// by Params.Validate and Calculate.
var ErrInvalidParams = errgo.New("invalid plant parameters")

// Params holds the inputs to a plant calculation as a user
// would enter them.
type Params struct {
	// Discharge holds the volume of water flowing through
	// the plant, measured in DischargeUnit.
	Discharge     float64
	DischargeUnit DischargeUnit

	// Velocity holds the design flow velocity in the penstock,
	// measured in VelocityUnit.
	Velocity     float64
	VelocityUnit VelocityUnit

	// Head holds the net head, measured in HeadUnit.
	Head     float64
	HeadUnit HeadUnit

	// TurbineEfficiency and GeneratorEfficiency hold
	// the respective efficiencies as percentages.
	TurbineEfficiency   float64
	GeneratorEfficiency float64
}

// DefaultParams returns the parameters used when
// the user has not specified anything.
func DefaultParams() Params {
	return Params{
		Discharge:           100,
		DischargeUnit:       Cusec,
		Velocity:            6,
		VelocityUnit:        FeetPerSecond,
		Head:                20,
		HeadUnit:            Meters,
		TurbineEfficiency:   85,
		GeneratorEfficiency: 90,
	}
}

const (
	MinEfficiency = 1
	MaxEfficiency = 100
)

// Validate checks that the parameters are within the ranges
// that a user is allowed to enter. Note that a zero velocity
// is allowed; it is reported by the result instead.
func (p Params) Validate() error {
	if err := checkQuantity("discharge", p.Discharge); err != nil {
		return err
	}
	if err := checkQuantity("velocity", p.Velocity); err != nil {
		return err
	}
	if err := checkQuantity("head", p.Head); err != nil {
		return err
	}
	if err := checkEfficiency("turbine", p.TurbineEfficiency); err != nil {
		return err
	}
	if err := checkEfficiency("generator", p.GeneratorEfficiency); err != nil {
		return err
	}
	return nil
}

func checkQuantity(what string, x float64) error {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return errgo.WithCausef(nil, ErrInvalidParams, "invalid %s %v", what, x)
	case x < 0:
		return errgo.WithCausef(nil, ErrInvalidParams, "negative %s %v", what, x)
	}
	return nil
}

func checkEfficiency(what string, eff float64) error {
	// Written so that NaN is out of range.
	if !(eff >= MinEfficiency && eff <= MaxEfficiency) {
		return errgo.WithCausef(nil, ErrInvalidParams, "%s efficiency %v%% out of range [%d%%, %d%%]", what, eff, MinEfficiency, MaxEfficiency)
	}
	return nil
}

// Result holds the outcome of a plant calculation.
type Result struct {
	// Discharge, Velocity and Head hold the inputs
	// converted to m³/s, m/s and m respectively.
	Discharge float64
	Velocity  float64
	Head      float64

	// DischargeCusec and HeadFeet hold the discharge and head
	// in the units used by the imperial power formula.
	DischargeCusec float64
	HeadFeet       float64

	// HydraulicPower holds the theoretical power (W).
	HydraulicPower float64
	// ActualPower holds the electrical output power (W).
	ActualPower float64
	// ImperialPower holds the electrical output power
	// according to the weight of water formula (kW).
	ImperialPower float64

	// PenstockDiameter holds the recommended penstock
	// diameter (m). It is only valid when PenstockOK is true,
	// which it is not when the velocity is zero.
	PenstockDiameter float64
	PenstockOK       bool

	Turbine Turbine
}

// Calculate works out the power output, penstock size and
// turbine suggestion for a plant with the given parameters.
func Calculate(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, errgo.Mask(err, errgo.Is(ErrInvalidParams))
	}
	var r Result
	r.Discharge = ConvertDischarge(p.Discharge, p.DischargeUnit)
	r.Velocity = ConvertVelocity(p.Velocity, p.VelocityUnit)
	r.Head = ConvertHead(p.Head, p.HeadUnit)

	r.DischargeCusec = DischargeCusec(p.Discharge, r.Discharge, p.DischargeUnit)
	r.HeadFeet = HeadFeet(r.Head)

	etaTurbine := p.TurbineEfficiency / 100
	etaGenerator := p.GeneratorEfficiency / 100

	r.HydraulicPower = HydraulicPower(WaterDensity, Gravity, r.Discharge, r.Head)
	r.ActualPower = ActualPower(r.HydraulicPower, etaTurbine, etaGenerator)
	r.ImperialPower = PowerImperial(r.DischargeCusec, r.HeadFeet, etaTurbine, etaGenerator)

	if math.IsInf(r.HydraulicPower, 0) || math.IsInf(r.ImperialPower, 0) {
		return nil, errgo.WithCausef(nil, ErrInvalidParams, "power out of range for discharge %v and head %v", p.Discharge, p.Head)
	}
	r.PenstockDiameter, r.PenstockOK = PenstockDiameter(r.Discharge, r.Velocity)
	r.Turbine = SuggestTurbine(r.Head)
	logger.Debugf("calculated %#v -> %#v", p, r)
	return &r, nil
}
