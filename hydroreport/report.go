// Package hydroreport renders the results of plant calculations.
package hydroreport

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/juju/loggo"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

var logger = loggo.GetLogger("minihydro.hydroreport")

// DefaultPrecision holds the number of decimal places used
// for powers and lengths when a negative precision is given.
const DefaultPrecision = 3

// InvalidVelocityMessage is shown in place of the penstock
// diameter when the velocity does not allow one to be calculated.
const InvalidVelocityMessage = "Invalid velocity selected."

// Plant holds a calculated plant ready for reporting.
type Plant struct {
	Name   string
	Params hydrocalc.Params
	Result *hydrocalc.Result
}

// NewPlant calculates the result for the given parameters.
func NewPlant(name string, p hydrocalc.Params) (Plant, error) {
	r, err := hydrocalc.Calculate(p)
	if err != nil {
		return Plant{}, err
	}
	return Plant{
		Name:   name,
		Params: p,
		Result: r,
	}, nil
}

// WriteText writes a human-readable report on a single plant to w
// with the given number of decimal places.
func WriteText(w io.Writer, p Plant, precision int) error {
	precision = fixPrecision(precision)
	r := p.Result
	var b bytes.Buffer
	if p.Name != "" {
		fmt.Fprintf(&b, "Results for %s\n\n", p.Name)
	} else {
		fmt.Fprintf(&b, "Results\n\n")
	}
	fmt.Fprintf(&b, "Hydraulic Power (theoretical): %s kW\n", kW(r.HydraulicPower, precision))
	fmt.Fprintf(&b, "\tP = ρ g Q H\n")
	fmt.Fprintf(&b, "Electrical Output Power (Metric): %s kW\n", kW(r.ActualPower, precision))
	fmt.Fprintf(&b, "\tP_out = P × ηₜ × ηg\n")
	fmt.Fprintf(&b, "Electrical Power (Imperial Formula): %s kW (using W·Q·H method)\n", num(r.ImperialPower, precision))
	fmt.Fprintf(&b, "Penstock Pipe Diameter: %s\n", penstockText(r, precision))
	fmt.Fprintf(&b, "Suggested Turbine: %v\n", r.Turbine)
	_, err := w.Write(b.Bytes())
	return err
}

func penstockText(r *hydrocalc.Result, precision int) string {
	if !r.PenstockOK {
		return InvalidVelocityMessage
	}
	return fmt.Sprintf("Recommended Diameter ≈ %s m (%s in) (for velocity %.2f m/s)",
		num(r.PenstockDiameter, precision),
		num(hydrocalc.MetersToInches(r.PenstockDiameter), precision),
		r.Velocity,
	)
}

func fixPrecision(precision int) int {
	if precision < 0 {
		return DefaultPrecision
	}
	return precision
}

// kW formats a power in watts as kilowatts.
func kW(w float64, precision int) string {
	return num(w/1000, precision)
}

func num(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
