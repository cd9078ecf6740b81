package hydroreport

import (
	"math"

	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/minihydro/googlecharts"
	"github.com/rogpeppe/minihydro/hydrocalc"
)

// MaxSweepPoints holds the maximum number of points
// that Sweep will produce.
const MaxSweepPoints = 10000

// SweepPoint holds the outcome of a plant calculation
// at one head in a sweep.
type SweepPoint struct {
	Head           float64           `googlecharts:"Net head (m),pattern=#,##0.00"`
	HydraulicPower float64           `googlecharts:"Hydraulic power (kW),pattern=#,##0.000"`
	ActualPower    float64           `googlecharts:"Electrical output (kW),pattern=#,##0.000"`
	ImperialPower  float64           `googlecharts:"Imperial estimate (kW),pattern=#,##0.000"`
	Turbine        hydrocalc.Turbine `googlecharts:"Turbine"`
}

// Sweep calculates the plant with parameters p for each head from
// "from" to "to" inclusive in increments of step, all measured in
// p.HeadUnit; p.Head itself is ignored.
func Sweep(p hydrocalc.Params, from, to, step float64) ([]SweepPoint, error) {
	if !(step > 0) {
		return nil, errgo.Newf("sweep step %v is not positive", step)
	}
	if !isFinite(from) || !isFinite(to) || from < 0 || to < from {
		return nil, errgo.Newf("invalid sweep range %v to %v", from, to)
	}
	// Allow for rounding error when the step divides the range exactly.
	nf := (to-from)/step + 1e-9
	if nf >= MaxSweepPoints {
		return nil, errgo.Newf("sweep of %.0f points is too large (max %d)", nf+1, MaxSweepPoints)
	}
	n := int(nf) + 1
	points := make([]SweepPoint, n)
	for i := range points {
		p.Head = from + float64(i)*step
		r, err := hydrocalc.Calculate(p)
		if err != nil {
			return nil, errgo.Notef(err, "cannot calculate at head %v", p.Head)
		}
		points[i] = SweepPoint{
			Head:           r.Head,
			HydraulicPower: r.HydraulicPower / 1000,
			ActualPower:    r.ActualPower / 1000,
			ImperialPower:  r.ImperialPower,
			Turbine:        r.Turbine,
		}
	}
	return points, nil
}

// SweepTable returns the sweep points as a data table
// suitable for drawing a Google chart.
func SweepTable(points []SweepPoint) *googlecharts.DataTable {
	return googlecharts.NewDataTable(points)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
