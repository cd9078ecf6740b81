package hydroreport

import (
	"encoding/csv"
	"io"

	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/minihydro/hydrocalc"
	"github.com/rogpeppe/minihydro/hydroconfig"
)

// ResultColumns holds the headings of the result columns written by
// WriteCSV and WriteSheet after the parameter columns, which are
// the same as hydroconfig.SheetColumns so that the output
// can be read back by hydroconfig.ReadSheet.
var ResultColumns = []string{
	"Hydraulic power (kW)",
	"Electrical output (kW)",
	"Imperial estimate (kW)",
	"Penstock diameter (m)",
	"Penstock diameter (in)",
	"Turbine",
}

// WriteCSV writes a CSV file with a heading line followed by one line
// for each plant holding its parameters and results. The penstock
// columns are empty when no diameter could be calculated.
func WriteCSV(w io.Writer, plants []Plant, precision int) error {
	precision = fixPrecision(precision)
	cw := csv.NewWriter(w)
	cw.Write(headings())
	for _, p := range plants {
		cw.Write(plantRecord(p, precision))
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errgo.Notef(err, "cannot write CSV")
	}
	return nil
}

func headings() []string {
	h := append([]string(nil), hydroconfig.SheetColumns...)
	return append(h, ResultColumns...)
}

func plantRecord(p Plant, precision int) []string {
	r := p.Result
	rec := []string{
		p.Name,
		num(p.Params.Discharge, -1),
		string(p.Params.DischargeUnit),
		num(p.Params.Velocity, -1),
		string(p.Params.VelocityUnit),
		num(p.Params.Head, -1),
		string(p.Params.HeadUnit),
		num(p.Params.TurbineEfficiency, -1),
		num(p.Params.GeneratorEfficiency, -1),
		kW(r.HydraulicPower, precision),
		kW(r.ActualPower, precision),
		num(r.ImperialPower, precision),
	}
	if r.PenstockOK {
		rec = append(rec, num(r.PenstockDiameter, precision), num(hydrocalc.MetersToInches(r.PenstockDiameter), precision))
	} else {
		rec = append(rec, "", "")
	}
	return append(rec, r.Turbine.String())
}
