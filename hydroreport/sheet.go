package hydroreport

import (
	"io"

	"github.com/xuri/excelize/v2"
	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

// WriteSheet writes an xlsx workbook to w holding the same
// columns as WriteCSV. Numbers are stored unrounded.
func WriteSheet(w io.Writer, plants []Plant) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, stringsToRow(headings())); err != nil {
		return errgo.Mask(err)
	}
	for i, p := range plants {
		if err := setRow(f, sheet, i+2, plantRow(p)); err != nil {
			return errgo.Mask(err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return errgo.Notef(err, "cannot write workbook")
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, row []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return errgo.Mask(err)
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return errgo.Notef(err, "cannot set row %d", rowNum)
	}
	return nil
}

func plantRow(p Plant) []interface{} {
	r := p.Result
	row := []interface{}{
		p.Name,
		p.Params.Discharge,
		string(p.Params.DischargeUnit),
		p.Params.Velocity,
		string(p.Params.VelocityUnit),
		p.Params.Head,
		string(p.Params.HeadUnit),
		p.Params.TurbineEfficiency,
		p.Params.GeneratorEfficiency,
		r.HydraulicPower / 1000,
		r.ActualPower / 1000,
		r.ImperialPower,
	}
	if r.PenstockOK {
		row = append(row, r.PenstockDiameter, hydrocalc.MetersToInches(r.PenstockDiameter))
	} else {
		row = append(row, "", "")
	}
	return append(row, r.Turbine.String())
}

func stringsToRow(ss []string) []interface{} {
	row := make([]interface{}, len(ss))
	for i, s := range ss {
		row[i] = s
	}
	return row
}
