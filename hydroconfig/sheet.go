package hydroconfig

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

// SheetColumns holds the column headings of a batch sheet,
// in order. ReadSheet ignores the heading row itself, and
// WriteSheet in package hydroreport uses the same order for its
// leading columns.
var SheetColumns = []string{
	"Name",
	"Discharge",
	"Discharge unit",
	"Velocity",
	"Velocity unit",
	"Head",
	"Head unit",
	"Turbine efficiency (%)",
	"Generator efficiency (%)",
}

// SheetError holds the errors found in the rows of a batch sheet.
type SheetError struct {
	Rows []RowError
}

// RowError describes an error in a single row.
type RowError struct {
	// Row holds the 1-based spreadsheet row number.
	Row int
	Err error
}

func (e *SheetError) Error() string {
	m := fmt.Sprintf("row %d: %v", e.Rows[0].Row, e.Rows[0].Err)
	if len(e.Rows) > 1 {
		m += fmt.Sprintf(" (and %d more)", len(e.Rows)-1)
	}
	return m
}

// ReadSheet reads plant descriptions from the first sheet of the xlsx
// workbook read from r. The first row holds headings; each subsequent
// non-empty row describes one plant with columns as in SheetColumns.
// Cells left empty take their default values.
//
// If some rows are invalid, ReadSheet returns the plants from the valid
// rows along with a *SheetError describing the others.
func ReadSheet(r io.Reader) ([]Config, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errgo.Notef(err, "cannot open workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errgo.Notef(err, "cannot read sheet %q", sheet)
	}
	if len(rows) < 2 {
		return nil, errgo.Newf("sheet %q has no plant rows", sheet)
	}
	var (
		cfgs    []Config
		rowErrs []RowError
	)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		rowNum := i + 2
		cfg, err := parseRow(row)
		if err != nil {
			logger.Warningf("skipping row %d of sheet %q: %v", rowNum, sheet, err)
			rowErrs = append(rowErrs, RowError{
				Row: rowNum,
				Err: err,
			})
			continue
		}
		if cfg.Name == "" {
			cfg.Name = fmt.Sprintf("row %d", rowNum)
		}
		cfgs = append(cfgs, cfg)
	}
	if len(rowErrs) > 0 {
		return cfgs, &SheetError{
			Rows: rowErrs,
		}
	}
	return cfgs, nil
}

func parseRow(row []string) (Config, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	cfg := Config{
		Name:   cell(0),
		Params: hydrocalc.DefaultParams(),
	}
	p := &cfg.Params
	var err error
	set := func(col int, x *float64) {
		if err != nil || cell(col) == "" {
			return
		}
		s := cell(col)
		if col >= 7 {
			s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		}
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			err = errgo.Newf("invalid %s %q", strings.ToLower(SheetColumns[col]), cell(col))
			return
		}
		*x = v
	}
	set(1, &p.Discharge)
	set(3, &p.Velocity)
	set(5, &p.Head)
	set(7, &p.TurbineEfficiency)
	set(8, &p.GeneratorEfficiency)
	if err != nil {
		return Config{}, err
	}
	if u := cell(2); u != "" {
		p.DischargeUnit = hydrocalc.ParseDischargeUnit(u)
	}
	if u := cell(4); u != "" {
		p.VelocityUnit = hydrocalc.ParseVelocityUnit(u)
	}
	if u := cell(6); u != "" {
		p.HeadUnit = hydrocalc.ParseHeadUnit(u)
	}
	if err := p.Validate(); err != nil {
		return Config{}, errgo.Mask(err, errgo.Is(hydrocalc.ErrInvalidParams))
	}
	return cfg, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
