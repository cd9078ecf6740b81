package hydroreport

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

// PDFParams holds parameters for WritePDF.
type PDFParams struct {
	// Title holds the report title. If it's empty,
	// "Mini Hydraulic Power Plant" is used.
	Title string
	// Author holds the name of the person the report is for.
	Author string
	// Date holds the date printed on the report.
	// If it's zero, the current time is used.
	Date time.Time
	// Precision holds the number of decimal places to show.
	Precision int
}

// WritePDF writes a single-page PDF report on the given plant to w.
func WritePDF(w io.Writer, p Plant, params PDFParams) error {
	if params.Title == "" {
		params.Title = "Mini Hydraulic Power Plant"
	}
	if params.Date.IsZero() {
		params.Date = time.Now()
	}
	precision := fixPrecision(params.Precision)
	r := p.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	// The core fonts use cp1252, which covers "³" and "×" but not Greek.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(params.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if p.Name != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Plant: %s", p.Name)))
		pdf.Ln(6)
	}
	if params.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", params.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", params.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	line := func(label, value string) {
		pdf.CellFormat(80, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}

	section("Inputs")
	line("Discharge", fmt.Sprintf("%v %s (%s m³/s)", p.Params.Discharge, p.Params.DischargeUnit, num(r.Discharge, precision)))
	line("Velocity", fmt.Sprintf("%v %s (%.2f m/s)", p.Params.Velocity, p.Params.VelocityUnit, r.Velocity))
	line("Net head", fmt.Sprintf("%v %s (%s m)", p.Params.Head, p.Params.HeadUnit, num(r.Head, precision)))
	line("Turbine efficiency", fmt.Sprintf("%v%%", p.Params.TurbineEfficiency))
	line("Generator efficiency", fmt.Sprintf("%v%%", p.Params.GeneratorEfficiency))
	pdf.Ln(4)

	section("Results")
	line("Hydraulic power (P = rho g Q H)", kW(r.HydraulicPower, precision)+" kW")
	line("Electrical output (P × eta_t × eta_g)", kW(r.ActualPower, precision)+" kW")
	line("Imperial estimate (W Q H method)", num(r.ImperialPower, precision)+" kW")
	if r.PenstockOK {
		line("Penstock diameter", fmt.Sprintf("%s m (%s in)", num(r.PenstockDiameter, precision), num(hydrocalc.MetersToInches(r.PenstockDiameter), precision)))
	} else {
		pdf.SetTextColor(200, 0, 0)
		line("Penstock diameter", InvalidVelocityMessage)
		pdf.SetTextColor(0, 0, 0)
	}
	line("Suggested turbine", r.Turbine.String())

	if err := pdf.Output(w); err != nil {
		return errgo.Notef(err, "cannot generate PDF report")
	}
	logger.Debugf("wrote PDF report for %q", p.Name)
	return nil
}
