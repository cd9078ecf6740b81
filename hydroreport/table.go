package hydroreport

import (
	"fmt"
	"io"

	"github.com/juju/ansiterm"
)

// WriteTable writes a table of results for all the given plants
// to w, one line per plant. When w is a terminal, headings are
// highlighted and invalid penstock sizes shown in red.
func WriteTable(w io.Writer, plants []Plant, precision int) error {
	precision = fixPrecision(precision)
	tw := ansiterm.NewTabWriter(w, 0, 8, 2, ' ', 0)
	tw.SetForeground(ansiterm.Cyan)
	fmt.Fprintf(tw, "PLANT\tHYDRAULIC kW\tOUTPUT kW\tIMPERIAL kW\tPENSTOCK m\tTURBINE\n")
	tw.Reset()
	for _, p := range plants {
		r := p.Result
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t", p.Name, kW(r.HydraulicPower, precision), kW(r.ActualPower, precision), num(r.ImperialPower, precision))
		if r.PenstockOK {
			fmt.Fprintf(tw, "%s\t", num(r.PenstockDiameter, precision))
		} else {
			tw.SetForeground(ansiterm.Red)
			fmt.Fprintf(tw, "%s\t", InvalidVelocityMessage)
			tw.Reset()
		}
		fmt.Fprintf(tw, "%v\n", r.Turbine)
	}
	return tw.Flush()
}
