package hydroreport_test

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/xuri/excelize/v2"

	"github.com/rogpeppe/minihydro/hydrocalc"
	"github.com/rogpeppe/minihydro/hydroconfig"
	"github.com/rogpeppe/minihydro/hydroreport"
)

func TestWriteSheet(t *testing.T) {
	c := qt.New(t)
	plants := []hydroreport.Plant{
		newPlant(c, "Upper Burn", hydrocalc.DefaultParams()),
		newPlant(c, "Big", metricParams(0)),
	}
	var buf bytes.Buffer
	err := hydroreport.WriteSheet(&buf, plants)
	c.Assert(err, qt.IsNil)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	c.Assert(err, qt.IsNil)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 3)
	c.Assert(rows[0], qt.HasLen, len(hydroconfig.SheetColumns)+len(hydroreport.ResultColumns))
	c.Assert(rows[1][0], qt.Equals, "Upper Burn")
	c.Assert(rows[1][14], qt.Equals, "Kaplan / Propeller Turbine (Low Head)")
	c.Assert(rows[2][12], qt.Equals, "")

	// The parameter columns can be read back in.
	cfgs, err := hydroconfig.ReadSheet(bytes.NewReader(buf.Bytes()))
	c.Assert(err, qt.IsNil)
	c.Assert(cfgs, qt.DeepEquals, []hydroconfig.Config{{
		Name:   "Upper Burn",
		Params: hydrocalc.DefaultParams(),
	}, {
		Name:   "Big",
		Params: metricParams(0),
	}})
}
