package hydrocalc_test

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

var penstockDiameterTests = []struct {
	testName string
	q, v     float64
	expectOK bool
	expect   float64
}{{
	testName: "large-scheme",
	q:        100,
	v:        6,
	expectOK: true,
	expect:   4.6065,
}, {
	testName: "unit-area",
	q:        math.Pi / 4,
	v:        1,
	expectOK: true,
	expect:   1,
}, {
	testName: "zero-velocity",
	q:        100,
	v:        0,
}, {
	testName: "negative-velocity",
	q:        100,
	v:        -1,
}}

func TestPenstockDiameter(t *testing.T) {
	c := qt.New(t)
	for _, test := range penstockDiameterTests {
		c.Run(test.testName, func(c *qt.C) {
			d, ok := hydrocalc.PenstockDiameter(test.q, test.v)
			c.Assert(ok, qt.Equals, test.expectOK)
			if !ok {
				return
			}
			c.Assert(d, qt.CmpEquals(cmpopts.EquateApprox(0, 1e-4)), test.expect)
		})
	}
}

func TestPenstockDiameterCarriesDischarge(t *testing.T) {
	c := qt.New(t)
	for _, q := range []float64{0.001, 0.5, 2.83168, 100, 5000} {
		for _, v := range []float64{0.1, 1, 1.8288, 6, 30} {
			d, ok := hydrocalc.PenstockDiameter(q, v)
			c.Assert(ok, qt.Equals, true)
			c.Assert(d > 0, qt.Equals, true)
			c.Assert(math.Pi/4*d*d*v, qt.CmpEquals(cmpopts.EquateApprox(1e-12, 0)), q)
		}
	}
}

func TestMetersToInches(t *testing.T) {
	c := qt.New(t)
	c.Assert(hydrocalc.MetersToInches(1), qt.Equals, 39.3701)
	c.Assert(hydrocalc.MetersToInches(0.0254), qt.CmpEquals(cmpopts.EquateApprox(1e-5, 0)), 1.0)
}
