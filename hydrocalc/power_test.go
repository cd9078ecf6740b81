package hydrocalc_test

import (
	gc "gopkg.in/check.v1"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

type powerSuite struct{}

var _ = gc.Suite(powerSuite{})

var hydraulicPowerTests = []struct {
	about  string
	q, h   float64
	expect float64
}{{
	about: "no water, no power",
	h:     20,
}, {
	about: "no head, no power",
	q:     100,
}, {
	about:  "large scheme",
	q:      100,
	h:      20,
	expect: 19620000,
}, {
	about:  "small scheme",
	q:      0.05,
	h:      12,
	expect: 1000 * 9.81 * 0.05 * 12,
}}

func (powerSuite) TestHydraulicPower(c *gc.C) {
	for i, test := range hydraulicPowerTests {
		c.Logf("test %d: %s", i, test.about)
		p := hydrocalc.HydraulicPower(hydrocalc.WaterDensity, hydrocalc.Gravity, test.q, test.h)
		assertEqual(c, "hydraulic power", p, test.expect)
		if p < 0 {
			c.Errorf("negative power %v", p)
		}
	}
}

var actualPowerTests = []struct {
	about        string
	hydraulic    float64
	etaTurbine   float64
	etaGenerator float64
	expect       float64
}{{
	about:        "perfect efficiency changes nothing",
	hydraulic:    12345.678,
	etaTurbine:   1,
	etaGenerator: 1,
	expect:       12345.678,
}, {
	about:        "typical efficiencies",
	hydraulic:    19620000,
	etaTurbine:   0.85,
	etaGenerator: 0.9,
	expect:       15009300,
}, {
	about:        "one percent each",
	hydraulic:    10000,
	etaTurbine:   0.01,
	etaGenerator: 0.01,
	expect:       1,
}}

func (powerSuite) TestActualPower(c *gc.C) {
	for i, test := range actualPowerTests {
		c.Logf("test %d: %s", i, test.about)
		p := hydrocalc.ActualPower(test.hydraulic, test.etaTurbine, test.etaGenerator)
		assertEqual(c, "actual power", p, test.expect)
		if p > test.hydraulic {
			c.Errorf("actual power %v exceeds hydraulic power %v", p, test.hydraulic)
		}
	}
}

func (powerSuite) TestActualPowerIdentityIsExact(c *gc.C) {
	for _, p := range []float64{0, 1, 0.1, 19620000, 1e-300, 123456789.123} {
		c.Check(hydrocalc.ActualPower(p, 1, 1), gc.Equals, p)
	}
}

var powerImperialTests = []struct {
	about        string
	qCusec, hFt  float64
	etaTurbine   float64
	etaGenerator float64
	expect       float64
}{{
	about:        "one cusec through one foot",
	qCusec:       1,
	hFt:          1,
	etaTurbine:   1,
	etaGenerator: 1,
	expect:       62.4 * 746 / 550000,
}, {
	about:        "default form values",
	qCusec:       100,
	hFt:          20 * 3.281,
	etaTurbine:   0.85,
	etaGenerator: 0.9,
	expect:       (62.4 * 100 * 20 * 3.281 * 0.85 * 0.9 * 746) / 550000,
}, {
	about:        "no flow",
	hFt:          100,
	etaTurbine:   0.5,
	etaGenerator: 0.5,
}}

func (powerSuite) TestPowerImperial(c *gc.C) {
	for i, test := range powerImperialTests {
		c.Logf("test %d: %s", i, test.about)
		p := hydrocalc.PowerImperial(test.qCusec, test.hFt, test.etaTurbine, test.etaGenerator)
		assertEqual(c, "imperial power", p, test.expect)
	}
}

func (powerSuite) TestPowerImperialIsIndependentOfMetric(c *gc.C) {
	// The two estimates use different constants so they
	// are close but not identical.
	q, h := 100.0, 20.0
	metricKW := hydrocalc.ActualPower(hydrocalc.HydraulicPower(hydrocalc.WaterDensity, hydrocalc.Gravity, q, h), 0.85, 0.9) / 1000
	imperialKW := hydrocalc.PowerImperial(q/0.0283168, h*3.281, 0.85, 0.9)
	c.Assert(imperialKW, gc.Not(gc.Equals), metricKW)
	if diff := (imperialKW - metricKW) / metricKW; diff > 0.01 || diff < -0.01 {
		c.Errorf("imperial estimate %v too far from metric %v", imperialKW, metricKW)
	}
}

const eps = 0.0001

func assertEqual(c *gc.C, what string, got, want float64) {
	if got < want-eps || got > want+eps {
		c.Errorf("unexpected value for %v, got %v want %v", what, got, want)
	}
}
