// Package hydroconfig reads descriptions of hydro plants.
//
// The primary format is a small line-oriented language, for example:
//
//	# the upper burn
//	plant is Upper Burn
//	discharge 100 cusec   # from the 2019 survey
//	velocity 6 ft/s
//	net head 20 meters
//	turbine efficiency 85%
//	generator efficiency 90%
//
// A # at the start of a line or after a space starts a comment
// that runs to the end of the line.
// Any setting that is omitted takes its value from hydrocalc.DefaultParams.
// Plants may also be described in YAML (see ParseYAML) or
// as rows of a spreadsheet (see ReadSheet).
package hydroconfig

import (
	"fmt"
	"math"

	"github.com/juju/loggo"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

var logger = loggo.GetLogger("minihydro.hydroconfig")

// Config holds the description of a single plant.
type Config struct {
	// Name holds the name of the plant. It may be empty.
	Name   string
	Params hydrocalc.Params
}

// Parse parses a plant description in the line-oriented
// format described in the package documentation.
// If there are errors, the returned error will have
// type *ConfigParseError and will hold all of them.
func Parse(s string) (*Config, error) {
	p := &configParser{
		cfg: Config{
			Params: hydrocalc.DefaultParams(),
		},
		seen: make(map[setting]bool),
	}
	for t := newText(s); t.s != ""; {
		var line text
		line, t = t.line()
		p.addLine(line.cutComment())
	}
	if len(p.errors) > 0 {
		return nil, &ConfigParseError{
			Config: s,
			Errors: p.errors,
		}
	}
	return &p.cfg, nil
}

type setting int

const (
	settingName setting = iota
	settingDischarge
	settingVelocity
	settingHead
	settingTurbineEfficiency
	settingGeneratorEfficiency
)

var settingNames = []string{
	settingName:                "plant name",
	settingDischarge:           "discharge",
	settingVelocity:            "velocity",
	settingHead:                "head",
	settingTurbineEfficiency:   "turbine efficiency",
	settingGeneratorEfficiency: "generator efficiency",
}

func (s setting) String() string {
	return settingNames[s]
}

// settingPrefixes maps the words that may start a line
// to the setting they introduce. Longer prefixes come
// before shorter ones that they start with.
var settingPrefixes = []struct {
	prefix  string
	setting setting
}{
	{"plant is", settingName},
	{"plant", settingName},
	{"discharge", settingDischarge},
	{"flow velocity", settingVelocity},
	{"flow rate", settingDischarge},
	{"flow", settingDischarge},
	{"velocity", settingVelocity},
	{"net head", settingHead},
	{"head", settingHead},
	{"turbine efficiency", settingTurbineEfficiency},
	{"generator efficiency", settingGeneratorEfficiency},
}

type configParser struct {
	cfg    Config
	seen   map[setting]bool
	errors []ParseError
}

func (p *configParser) addLine(t text) {
	if word, _ := t.word(); word.s == "" {
		return
	}
	for _, sp := range settingPrefixes {
		rest, ok := t.trimPrefix(sp.prefix)
		if !ok {
			continue
		}
		if p.seen[sp.setting] {
			p.errorf(t.trimSpace(), "duplicate %s setting", sp.setting)
			return
		}
		p.seen[sp.setting] = true
		p.addSetting(sp.setting, rest)
		return
	}
	p.errorf(t.trimSpace(), "unrecognised line")
}

func (p *configParser) addSetting(s setting, t text) {
	params := &p.cfg.Params
	switch s {
	case settingName:
		name := t.trimSpace()
		if name.s == "" {
			p.errorf(t, "expected plant name")
			return
		}
		p.cfg.Name = name.s
	case settingDischarge:
		if v, unit, ok := p.parseQuantity(s, t); ok {
			params.Discharge = v
			params.DischargeUnit = hydrocalc.ParseDischargeUnit(unit.s)
			warnUnknownUnit(s, unit.s, params.DischargeUnit.Known())
		}
	case settingVelocity:
		if v, unit, ok := p.parseQuantity(s, t); ok {
			params.Velocity = v
			params.VelocityUnit = hydrocalc.ParseVelocityUnit(unit.s)
			warnUnknownUnit(s, unit.s, params.VelocityUnit.Known())
		}
	case settingHead:
		if v, unit, ok := p.parseQuantity(s, t); ok {
			params.Head = v
			params.HeadUnit = hydrocalc.ParseHeadUnit(unit.s)
			warnUnknownUnit(s, unit.s, params.HeadUnit.Known())
		}
	case settingTurbineEfficiency:
		if v, ok := p.parseEfficiency(s, t); ok {
			params.TurbineEfficiency = v
		}
	case settingGeneratorEfficiency:
		if v, ok := p.parseEfficiency(s, t); ok {
			params.GeneratorEfficiency = v
		}
	default:
		panic("unreachable")
	}
}

// parseQuantity parses a non-negative number followed by a unit,
// as in "100 cusec" or "20 m". The unit is the rest of the line so
// that it may hold spaces, as in "cusec (ft³/s)".
func (p *configParser) parseQuantity(s setting, t text) (float64, text, bool) {
	v, word, rest, err := t.number(false)
	if word.s == "" {
		p.errorf(t, "expected %s value", s)
		return 0, text{}, false
	}
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		p.errorf(word, "invalid %s value %q", s, word.s)
		return 0, text{}, false
	}
	if v < 0 {
		p.errorf(word, "%s cannot be negative", s)
		return 0, text{}, false
	}
	unit := rest.trimSpace()
	if unit.s == "" {
		p.errorf(rest, "expected %s unit", s)
		return 0, text{}, false
	}
	return v, unit, true
}

// warnUnknownUnit warns about a unit that will not be converted.
// It is not an error: the value is used as if it were
// already in SI units.
func warnUnknownUnit(s setting, unit string, known bool) {
	if !known {
		logger.Warningf("unrecognised %s unit %q; value will not be converted", s, unit)
	}
}

// parseEfficiency parses a percentage, as in "85%", "85 %" or "85 percent".
func (p *configParser) parseEfficiency(s setting, t text) (float64, bool) {
	v, word, rest, err := t.number(true)
	if word.s == "" {
		p.errorf(t, "expected %s percentage", s)
		return 0, false
	}
	if err != nil || math.IsNaN(v) {
		p.errorf(word, "invalid %s %q", s, word.s)
		return 0, false
	}
	if v < hydrocalc.MinEfficiency || v > hydrocalc.MaxEfficiency {
		p.errorf(word, "%s must be between %d%% and %d%%", s, hydrocalc.MinEfficiency, hydrocalc.MaxEfficiency)
		return 0, false
	}
	if rest, ok := rest.trimPrefix("percent"); ok {
		p.checkEnd(rest)
		return v, true
	}
	if rest, ok := rest.trimPrefix("%"); ok {
		p.checkEnd(rest)
		return v, true
	}
	p.checkEnd(rest)
	return v, true
}

func (p *configParser) checkEnd(t text) {
	if word, _ := t.word(); word.s != "" {
		p.errorf(t.trimSpace(), "unexpected extra text")
	}
}

func (p *configParser) errorf(t text, f string, a ...interface{}) {
	p.errors = append(p.errors, ParseError{
		P0:      t.p0,
		P1:      t.p1,
		Message: fmt.Sprintf(f, a...),
	})
}

// ConfigParseError is returned by Parse when the
// configuration contains errors.
type ConfigParseError struct {
	// Config holds the text that was parsed.
	Config string
	// Errors holds all the errors found, in order.
	Errors []ParseError
}

// ParseError describes an error in the text Config[P0:P1].
type ParseError struct {
	P0, P1  int
	Message string
}

func (e *ConfigParseError) Error() string {
	m := fmt.Sprintf("error at %q: %v", e.Config[e.Errors[0].P0:e.Errors[0].P1], e.Errors[0].Message)
	if len(e.Errors) > 1 {
		m += fmt.Sprintf(" (and %d more)", len(e.Errors)-1)
	}
	return m
}
