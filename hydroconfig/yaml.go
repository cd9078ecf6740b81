package hydroconfig

import (
	"gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"

	"github.com/rogpeppe/minihydro/hydrocalc"
)

// yamlConfig holds the YAML form of a plant description:
//
//	name: Upper Burn
//	discharge: {value: 100, unit: cusec}
//	velocity: {value: 6, unit: ft/s}
//	head: {value: 20, unit: meters}
//	turbine-efficiency: 85
//	generator-efficiency: 90
type yamlConfig struct {
	Name                string        `yaml:"name"`
	Discharge           *yamlQuantity `yaml:"discharge"`
	Velocity            *yamlQuantity `yaml:"velocity"`
	Head                *yamlQuantity `yaml:"head"`
	TurbineEfficiency   *float64      `yaml:"turbine-efficiency"`
	GeneratorEfficiency *float64      `yaml:"generator-efficiency"`
}

type yamlQuantity struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// ParseYAML parses a plant description in YAML format.
// Unknown fields are an error. As with Parse, omitted
// settings take their default values.
func ParseYAML(data []byte) (*Config, error) {
	var yc yamlConfig
	if err := yaml.UnmarshalStrict(data, &yc); err != nil {
		return nil, errgo.Notef(err, "cannot parse plant YAML")
	}
	cfg := &Config{
		Name:   yc.Name,
		Params: hydrocalc.DefaultParams(),
	}
	p := &cfg.Params
	if q := yc.Discharge; q != nil {
		p.Discharge, p.DischargeUnit = q.Value, hydrocalc.ParseDischargeUnit(q.Unit)
		warnUnknownUnit(settingDischarge, q.Unit, p.DischargeUnit.Known())
	}
	if q := yc.Velocity; q != nil {
		p.Velocity, p.VelocityUnit = q.Value, hydrocalc.ParseVelocityUnit(q.Unit)
		warnUnknownUnit(settingVelocity, q.Unit, p.VelocityUnit.Known())
	}
	if q := yc.Head; q != nil {
		p.Head, p.HeadUnit = q.Value, hydrocalc.ParseHeadUnit(q.Unit)
		warnUnknownUnit(settingHead, q.Unit, p.HeadUnit.Known())
	}
	if yc.TurbineEfficiency != nil {
		p.TurbineEfficiency = *yc.TurbineEfficiency
	}
	if yc.GeneratorEfficiency != nil {
		p.GeneratorEfficiency = *yc.GeneratorEfficiency
	}
	if err := p.Validate(); err != nil {
		return nil, errgo.NoteMask(err, "invalid plant YAML", errgo.Is(hydrocalc.ErrInvalidParams))
	}
	return cfg, nil
}
