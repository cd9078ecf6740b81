// The hydrocalc command sizes a micro-hydro plant: it prints the
// hydraulic and electrical power, penstock diameter and suggested
// turbine for a plant described by flags, a plant description file
// or a spreadsheet of plants.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/minihydro/hydrocalc"
	"github.com/rogpeppe/minihydro/hydroconfig"
	"github.com/rogpeppe/minihydro/hydroreport"
)

var logger = loggo.GetLogger("minihydro.cmd.hydrocalc")

// errUsage is returned by run when the command line is invalid.
var errUsage = errgo.New("usage error")

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "hydrocalc: cannot load .env: %v\n", err)
	}
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errgo.Cause(err) == errUsage:
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "hydrocalc: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	name      string
	file      string
	batch     string
	xlsxOut   string
	pdfOut    string
	sweep     string
	precision int
	color     bool
	logSpec   string
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("hydrocalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: hydrocalc [flags]\n")
		fmt.Fprintf(stderr, "Calculates the power output, penstock size and turbine type of a micro-hydro plant.\n")
		fs.PrintDefaults()
	}
	def := hydrocalc.DefaultParams()
	var (
		opts   options
		params = def
		units  struct {
			discharge, velocity, head string
		}
	)
	fs.StringVar(&opts.name, "name", "", "plant name")
	fs.Float64Var(&params.Discharge, "discharge", def.Discharge, "discharge value")
	fs.StringVar(&units.discharge, "discharge-unit", string(def.DischargeUnit), "discharge unit (cusec, m3/s)")
	fs.Float64Var(&params.Velocity, "velocity", def.Velocity, "penstock flow velocity value")
	fs.StringVar(&units.velocity, "velocity-unit", string(def.VelocityUnit), "velocity unit (ft/s, m/s)")
	fs.Float64Var(&params.Head, "head", def.Head, "net head value")
	fs.StringVar(&units.head, "head-unit", string(def.HeadUnit), "head unit (meters, feet)")
	fs.Float64Var(&params.TurbineEfficiency, "turbine-eff", def.TurbineEfficiency, "turbine efficiency (%)")
	fs.Float64Var(&params.GeneratorEfficiency, "generator-eff", def.GeneratorEfficiency, "generator efficiency (%)")
	fs.StringVar(&opts.file, "f", "", "read plant description from `file` (.yaml or .yml for YAML)")
	fs.StringVar(&opts.batch, "batch", "", "calculate all plants in the xlsx `file`")
	fs.StringVar(&opts.xlsxOut, "xlsx", "", "write batch results to the xlsx `file` instead of CSV on stdout")
	fs.StringVar(&opts.pdfOut, "pdf", "", "also write a PDF report to `file`")
	fs.StringVar(&opts.sweep, "sweep", "", "print chart data for heads `from:to:step` in the head unit")
	fs.IntVar(&opts.precision, "precision", envInt("HYDROCALC_PRECISION", hydroreport.DefaultPrecision), "number of decimal places to show")
	fs.BoolVar(&opts.color, "color", false, "print results as a table, in colour on a terminal")
	fs.StringVar(&opts.logSpec, "log", os.Getenv("HYDROCALC_LOG"), "logging configuration (e.g. \"<root>=DEBUG\")")
	if err := fs.Parse(args); err != nil {
		return errgo.WithCausef(err, errUsage, "")
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errUsage
	}
	if opts.logSpec != "" {
		if err := loggo.ConfigureLoggers(opts.logSpec); err != nil {
			return errgo.Notef(err, "invalid -log value")
		}
	}
	if opts.batch != "" {
		return runBatch(opts, stdout)
	}
	// Flags given explicitly take precedence over the file,
	// so note them before reading it.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	cfg := &hydroconfig.Config{
		Params: def,
	}
	if opts.file != "" {
		var err error
		cfg, err = readConfig(opts.file)
		if err != nil {
			return errgo.Mask(err)
		}
	}
	applyFlags(&cfg.Params, params, units.discharge, units.velocity, units.head, set)
	if set["name"] {
		cfg.Name = opts.name
	}
	plant, err := hydroreport.NewPlant(cfg.Name, cfg.Params)
	if err != nil {
		return errgo.Mask(err)
	}
	if opts.sweep != "" {
		return writeSweep(stdout, cfg.Params, opts.sweep)
	}
	if opts.color {
		err = hydroreport.WriteTable(stdout, []hydroreport.Plant{plant}, opts.precision)
	} else {
		err = hydroreport.WriteText(stdout, plant, opts.precision)
	}
	if err != nil {
		return errgo.Notef(err, "cannot write results")
	}
	if opts.pdfOut != "" {
		if err := writeFile(opts.pdfOut, func(w io.Writer) error {
			return hydroreport.WritePDF(w, plant, hydroreport.PDFParams{
				Precision: opts.precision,
			})
		}); err != nil {
			return errgo.Mask(err)
		}
		logger.Infof("wrote PDF report to %s", opts.pdfOut)
	}
	return nil
}

func applyFlags(p *hydrocalc.Params, fp hydrocalc.Params, dischargeUnit, velocityUnit, headUnit string, set map[string]bool) {
	if set["discharge"] {
		p.Discharge = fp.Discharge
	}
	if set["discharge-unit"] {
		p.DischargeUnit = hydrocalc.ParseDischargeUnit(dischargeUnit)
	}
	if set["velocity"] {
		p.Velocity = fp.Velocity
	}
	if set["velocity-unit"] {
		p.VelocityUnit = hydrocalc.ParseVelocityUnit(velocityUnit)
	}
	if set["head"] {
		p.Head = fp.Head
	}
	if set["head-unit"] {
		p.HeadUnit = hydrocalc.ParseHeadUnit(headUnit)
	}
	if set["turbine-eff"] {
		p.TurbineEfficiency = fp.TurbineEfficiency
	}
	if set["generator-eff"] {
		p.GeneratorEfficiency = fp.GeneratorEfficiency
	}
}

func readConfig(path string) (*hydroconfig.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Notef(err, "cannot read plant description")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err := hydroconfig.ParseYAML(data)
		if err != nil {
			return nil, errgo.Notef(err, "%s", path)
		}
		return cfg, nil
	}
	cfg, err := hydroconfig.Parse(string(data))
	if err != nil {
		if perr, ok := err.(*hydroconfig.ConfigParseError); ok {
			return nil, errgo.Newf("%s", formatParseError(path, perr))
		}
		return nil, errgo.Notef(err, "%s", path)
	}
	return cfg, nil
}

// formatParseError formats all the errors in perr,
// one per line, prefixed with their file positions.
func formatParseError(path string, perr *hydroconfig.ConfigParseError) string {
	lines := make([]string, len(perr.Errors))
	for i, e := range perr.Errors {
		before := perr.Config[:e.P0]
		line := strings.Count(before, "\n") + 1
		col := e.P0 - strings.LastIndex(before, "\n")
		lines[i] = fmt.Sprintf("%s:%d:%d: %s", path, line, col, e.Message)
	}
	return strings.Join(lines, "\n")
}

func runBatch(opts options, stdout io.Writer) error {
	f, err := os.Open(opts.batch)
	if err != nil {
		return errgo.Notef(err, "cannot open batch file")
	}
	defer f.Close()
	cfgs, err := hydroconfig.ReadSheet(f)
	if err != nil {
		if _, ok := err.(*hydroconfig.SheetError); !ok || len(cfgs) == 0 {
			return errgo.Notef(err, "cannot read %s", opts.batch)
		}
		// The invalid rows have been logged; carry on with the rest.
	}
	plants := make([]hydroreport.Plant, len(cfgs))
	for i, cfg := range cfgs {
		plants[i], err = hydroreport.NewPlant(cfg.Name, cfg.Params)
		if err != nil {
			return errgo.Notef(err, "plant %q", cfg.Name)
		}
	}
	logger.Infof("calculated %d plants from %s", len(plants), opts.batch)
	switch {
	case opts.xlsxOut != "":
		return writeFile(opts.xlsxOut, func(w io.Writer) error {
			return hydroreport.WriteSheet(w, plants)
		})
	case opts.color:
		return hydroreport.WriteTable(stdout, plants, opts.precision)
	}
	return hydroreport.WriteCSV(stdout, plants, opts.precision)
}

func writeSweep(w io.Writer, p hydrocalc.Params, spec string) error {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return errgo.Newf("invalid -sweep value %q; want from:to:step", spec)
	}
	var vals [3]float64
	for i, s := range parts {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errgo.Newf("invalid -sweep value %q; want from:to:step", spec)
		}
		vals[i] = v
	}
	points, err := hydroreport.Sweep(p, vals[0], vals[1], vals[2])
	if err != nil {
		return errgo.Mask(err)
	}
	data, err := json.MarshalIndent(hydroreport.SweepTable(points), "", "\t")
	if err != nil {
		return errgo.Mask(err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeFile creates the named file and calls write to fill it.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errgo.Mask(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errgo.Notef(cerr, "cannot close %s", path)
		}
	}()
	if err := write(f); err != nil {
		return errgo.Notef(err, "cannot write %s", path)
	}
	return nil
}

func envInt(name string, def int) int {
	s := os.Getenv(name)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		logger.Warningf("ignoring invalid $%s %q", name, s)
		return def
	}
	return n
}
