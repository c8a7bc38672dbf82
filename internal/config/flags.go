package config

import (
	"flag"
	"strconv"
)

// Flags holds the command-line flags. Inputs (script, plan) live here
// too; they are not part of Config because they name the job, not how
// to run it.
type Flags struct {
	Config string
	Script string
	Plan   string
	Kernel string
	Out    string
	Format string
	Random int
	Seed   int64
	Debug  bool

	seedSet bool
}

// RegisterFlags defines the facet flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.StringVar(&f.Script, "script", "", "Cut script to evaluate")
	fs.StringVar(&f.Plan, "plan", "", "YAML plan to tessellate")
	fs.StringVar(&f.Kernel, "kernel", "", "Geometry kernel: halfspace, sdfx or manifold")
	fs.StringVar(&f.Out, "out", "", "Output file (default: JSON on stdout)")
	fs.StringVar(&f.Format, "format", "", "Output format: stl or json")
	fs.IntVar(&f.Random, "random", 0, "Number of random cuts")
	fs.Func("seed", "Random seed", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		f.Seed, f.seedSet = v, true
		return nil
	})
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	return f
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Kernel != "" {
		cfg.Kernel.Name = f.Kernel
	}
	if f.Out != "" {
		cfg.Output.Path = f.Out
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.Random > 0 {
		cfg.Random.Cuts = f.Random
	}
	if f.seedSet {
		cfg.Random.Seed = f.Seed
	}
}
