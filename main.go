// Command facet cuts a cube of stock into a faceted polyhedron and writes
// the mesh as STL or JSON.
//
// The cuts come from a cut script (-script), a YAML plan (-plan), or, when
// neither is given, a seeded random plan (-random, -seed).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/chazu/facet/internal/config"
	"github.com/chazu/facet/internal/logger"
	"github.com/chazu/facet/pkg/export"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/kernel/halfspace"
	"github.com/chazu/facet/pkg/kernel/manifold"
	"github.com/chazu/facet/pkg/kernel/sdfx"
	"github.com/chazu/facet/pkg/plan"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("facet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "facet: %v\n", err)
		return 1
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "facet: logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if err := facet(cfg, flags, stdout); err != nil {
		logger.Error("facet failed", zap.Error(err))
		fmt.Fprintf(stderr, "facet: %v\n", err)
		return 1
	}
	return 0
}

func facet(cfg *config.Config, flags *config.Flags, stdout io.Writer) error {
	k, err := newKernel(cfg.Kernel)
	if err != nil {
		return err
	}
	app := NewAppWithKernel(k)

	p, err := loadPlan(app, cfg, flags)
	if err != nil {
		return err
	}

	res, err := app.Facet(p)
	if err != nil {
		return err
	}
	if res.Mesh.IsEmpty() {
		logger.Warn("every cut together removed the whole stock", zap.String("plan", res.Mesh.Name))
	}

	if cfg.Output.Path == "" {
		return export.WriteJSON(stdout, res.Mesh)
	}
	def, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	format := def
	if flags.Format == "" {
		format = export.FormatFromPath(cfg.Output.Path, def)
	}
	if err := export.WriteFile(cfg.Output.Path, format, res.Mesh); err != nil {
		return err
	}
	logger.Info("wrote mesh",
		zap.String("path", cfg.Output.Path),
		zap.String("format", string(format)),
		zap.Int("triangles", res.Mesh.TriangleCount()),
	)
	return nil
}

// loadPlan picks the job source: script, then plan file, then random.
func loadPlan(app *App, cfg *config.Config, flags *config.Flags) (*plan.Plan, error) {
	switch {
	case flags.Script != "" && flags.Plan != "":
		return nil, errors.New("-script and -plan are mutually exclusive")

	case flags.Script != "":
		src, err := os.ReadFile(flags.Script)
		if err != nil {
			return nil, err
		}
		p, errs := app.Compile(string(src))
		if errs != nil {
			return nil, fmt.Errorf("%s: %s", flags.Script, formatErrors(errs))
		}
		if p.Name == "" {
			p.Name = flags.Script
		}
		return p, nil

	case flags.Plan != "":
		return plan.Load(flags.Plan)
	}

	rc := cfg.Random
	opts := plan.RandomOptions{
		StockSize:   rc.StockSize,
		MinDepth:    rc.MinDepth,
		DepthJitter: rc.DepthJitter,
		Extent:      rc.Extent,
	}
	if rc.Cuts > 0 {
		opts.MinCuts = rc.Cuts
	}
	logger.Debug("random plan", zap.Int64("seed", rc.Seed), zap.Int("cuts", rc.Cuts))
	return plan.Random(rand.New(rand.NewSource(rc.Seed)), opts), nil
}

// newKernel builds the configured geometry backend.
func newKernel(kc config.KernelConfig) (kernel.Kernel, error) {
	switch kc.Name {
	case "", "halfspace":
		return halfspace.New(), nil
	case "sdfx":
		return sdfx.NewWithCells(kc.SdfxCells), nil
	case "manifold":
		return manifold.New()
	}
	return nil, fmt.Errorf("unknown kernel %q (want halfspace, sdfx or manifold)", kc.Name)
}

func formatErrors(errs []EvalErrorData) string {
	e := errs[0]
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if len(errs) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(errs)-1)
	}
	return msg
}
