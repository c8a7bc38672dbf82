package main

import (
	"github.com/chazu/facet/internal/logger"
	"github.com/chazu/facet/pkg/engine"
	"github.com/chazu/facet/pkg/export"
	"github.com/chazu/facet/pkg/kernel"
	"github.com/chazu/facet/pkg/kernel/halfspace"
	"github.com/chazu/facet/pkg/plan"
	"github.com/chazu/facet/pkg/tessellate"
	"go.uber.org/zap"
)

// App ties the script engine to a geometry kernel. Every result it
// returns is JSON-serializable.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	log    *zap.Logger
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Cut     int    `json:"cut"` // index of the cut concerned, -1 if none
	Message string `json:"message"`
}

// StatsData summarizes a tessellation run.
type StatsData struct {
	Kernel    string  `json:"kernel"`
	Cuts      int     `json:"cuts"`
	Triangles int     `json:"triangles"`
	ElapsedMS float64 `json:"elapsedMs"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Mesh     *export.MeshData `json:"mesh"`
	Stats    StatsData        `json:"stats"`
	Errors   []EvalErrorData  `json:"errors"`
	Warnings []EvalErrorData  `json:"warnings"`
}

// NewApp creates a new App with an engine and the halfspace kernel.
func NewApp() *App {
	return NewAppWithKernel(halfspace.New())
}

// NewAppWithKernel creates a new App cutting with k.
func NewAppWithKernel(k kernel.Kernel) *App {
	return &App{
		engine: engine.NewEngine(),
		kernel: k,
		log:    logger.Named("app").With(zap.String("kernel", k.Name())),
	}
}

// Compile evaluates a cut script into a plan. On failure the plan is nil
// and the errors say why.
func (a *App) Compile(source string) (*plan.Plan, []EvalErrorData) {
	p, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.log.Error("evaluate fatal error", zap.Error(err))
		return nil, []EvalErrorData{{Cut: -1, Message: err.Error()}}
	}

	if len(evalErrs) > 0 {
		errs := make([]EvalErrorData, 0, len(evalErrs))
		for _, e := range evalErrs {
			errs = append(errs, EvalErrorData{Line: e.Line, Col: e.Col, Cut: -1, Message: e.Message})
		}
		a.log.Debug("script rejected", zap.Int("errors", len(errs)), zap.String("first", errs[0].Message))
		return nil, errs
	}

	a.log.Debug("script compiled", zap.Uint64("generation", p.Version), zap.Int("cuts", len(p.Cuts)))
	return p, nil
}

// Facet tessellates a plan with the app's kernel.
func (a *App) Facet(p *plan.Plan) (*tessellate.Result, error) {
	res, err := tessellate.Run(p, a.kernel)
	if err != nil {
		a.log.Error("tessellate failed", zap.Error(err))
		return nil, err
	}
	for _, w := range res.Warnings {
		a.log.Warn("plan warning", zap.Int("cut", w.Cut), zap.String("message", w.Message))
	}
	a.log.Info("faceted",
		zap.String("plan", res.Mesh.Name),
		zap.Int("cuts", len(res.Stats.Cuts)),
		zap.Int("triangles", res.Stats.Triangles),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)
	return res, nil
}

// Evaluate takes cut-script source and returns mesh data + errors.
func (a *App) Evaluate(source string) EvalResult {
	p, errs := a.Compile(source)
	if errs != nil {
		return EvalResult{Errors: errs, Warnings: []EvalErrorData{}}
	}
	return a.EvaluatePlan(p)
}

// EvaluatePlan tessellates p and returns mesh data + errors.
func (a *App) EvaluatePlan(p *plan.Plan) EvalResult {
	result := EvalResult{
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	res, err := a.Facet(p)
	if err != nil {
		result.Errors = append(result.Errors, EvalErrorData{
			Cut:     -1,
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Cut: w.Cut, Message: w.Message})
	}
	md := export.NewMeshData(res.Mesh)
	result.Mesh = &md
	result.Stats = StatsData{
		Kernel:    res.Stats.Kernel,
		Cuts:      len(res.Stats.Cuts),
		Triangles: res.Stats.Triangles,
		ElapsedMS: float64(res.Stats.Elapsed.Microseconds()) / 1000,
	}
	return result
}
