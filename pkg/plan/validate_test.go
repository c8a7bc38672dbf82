package plan

import (
	"math"
	"strings"
	"testing"
)

// gem returns a valid plan shaving two corners off the default stock.
func gem() *Plan {
	p := New()
	p.AddCut(Cut{Name: "a", Point: Vec3{1, 1, 1}.Normalized(), Normal: Vec3{1, 1, 1}, Extent: 10})
	p.AddCut(Cut{Name: "b", Point: Vec3{-1, 1, 1}.Normalized(), Normal: Vec3{-1, 1, 1}, Extent: 10})
	return p
}

// hasFinding reports whether errs contains a finding of severity sev for
// cut whose message contains substr.
func hasFinding(errs []ValidationError, sev ValidationSeverity, cut int, substr string) bool {
	for _, e := range errs {
		if e.Severity == sev && e.Cut == cut && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateValidPlan(t *testing.T) {
	if errs := Validate(gem()); len(errs) != 0 {
		t.Errorf("expected no findings, got %v", errs)
	}
}

func TestValidateEmptyPlan(t *testing.T) {
	if errs := Validate(New()); len(errs) != 0 {
		t.Errorf("a plan with no cuts is valid, got %v", errs)
	}
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Plan)
		sev    ValidationSeverity
		cut    int
		substr string
	}{
		{"zero stock", func(p *Plan) { p.Stock.Size = 0 }, SeverityError, -1, "stock size"},
		{"nan stock", func(p *Plan) { p.Stock.Size = math.NaN() }, SeverityError, -1, "stock size"},
		{"zero normal", func(p *Plan) { p.Cuts[1].Normal = Vec3{} }, SeverityError, 1, "zero vector"},
		{"negative extent", func(p *Plan) { p.Cuts[0].Extent = -1 }, SeverityError, 0, "extent must be positive"},
		{"inf point", func(p *Plan) { p.Cuts[0].Point.X = math.Inf(1) }, SeverityError, 0, "non-finite"},
		{"duplicate name", func(p *Plan) { p.Cuts[1].Name = "a" }, SeverityError, 1, "duplicate name"},
		{"misses", func(p *Plan) { p.Cuts[0].Point = Vec3{5, 5, 5} }, SeverityWarning, 0, "misses"},
		{"removes all", func(p *Plan) { p.Cuts[0].Point = Vec3{-5, -5, -5} }, SeverityWarning, 0, "whole stock"},
		{"short extent", func(p *Plan) { p.Cuts[0].Extent = 1 }, SeverityWarning, 0, "may not cover"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := gem()
			tt.mutate(p)
			errs := Validate(p)
			if !hasFinding(errs, tt.sev, tt.cut, tt.substr) {
				t.Errorf("expected %s on cut %d containing %q, got %v", tt.sev, tt.cut, tt.substr, errs)
			}
			if HasErrors(errs) != (tt.sev == SeverityError) {
				t.Errorf("HasErrors = %v for %v", HasErrors(errs), errs)
			}
		})
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	p := gem()
	p.Cuts[0].Normal = Vec3{}
	before := p.Clone()
	Validate(p)
	if p.Cuts[0] != before.Cuts[0] || p.Cuts[1] != before.Cuts[1] {
		t.Error("Validate mutated the plan")
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Cut: 2, Message: "bad", Severity: SeverityError}
	if got := e.Error(); got != "[error] cut 2: bad" {
		t.Errorf("Error() = %q", got)
	}
	e = ValidationError{Cut: -1, Message: "bad", Severity: SeverityWarning}
	if got := e.Error(); got != "[warning] bad" {
		t.Errorf("Error() = %q", got)
	}
	if got := ValidationSeverity(7).String(); got != "ValidationSeverity(7)" {
		t.Errorf("String() = %q", got)
	}
}
