package plan

import (
	"fmt"
	"math"
)

// ValidationSeverity indicates whether a validation finding blocks
// tessellation or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks tessellation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Cut      int                // index of the offending cut, -1 if plan-level
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Cut < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] cut %d: %s", e.Severity, e.Cut, e.Message)
}

// Validate checks p and returns every finding. A plan with no
// error-severity findings can be tessellated. Validate never mutates p.
func Validate(p *Plan) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateStock(p)...)
	errs = append(errs, validateCuts(p)...)
	errs = append(errs, validateNames(p)...)
	return errs
}

// HasErrors reports whether errs contains an error-severity finding.
func HasErrors(errs []ValidationError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

func validateStock(p *Plan) []ValidationError {
	if !finite(p.Stock.Size) || p.Stock.Size <= 0 {
		return []ValidationError{{
			Cut:      -1,
			Message:  fmt.Sprintf("stock size must be positive, got %g", p.Stock.Size),
			Severity: SeverityError,
		}}
	}
	return nil
}

func validateCuts(p *Plan) []ValidationError {
	var errs []ValidationError
	half := p.Stock.Size / 2
	// Farthest a stock point can be from the origin.
	reach := half * math.Sqrt(3)

	for i, c := range p.Cuts {
		if !finiteVec(c.Point) || !finiteVec(c.Normal) || !finite(c.Extent) {
			errs = append(errs, ValidationError{Cut: i, Message: "non-finite value", Severity: SeverityError})
			continue
		}
		n := c.Normal.Length()
		if n == 0 {
			errs = append(errs, ValidationError{Cut: i, Message: "normal is the zero vector", Severity: SeverityError})
			continue
		}
		if c.Extent <= 0 {
			errs = append(errs, ValidationError{
				Cut:      i,
				Message:  fmt.Sprintf("extent must be positive, got %g", c.Extent),
				Severity: SeverityError,
			})
			continue
		}

		// Signed offset of the cut plane from the origin along its unit normal.
		offset := (c.Point.X*c.Normal.X + c.Point.Y*c.Normal.Y + c.Point.Z*c.Normal.Z) / n
		if offset <= -reach {
			errs = append(errs, ValidationError{
				Cut:      i,
				Message:  "cut removes the whole stock",
				Severity: SeverityWarning,
			})
		} else if offset >= reach {
			errs = append(errs, ValidationError{
				Cut:      i,
				Message:  "cut misses the stock",
				Severity: SeverityWarning,
			})
		}

		// The slab is a square of half-width extent; if it cannot span the
		// stock's cross-section the cap comes out short.
		if dist := c.Point.Length(); c.Extent < dist+reach {
			errs = append(errs, ValidationError{
				Cut:      i,
				Message:  fmt.Sprintf("extent %g may not cover the stock from %s", c.Extent, c.Point),
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}

func validateNames(p *Plan) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int)
	for i, c := range p.Cuts {
		if c.Name == "" {
			continue
		}
		if first, ok := seen[c.Name]; ok {
			errs = append(errs, ValidationError{
				Cut:      i,
				Message:  fmt.Sprintf("duplicate name %q (first used by cut %d)", c.Name, first),
				Severity: SeverityError,
			})
			continue
		}
		seen[c.Name] = i
	}
	return errs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteVec(v Vec3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}
