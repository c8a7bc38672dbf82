package engine

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEvaluateNoCuts(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  \n  "},
		{"arithmetic", "(+ 1 2)"},
		{"definitions", "(def x 10)\n(def y 20)\n(+ x y)\n"},
		{"comment only", "; nothing to cut\n"},
	}

	eng := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, evalErrs, err := eng.Evaluate(tt.source)
			if err != nil {
				t.Fatalf("fatal error: %v", err)
			}
			if len(evalErrs) > 0 {
				t.Fatalf("eval errors: %v", evalErrs)
			}
			if p == nil {
				t.Fatal("plan is nil")
			}
			if len(p.Cuts) != 0 {
				t.Errorf("got %d cuts, want none", len(p.Cuts))
			}
		})
	}
}

func TestEvaluateUserErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unmatched paren", "(+ 1 2"},
		{"undefined symbol", "(+ 1 undefined-symbol)"},
		{"error on second line", "(+ 1 2)\n(+ 3"},
	}

	eng := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, evalErrs, err := eng.Evaluate(tt.source)
			if err != nil {
				t.Fatalf("want eval error, got fatal: %v", err)
			}
			if p != nil {
				t.Error("plan should be nil")
			}
			if len(evalErrs) == 0 {
				t.Fatal("no eval errors")
			}
			if evalErrs[0].Message == "" {
				t.Error("empty message")
			}
			if evalErrs[0].Line > 0 {
				t.Logf("line %d: %s", evalErrs[0].Line, evalErrs[0].Message)
			}
		})
	}
}

func TestEvalErrorString(t *testing.T) {
	s := EvalError{Line: 5, Message: "something went wrong"}.Error()
	if !strings.Contains(s, "line 5") || !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() = %q", s)
	}
	if s := (EvalError{Message: "no location"}).Error(); strings.Contains(s, "line") {
		t.Errorf("Error() without a line = %q", s)
	}
}

func TestEvaluateRepeatable(t *testing.T) {
	eng := NewEngine()
	for i := 0; i < 5; i++ {
		p, evalErrs, err := eng.Evaluate(`(cut :at (vec3 0 0 1) :normal (vec3 0 0 1))`)
		if err != nil || len(evalErrs) > 0 {
			t.Fatalf("run %d: %v %v", i, err, evalErrs)
		}
		if len(p.Cuts) != 1 {
			t.Errorf("run %d: %d cuts", i, len(p.Cuts))
		}
		if p.Version != uint64(i+1) {
			t.Errorf("run %d: version = %d", i, p.Version)
		}
	}
	if eng.Generation() != 5 {
		t.Errorf("generation = %d, want 5", eng.Generation())
	}
}

func TestWaitTimesOut(t *testing.T) {
	// zygomys has no cheap way to spin forever inside the sandbox, so drive
	// the wait directly with a channel nobody sends on.
	var mu sync.Mutex
	gen := uint64(1)
	never := make(chan evalResult)

	done := make(chan error, 1)
	go func() {
		_, _, err := waitWithTimeout(never, 1, &mu, &gen)
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "timed out") {
			t.Errorf("err = %v, want timeout", err)
		}
	case <-time.After(EvalTimeout + 2*time.Second):
		t.Fatal("wait never returned")
	}
}

func TestWaitDiscardsSuperseded(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(2)
	ch := make(chan evalResult, 1)
	ch <- evalResult{}

	if _, _, err := waitWithTimeout(ch, 1, &mu, &gen); !errors.Is(err, ErrSuperseded) {
		t.Errorf("err = %v, want ErrSuperseded", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		msg      string
		wantLine int
		wantMsg  string
	}{
		{"Error on line 5: unexpected token\n", 5, "unexpected token"},
		{"some generic error", 0, "some generic error"},
		{"line 3: bad vec3", 3, "bad vec3"},
		{"error on line 12: missing paren", 12, "missing paren"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			errs := parseZygomysError(errors.New(tt.msg))
			if len(errs) == 0 {
				t.Fatal("no errors")
			}
			if errs[0].Line != tt.wantLine {
				t.Errorf("line = %d, want %d", errs[0].Line, tt.wantLine)
			}
			if !strings.Contains(errs[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want %q", errs[0].Message, tt.wantMsg)
			}
		})
	}
}
