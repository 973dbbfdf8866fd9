package harness

import (
	"errors"
	"fmt"
	"io"

	"bootdev_starter/internal/greeter"
)

const (
	Name     = "hello_world"
	Expected = greeter.Greeting
)

var ErrNoGreeter = errors.New("no greeter to run")

// Greeter produces the value under test.
type Greeter func() string

type Status int

const (
	NotRun Status = iota
	Pass
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	default:
		return "not run"
	}
}

// AssertionMismatchError is returned when the greeter's value differs from Expected.
type AssertionMismatchError struct {
	Want string
	Got  string
}

func (e *AssertionMismatchError) Error() string {
	return fmt.Sprintf("expected %q, got %q", e.Want, e.Got)
}

type Result struct {
	Name   string
	Status Status
	Err    error
}

// ExitCode maps the outcome to a process exit status.
func (r Result) ExitCode() int {
	switch r.Status {
	case Pass:
		return 0
	case Fail:
		return 1
	default:
		return 2
	}
}

// Check calls g once and compares the result with Expected byte for byte.
func Check(g Greeter) error {
	if g == nil {
		return ErrNoGreeter
	}
	got := g()
	if got != Expected {
		return &AssertionMismatchError{Want: Expected, Got: got}
	}
	return nil
}

// Run checks g and writes a one-line report to w. A mismatch is a Fail
// result, never a panic.
func Run(g Greeter, w io.Writer) Result {
	res := Result{Name: Name, Status: Pass}
	if err := Check(g); err != nil {
		res.Status = Fail
		res.Err = err
	}

	if w == nil {
		return res
	}
	if res.Status == Pass {
		fmt.Fprintf(w, "PASS: %s\n", res.Name)
	} else {
		fmt.Fprintf(w, "FAIL: %s: %v\n", res.Name, res.Err)
	}
	return res
}
