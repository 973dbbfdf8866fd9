package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// TestEvent is one line of `go test -json` output.
type TestEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test,omitempty"`
	Output  string  `json:"Output,omitempty"`
	Elapsed float64 `json:"Elapsed,omitempty"`
}

const (
	StatusPass    = "pass"
	StatusFail    = "fail"
	StatusSkip    = "skip"
	StatusUnknown = "unknown"
)

type PackageResult struct {
	Status      string   `json:"status"` // pass|fail|skip|unknown
	FailedTests []string `json:"failed_tests,omitempty"`
}

// LoadPackages reads a packages list file, one package per line.
func LoadPackages(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read packages %s: %w", path, err)
	}
	var pkgs []string
	for _, l := range strings.Split(string(b), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			pkgs = append(pkgs, l)
		}
	}
	return pkgs, nil
}

type Collector struct {
	ignored map[string]struct{}
	results map[string]*PackageResult
}

func New(ignored map[string]struct{}) *Collector {
	if ignored == nil {
		ignored = map[string]struct{}{}
	}
	return &Collector{
		ignored: ignored,
		results: map[string]*PackageResult{},
	}
}

// Expect prefills pkg so it shows up even if no events were emitted for it.
func (c *Collector) Expect(pkg string) {
	if pkg == "" {
		return
	}
	if _, ok := c.ignored[pkg]; ok {
		return
	}
	if _, ok := c.results[pkg]; !ok {
		c.results[pkg] = &PackageResult{Status: StatusUnknown}
	}
}

// Consume reads go test -json events from r until EOF.
func (c *Collector) Consume(r io.Reader) error {
	sc := bufio.NewScanner(r)
	// go test output lines can be large (panic stacktrace, long logs)
	sc.Buffer(make([]byte, 1024), 10*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}

		var ev TestEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			// ignore non-json garbage lines
			continue
		}
		c.Add(ev)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}
	return nil
}

func (c *Collector) Add(ev TestEvent) {
	if ev.Package == "" {
		return
	}
	if _, ok := c.ignored[ev.Package]; ok {
		return
	}
	c.Expect(ev.Package)
	res := c.results[ev.Package]

	// package-level result: Action pass/fail/skip and empty Test
	if ev.Test == "" {
		switch ev.Action {
		case StatusPass:
			res.Status = StatusPass
		case StatusFail:
			res.Status = StatusFail
		case StatusSkip:
			if res.Status == StatusUnknown {
				res.Status = StatusSkip
			}
		}
		return
	}

	if ev.Action == StatusFail {
		res.FailedTests = append(res.FailedTests, ev.Test)
	}
}

func (c *Collector) Results() map[string]*PackageResult {
	return c.results
}

// Failed reports whether any package failed or has failed tests.
func (c *Collector) Failed() bool {
	for _, r := range c.results {
		if r.Status == StatusFail || len(r.FailedTests) > 0 {
			return true
		}
	}
	return false
}

func Write(w io.Writer, results map[string]*PackageResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
