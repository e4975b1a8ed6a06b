package conformance

import (
	"fmt"
	"strings"
)

// Bridge names one integration surface of tagid.ID.
type Bridge string

const (
	BridgeJSON Bridge = "json"
	BridgeYAML Bridge = "yaml"
	BridgeText Bridge = "text"
	BridgeCUE  Bridge = "cue"
	BridgeSQL  Bridge = "sql"
	BridgeFake Bridge = "fake"
)

// Bridges lists every bridge in report order.
var Bridges = []Bridge{BridgeJSON, BridgeYAML, BridgeText, BridgeCUE, BridgeSQL, BridgeFake}

// Result is the outcome of one bridge check for one representation.
type Result struct {
	Repr    string `json:"repr"`
	Bridge  Bridge `json:"bridge"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Status is "ok", "skip" or "FAIL".
func (r Result) Status() string {
	switch {
	case r.Skipped:
		return "skip"
	case r.OK:
		return "ok"
	}
	return "FAIL"
}

// Report collects the results of one run.
type Report struct {
	// Backend is the dialect name the SQL checks ran against, empty when
	// no database was configured.
	Backend string   `json:"backend"`
	Pass    bool     `json:"pass"`
	Results []Result `json:"results"`
}

// NewReport creates a passing, empty report.
func NewReport(backend string) *Report {
	return &Report{Backend: backend, Pass: true, Results: []Result{}}
}

// Add appends r and marks the report failed if r failed.
func (rep *Report) Add(r Result) {
	rep.Results = append(rep.Results, r)
	if !r.OK && !r.Skipped {
		rep.Pass = false
	}
}

// Failures returns the results that neither passed nor were skipped.
func (rep *Report) Failures() []Result {
	var out []Result
	for _, r := range rep.Results {
		if r.Status() == "FAIL" {
			out = append(out, r)
		}
	}
	return out
}

// Summary renders one line per representation with the status of each
// bridge, followed by PASS or FAIL.
func (rep *Report) Summary() string {
	var b strings.Builder
	backend := rep.Backend
	if backend == "" {
		backend = "none"
	}
	fmt.Fprintf(&b, "backend %s\n", backend)

	var line []string
	current := ""
	flush := func() {
		if current != "" {
			fmt.Fprintf(&b, "%-8s %s\n", current, strings.Join(line, " "))
		}
	}
	for _, r := range rep.Results {
		if r.Repr != current {
			flush()
			current, line = r.Repr, nil
		}
		line = append(line, string(r.Bridge)+":"+r.Status())
	}
	flush()

	if rep.Pass {
		b.WriteString("PASS\n")
	} else {
		b.WriteString("FAIL\n")
	}
	return b.String()
}
