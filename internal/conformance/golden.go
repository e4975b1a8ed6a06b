package conformance

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the report summary against
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/conformance -update
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(report.Summary()))
}
