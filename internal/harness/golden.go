package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot is the golden-file shape: the scenario's identity and
// configuration plus its full per-key trace.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Method       string       `json:"method,omitempty"`
	Style        string       `json:"style,omitempty"`
	Trace        []TraceEvent `json:"trace"`
}

// RunWithGolden executes a scenario, reports failed expectations on t, and
// compares the trace snapshot against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Errorf("%s: %s", sc.Name, msg)
	}

	return AssertGolden(t, sc, result)
}

// AssertGolden compares an already-run result against the scenario's golden
// fixture.
func AssertGolden(t *testing.T, sc *Scenario, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: sc.Name,
		Method:       sc.Method,
		Style:        sc.Style,
		Trace:        result.Trace,
	}
	data, err := json.MarshalIndent(&snapshot, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, data)

	return nil
}
