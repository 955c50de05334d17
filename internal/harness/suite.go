package harness

// SuiteResult aggregates a batch of scenario files.
type SuiteResult struct {
	Total    int               `json:"total"`
	Passed   int               `json:"passed"`
	Failed   int               `json:"failed"`
	Failures []ScenarioFailure `json:"failures,omitempty"`
}

// ScenarioFailure describes one scenario file that did not pass, whether it
// failed to load, failed to run, or failed its expectations.
type ScenarioFailure struct {
	Path     string   `json:"path"`
	Scenario string   `json:"scenario,omitempty"`
	Errors   []string `json:"errors"`
}

// RunFiles loads and runs each scenario file, collecting failures instead
// of stopping: one broken file reports and the rest still run.
func RunFiles(paths []string) *SuiteResult {
	suite := &SuiteResult{}
	for _, path := range paths {
		suite.Total++

		sc, err := LoadScenario(path)
		if err != nil {
			suite.Failed++
			suite.Failures = append(suite.Failures, ScenarioFailure{
				Path:   path,
				Errors: []string{err.Error()},
			})
			continue
		}

		result, err := Run(sc)
		if err != nil {
			suite.Failed++
			suite.Failures = append(suite.Failures, ScenarioFailure{
				Path:     path,
				Scenario: sc.Name,
				Errors:   []string{err.Error()},
			})
			continue
		}
		if !result.Pass {
			suite.Failed++
			suite.Failures = append(suite.Failures, ScenarioFailure{
				Path:     path,
				Scenario: sc.Name,
				Errors:   result.Errors,
			})
			continue
		}

		suite.Passed++
	}
	return suite
}
