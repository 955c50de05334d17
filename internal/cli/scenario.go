package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThanhNguyxn/vietflux-ime/internal/harness"
)

// NewScenarioCommand creates the scenario command group.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run conformance scenarios",
	}
	cmd.AddCommand(newScenarioRunCommand(rootOpts))
	return cmd
}

func newScenarioRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <files...>",
		Short: "Execute YAML scenario files",
		Long: `Execute YAML conformance scenarios and report pass/fail per file.

Each scenario runs on a fresh engine, so files can be listed in any order.
The exit code is 1 when any scenario fails and 0 when all pass.

Example:
  vietflux scenario run testdata/scenarios/*.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runScenarios(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	suite := harness.RunFiles(paths)

	if suite.Failed > 0 {
		formatter.Error("scenario-failed", suiteText(suite), suite)
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d of %d scenarios failed", suite.Failed, suite.Total))
	}
	return formatter.SuccessText(suiteText(suite), suite)
}

// suiteText renders the human-readable suite report.
func suiteText(suite *harness.SuiteResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d scenarios: %d passed, %d failed", suite.Total, suite.Passed, suite.Failed)
	for _, f := range suite.Failures {
		name := f.Scenario
		if name == "" {
			name = f.Path
		}
		fmt.Fprintf(&b, "\n✗ %s", name)
		for _, msg := range f.Errors {
			fmt.Fprintf(&b, "\n    %s", msg)
		}
	}
	return b.String()
}
