package harness

import "fmt"

// evaluateExpect checks a scenario's expectations against the finished run,
// returning one message per failed check. An empty slice means pass.
func evaluateExpect(exp *Expect, result *Result) []string {
	var errs []string

	if result.FinalText != exp.Text {
		errs = append(errs, fmt.Sprintf("final text = %q, want %q", result.FinalText, exp.Text))
	}
	if exp.Buffer != nil && result.FinalBuffer != *exp.Buffer {
		errs = append(errs, fmt.Sprintf("final buffer = %q, want %q", result.FinalBuffer, *exp.Buffer))
	}

	for i, step := range exp.Steps {
		ev := findStep(result.Trace, step.Seq)
		if ev == nil {
			errs = append(errs, fmt.Sprintf("steps[%d]: no keystroke with seq %d", i, step.Seq))
			continue
		}
		if step.Action != "" && ev.Action != step.Action {
			errs = append(errs, fmt.Sprintf("seq %d: action = %s, want %s", step.Seq, ev.Action, step.Action))
		}
		if step.Output != nil && ev.Output != *step.Output {
			errs = append(errs, fmt.Sprintf("seq %d: output = %q, want %q", step.Seq, ev.Output, *step.Output))
		}
		if step.Backspace != nil && ev.Backspace != *step.Backspace {
			errs = append(errs, fmt.Sprintf("seq %d: backspace = %d, want %d", step.Seq, ev.Backspace, *step.Backspace))
		}
		if step.Buffer != nil && ev.Buffer != *step.Buffer {
			errs = append(errs, fmt.Sprintf("seq %d: buffer = %q, want %q", step.Seq, ev.Buffer, *step.Buffer))
		}
	}

	return errs
}

// findStep locates the trace event for a seq, nil when the script was too
// short to reach it.
func findStep(trace []TraceEvent, seq int64) *TraceEvent {
	for i := range trace {
		if trace[i].Seq == seq {
			return &trace[i]
		}
	}
	return nil
}
