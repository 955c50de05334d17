package harness

// TraceEvent records one keystroke: what was typed, what the engine said to
// do, and what the screen showed afterwards.
type TraceEvent struct {
	Seq       int64  `json:"seq"`
	Key       string `json:"key"`
	Action    string `json:"action"`
	Output    string `json:"output,omitempty"`
	Backspace int    `json:"backspace,omitempty"`
	Buffer    string `json:"buffer,omitempty"`
	Text      string `json:"text"`
}

// Result is the outcome of one scenario run.
type Result struct {
	// Pass is true when every expectation held.
	Pass bool `json:"pass"`

	// Trace holds one event per keystroke, in script order.
	Trace []TraceEvent `json:"trace"`

	// Errors lists failed expectations; empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// FinalText and FinalBuffer are the values the expectations were
	// checked against, kept for reports.
	FinalText   string `json:"final_text"`
	FinalBuffer string `json:"final_buffer,omitempty"`
}

// NewResult creates an empty passing result.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []TraceEvent{},
	}
}

// AddError records a failed expectation and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
