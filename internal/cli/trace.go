package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
	"github.com/ThanhNguyxn/vietflux-ime/internal/testutil"
	"github.com/ThanhNguyxn/vietflux-ime/internal/trace"
)

// TraceOptions holds flags shared by the trace subcommands.
type TraceOptions struct {
	*RootOptions
	Database string
}

// NewTraceCommand creates the trace command group.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Record and replay typing sessions",
	}
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite trace database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newTraceRecordCommand(opts))
	cmd.AddCommand(newTraceReplayCommand(opts))
	cmd.AddCommand(newTraceListCommand(opts))

	return cmd
}

// RecordResult is the trace record payload.
type RecordResult struct {
	SessionID string `json:"session_id"`
	Keys      int    `json:"keys"`
	Text      string `json:"text"`
}

func newTraceRecordCommand(opts *TraceOptions) *cobra.Command {
	var engine EngineFlags

	cmd := &cobra.Command{
		Use:   "record <keys>",
		Short: "Run a key script and record the session",
		Long: `Run a key script through a fresh engine, recording every keystroke to
the trace database. Prints the session id for later replay.

Example:
  vietflux trace record --db traces.db 'xin chaof '`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceRecord(opts, &engine, args[0], cmd)
		},
	}
	engine.Register(cmd)
	return cmd
}

func runTraceRecord(opts *TraceOptions, engine *EngineFlags, script string, cmd *cobra.Command) error {
	formatter := traceFormatter(opts, cmd)

	events, err := testutil.ParseScript(script)
	if err != nil {
		formatter.Error("bad-script", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid key script", err)
	}
	engOpts, err := engine.Options(opts.Verbose, cmd.ErrOrStderr())
	if err != nil {
		formatter.Error("bad-config", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid engine configuration", err)
	}

	store, err := trace.Open(opts.Database)
	if err != nil {
		formatter.Error("bad-db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	rec, err := trace.NewRecorder(ctx, store, vietflux.New(engOpts...))
	if err != nil {
		formatter.Error("bad-db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to begin session", err)
	}

	screen := &testutil.Screen{}
	for _, ev := range events {
		res, err := rec.ProcessKey(ctx, ev)
		if err != nil {
			formatter.Error("write-failed", err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to record keystroke", err)
		}
		screen.Apply(res)
	}

	result := RecordResult{
		SessionID: rec.Engine().SessionID(),
		Keys:      len(events),
		Text:      screen.String(),
	}
	text := fmt.Sprintf("recorded session %s (%d keys)\n%s", result.SessionID, result.Keys, result.Text)
	return formatter.SuccessText(text, result)
}

// ReplayResult is the trace replay payload.
type ReplayResult struct {
	SessionID  string `json:"session_id"`
	Keys       int    `json:"keys"`
	Divergence string `json:"divergence,omitempty"`
}

func newTraceReplayCommand(opts *TraceOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <session-id>",
		Short: "Re-run a recorded session and check determinism",
		Long: `Re-run a recorded session through a fresh engine and compare every
keystroke against the recording. A divergence means the engine no longer
reproduces the recorded behavior; exit code 1.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceReplay(opts, args[0], cmd)
		},
	}
	return cmd
}

func runTraceReplay(opts *TraceOptions, sessionID string, cmd *cobra.Command) error {
	formatter := traceFormatter(opts, cmd)

	store, err := trace.Open(opts.Database)
	if err != nil {
		formatter.Error("bad-db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	count, err := store.CountEvents(ctx, sessionID)
	if err != nil {
		formatter.Error("bad-db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to read session", err)
	}

	div, err := trace.Replay(ctx, store, sessionID)
	if err != nil {
		formatter.Error("replay-error", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to replay session", err)
	}

	result := ReplayResult{SessionID: sessionID, Keys: count}
	if div != nil {
		result.Divergence = div.String()
		formatter.Error("diverged", div.String(), result)
		return NewExitError(ExitFailure, "replay diverged from recording")
	}
	text := fmt.Sprintf("session %s replayed cleanly (%d keys)", sessionID, count)
	return formatter.SuccessText(text, result)
}

// SessionSummary is one row of the trace list payload.
type SessionSummary struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Method    string `json:"method"`
	Style     string `json:"style"`
	Keys      int    `json:"keys"`
}

func newTraceListCommand(opts *TraceOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List recorded sessions, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceList(opts, cmd)
		},
	}
	return cmd
}

func runTraceList(opts *TraceOptions, cmd *cobra.Command) error {
	formatter := traceFormatter(opts, cmd)

	store, err := trace.Open(opts.Database)
	if err != nil {
		formatter.Error("bad-db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open trace database", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	sessions, err := store.ListSessions(ctx)
	if err != nil {
		formatter.Error("bad-db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to list sessions", err)
	}

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		count, err := store.CountEvents(ctx, sess.ID)
		if err != nil {
			formatter.Error("bad-db", err.Error(), nil)
			return WrapExitError(ExitCommandError, "failed to count events", err)
		}
		summaries = append(summaries, SessionSummary{
			ID:        sess.ID,
			CreatedAt: sess.CreatedAt.Format(time.RFC3339),
			Method:    sess.Method,
			Style:     sess.Style,
			Keys:      count,
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d sessions", len(summaries))
	for _, s := range summaries {
		fmt.Fprintf(&b, "\n%s  %s  %s/%s  %d keys", s.ID, s.CreatedAt, s.Method, s.Style, s.Keys)
	}
	return formatter.SuccessText(b.String(), summaries)
}

func traceFormatter(opts *TraceOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
