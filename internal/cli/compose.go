package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	vietflux "github.com/ThanhNguyxn/vietflux-ime"
	"github.com/ThanhNguyxn/vietflux-ime/internal/method"
	"github.com/ThanhNguyxn/vietflux-ime/internal/syllable"
	"github.com/ThanhNguyxn/vietflux-ime/internal/testutil"
)

// EngineFlags are the engine-configuration flags shared by compose and
// trace record.
type EngineFlags struct {
	Method     string
	Style      string
	QuickTelex bool
	Shortcuts  string // YAML path, or "default" for the stock table
	Keymap     string // CUE keymap path
}

// Register adds the engine flags to a command.
func (ef *EngineFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ef.Method, "method", "telex", "typing convention (telex|vni|auto)")
	cmd.Flags().StringVar(&ef.Style, "style", "modern", "tone placement style (modern|traditional)")
	cmd.Flags().BoolVar(&ef.QuickTelex, "quick-telex", false, "enable doubled-consonant cluster spellings (cc -> ch)")
	cmd.Flags().StringVar(&ef.Shortcuts, "shortcuts", "", "shortcut table: a YAML file, or 'default' for the stock table")
	cmd.Flags().StringVar(&ef.Keymap, "keymap", "", "custom keymap definition (.cue file)")
}

// Options lowers the flags to engine options. logW receives the engine's
// structured log when verbose is set.
func (ef *EngineFlags) Options(verbose bool, logW io.Writer) ([]vietflux.Option, error) {
	m, err := method.Parse(ef.Method)
	if err != nil {
		return nil, err
	}
	st, ok := syllable.ParseStyle(ef.Style)
	if !ok {
		return nil, fmt.Errorf("unknown tone style %q (want modern or traditional)", ef.Style)
	}

	opts := []vietflux.Option{
		vietflux.WithMethod(m),
		vietflux.WithToneStyle(st),
		vietflux.WithQuickTelex(ef.QuickTelex),
	}

	switch ef.Shortcuts {
	case "":
	case "default":
		opts = append(opts, vietflux.WithShortcuts(vietflux.DefaultShortcuts()))
	default:
		table, err := vietflux.LoadShortcuts(ef.Shortcuts)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vietflux.WithShortcuts(table))
	}

	if ef.Keymap != "" {
		def, err := vietflux.LoadKeymap(ef.Keymap)
		if err != nil {
			return nil, err
		}
		opts = append(opts, vietflux.WithDefinition(*def))
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := logW
	if w == nil {
		w = io.Discard
	}
	opts = append(opts, vietflux.WithLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))))

	return opts, nil
}

// ComposeOptions holds flags for the compose command.
type ComposeOptions struct {
	*RootOptions
	Engine EngineFlags
	Trace  bool
}

// ComposeResult is the compose command's payload.
type ComposeResult struct {
	Text   string      `json:"text"`
	Buffer string      `json:"buffer,omitempty"`
	Trace  []TraceStep `json:"trace,omitempty"`
}

// TraceStep is one keystroke of a compose trace.
type TraceStep struct {
	Seq       int64  `json:"seq"`
	Key       string `json:"key"`
	Action    string `json:"action"`
	Output    string `json:"output,omitempty"`
	Backspace int    `json:"backspace,omitempty"`
	Buffer    string `json:"buffer,omitempty"`
}

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComposeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compose <keys>",
		Short: "Run a key script through the engine",
		Long: `Run a key script through a fresh engine and print the text it produces.

The script is typed key by key; \b is backspace, \e is escape, \\ a literal
backslash. An uncommitted word is flushed at the end of the script, so the
printed text is what a host editor would show after focus loss.

Example:
  vietflux compose 'dduwowcj '
  vietflux compose --method vni 'vie6t5 nam '
  vietflux compose --shortcuts default 'ko '`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(opts, args[0], cmd)
		},
	}

	opts.Engine.Register(cmd)
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the per-keystroke trace")

	return cmd
}

func runCompose(opts *ComposeOptions, script string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	events, err := testutil.ParseScript(script)
	if err != nil {
		formatter.Error("bad-script", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid key script", err)
	}

	engOpts, err := opts.Engine.Options(opts.Verbose, cmd.ErrOrStderr())
	if err != nil {
		formatter.Error("bad-config", err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid engine configuration", err)
	}

	eng := vietflux.New(engOpts...)
	screen := &testutil.Screen{}
	var trace []TraceStep
	for _, ev := range events {
		res := eng.ProcessKey(ev)
		screen.Apply(res)
		if opts.Trace {
			trace = append(trace, TraceStep{
				Seq:       eng.Seq(),
				Key:       ev.String(),
				Action:    res.Action.String(),
				Output:    res.Output,
				Backspace: res.Backspace,
				Buffer:    eng.Buffer(),
			})
		}
	}
	screen.Apply(eng.Flush())

	result := ComposeResult{Text: screen.String(), Buffer: eng.Buffer(), Trace: trace}
	return formatter.SuccessText(composeText(&result), result)
}

// composeText renders the human-readable compose report.
func composeText(r *ComposeResult) string {
	var b strings.Builder
	if len(r.Trace) > 0 {
		for _, step := range r.Trace {
			fmt.Fprintf(&b, "%3d  %-5s %-7s bs=%d out=%q buf=%q\n",
				step.Seq, step.Key, step.Action, step.Backspace, step.Output, step.Buffer)
		}
	}
	b.WriteString(r.Text)
	return b.String()
}
