package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThanhNguyxn/vietflux-ime/internal/shortcut"
)

// NewShortcutsCommand creates the shortcuts command group.
func NewShortcutsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Inspect shortcut tables",
	}
	cmd.AddCommand(newShortcutsListCommand(rootOpts))
	cmd.AddCommand(newShortcutsCheckCommand(rootOpts))
	return cmd
}

// ShortcutRow is one entry of the shortcuts list payload.
type ShortcutRow struct {
	Trigger   string `json:"trigger"`
	Expansion string `json:"expansion"`
	When      string `json:"when"`
	Disabled  bool   `json:"disabled,omitempty"`
}

func newShortcutsListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "List a shortcut table",
		Long: `List the entries of a shortcut table: a YAML file when given, the
stock table otherwise.

Example:
  vietflux shortcuts list
  vietflux shortcuts list my-shortcuts.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runShortcutsList(rootOpts, path, cmd)
		},
	}
	return cmd
}

func runShortcutsList(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	table, err := loadTable(path)
	if err != nil {
		formatter.Error("bad-table", err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load shortcut table", err)
	}

	rows := make([]ShortcutRow, 0, table.Len())
	for _, e := range table.Entries() {
		rows = append(rows, ShortcutRow{
			Trigger:   e.Trigger,
			Expansion: e.Expansion,
			When:      e.When.String(),
			Disabled:  e.Disabled,
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d entries", len(rows))
	for _, r := range rows {
		flag := ""
		if r.Disabled {
			flag = "  (disabled)"
		}
		fmt.Fprintf(&b, "\n%-8s -> %s  [%s]%s", r.Trigger, r.Expansion, r.When, flag)
	}
	return formatter.SuccessText(b.String(), rows)
}

func newShortcutsCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a shortcut table file",
		Long: `Parse a shortcut YAML file and report whether every entry is valid.
Nothing is installed; this is a lint for user tables.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcutsCheck(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runShortcutsCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	table, err := shortcut.Load(path)
	if err != nil {
		formatter.Error("invalid", err.Error(), nil)
		return WrapExitError(ExitFailure, "shortcut table is invalid", err)
	}

	text := fmt.Sprintf("✓ %s: %d entries valid", path, table.Len())
	return formatter.SuccessText(text, map[string]any{"path": path, "entries": table.Len()})
}

// loadTable resolves the list argument: empty means the stock table.
func loadTable(path string) (*shortcut.Table, error) {
	if path == "" || path == "default" {
		return shortcut.Defaults(), nil
	}
	return shortcut.Load(path)
}
