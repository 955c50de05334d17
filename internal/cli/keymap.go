package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThanhNguyxn/vietflux-ime/internal/keymap"
)

// NewKeymapCommand creates the keymap command group.
func NewKeymapCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keymap",
		Short: "Work with custom keymap definitions",
	}
	cmd.AddCommand(newKeymapVetCommand(rootOpts))
	return cmd
}

// KeymapReport is the keymap vet payload.
type KeymapReport struct {
	Name string   `json:"name"`
	Base string   `json:"base"`
	Keys []string `json:"keys"`
}

func newKeymapVetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet <file.cue>",
		Short: "Validate a keymap definition",
		Long: `Compile a CUE keymap definition and report schema violations with
source positions. A definition that vets cleanly is accepted by
compose --keymap and by WithDefinition.

Example:
  vietflux keymap vet my-keymap.cue`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeymapVet(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runKeymapVet(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	def, err := keymap.Load(path)
	if err != nil {
		formatter.Error("invalid", err.Error(), nil)
		return WrapExitError(ExitFailure, "keymap definition is invalid", err)
	}

	keys := make([]string, 0, len(def.Keys))
	for k := range def.Keys {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	base := def.Base.String()
	if def.NoBase {
		base = "none"
	}
	report := KeymapReport{Name: def.Name, Base: base, Keys: keys}
	text := fmt.Sprintf("✓ %s: keymap %q over %s, %d keys remapped (%s)",
		path, report.Name, report.Base, len(keys), strings.Join(keys, " "))
	return formatter.SuccessText(text, report)
}
