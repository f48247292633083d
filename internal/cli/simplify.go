package cli

import (
	"github.com/spf13/cobra"
)

// SimplifyOptions holds flags for the simplify command.
type SimplifyOptions struct {
	*RootOptions
	File string
}

// simplifyResult is the JSON output shape of the simplify command.
type simplifyResult struct {
	Input  string   `json:"input"`
	Sum    string   `json:"sum"`
	Terms  []string `json:"terms"`
	Qubits int      `json:"qubits"`
}

// NewSimplifyCommand creates the simplify command.
func NewSimplifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimplifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simplify [sum]",
		Short: "Parse a Pauli sum and print its simplified form",
		Long: `Parse a compact-form Pauli sum (or a Hamiltonian file) and print the
simplified sum: like terms collected, near-zero terms dropped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runSimplify(opts, arg, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "hamiltonian definition file (.cue, .yaml)")

	return cmd
}

func runSimplify(opts *SimplifyOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	sum, err := loadSum(arg, opts.File, engineOptions()...)
	if err != nil {
		return err
	}
	formatter.VerboseLog("parsed %d term(s) over %d qubit(s)", sum.Len(), len(sum.Qubits()))

	if opts.Format == "json" {
		terms := make([]string, sum.Len())
		for i, t := range sum.Terms() {
			terms[i] = t.CompactString()
		}
		return formatter.JSON(simplifyResult{
			Input:  arg,
			Sum:    sum.CompactString(),
			Terms:  terms,
			Qubits: len(sum.Qubits()),
		})
	}

	formatter.Print("%s", sum.CompactString())
	return nil
}
