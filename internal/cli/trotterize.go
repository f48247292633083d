package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfspin/pauliq/internal/trotter"
)

// TrotterizeOptions holds flags for the trotterize command.
type TrotterizeOptions struct {
	*RootOptions
	Order int
	Steps int
}

// trotterizeResult is the JSON output shape of the trotterize command.
type trotterizeResult struct {
	First        string   `json:"first"`
	Second       string   `json:"second"`
	Order        int      `json:"order"`
	Steps        int      `json:"steps"`
	GateCount    int      `json:"gate_count"`
	Instructions []string `json:"instructions"`
}

// NewTrotterizeCommand creates the trotterize command.
func NewTrotterizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrotterizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trotterize <first-term> <second-term>",
		Short: "Approximate exp(-i(A+B)) with a Suzuki-Trotter product formula",
		Long: `Approximate the exponential of the sum of two Pauli terms using the
Suzuki-Trotter decomposition at the given order and step count. When
the terms commute the exact product of the two exponentials is emitted
instead.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrotterize(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Order, "order", 1, "Trotter order (1-4)")
	cmd.Flags().IntVar(&opts.Steps, "steps", 1, "number of Trotter steps")

	return cmd
}

func runTrotterize(opts *TrotterizeOptions, firstArg, secondArg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	first, err := loadTerm(firstArg)
	if err != nil {
		return err
	}
	second, err := loadTerm(secondArg)
	if err != nil {
		return err
	}

	circ, err := trotter.Trotterize(first, second, opts.Order, opts.Steps, engineOptions()...)
	if err != nil {
		return WrapExitError(ExitFailure, "trotterize", err)
	}

	result := trotterizeResult{
		First:        first.CompactString(),
		Second:       second.CompactString(),
		Order:        opts.Order,
		Steps:        opts.Steps,
		GateCount:    circ.Len(),
		Instructions: []string{},
	}
	for _, in := range circ.Instructions() {
		result.Instructions = append(result.Instructions, in.String())
	}

	if opts.Format == "json" {
		return formatter.JSON(result)
	}
	if len(result.Instructions) == 0 {
		formatter.Print("(empty circuit)")
		return nil
	}
	formatter.Print("%s", strings.Join(result.Instructions, "\n"))
	return nil
}
