// Package cli implements the pauliq command line interface: parsing
// and simplifying Pauli sums, partitioning them into commuting groups,
// and compiling exponentials and Trotter products to circuits.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/halfspin/pauliq/internal/diag"
	"github.com/halfspin/pauliq/internal/pauli"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the pauliq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pauliq",
		Short: "pauliq - symbolic Pauli operator algebra",
		Long: `Symbolic algebra for Pauli operators: simplify sums, partition them
into commuting groups, and compile exponentials into circuits.

Sums are written in compact form: terms joined by '+', each term
<coefficient>*<op><qubit>..., e.g. "0.5*X0Z1+(0+1i)*Y2".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSimplifyCommand(opts))
	cmd.AddCommand(NewGroupsCommand(opts))
	cmd.AddCommand(NewExpCommand(opts))
	cmd.AddCommand(NewTrotterizeCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// warningCollector returns the diag collector CLI commands pass to the
// engine: warnings are logged to stderr so they never mix with command
// output.
func warningCollector() diag.Collector {
	return diag.Slog(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// engineOptions is the standard option set CLI commands hand to the
// algebra.
func engineOptions() []pauli.Option {
	return []pauli.Option{pauli.WithCollector(warningCollector())}
}
