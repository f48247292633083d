package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halfspin/pauliq/internal/store"
	"github.com/halfspin/pauliq/internal/trotter"
)

// ExpOptions holds flags for the exp command.
type ExpOptions struct {
	*RootOptions
	Angle float64
	Cache string
}

// expResult is the JSON output shape of the exp command.
type expResult struct {
	Term         string   `json:"term"`
	Angle        float64  `json:"angle"`
	GateCount    int      `json:"gate_count"`
	Instructions []string `json:"instructions"`
	CircuitID    string   `json:"circuit_id,omitempty"`
	CacheHit     bool     `json:"cache_hit,omitempty"`
}

// NewExpCommand creates the exp command.
func NewExpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "exp <term>",
		Short: "Compile exp(-i*angle*term) to a circuit",
		Long: `Compile the exponential of a single Pauli term into a circuit: basis
changes into Z, a CNOT parity ladder, one Z rotation, and the inverse
sequence. The term's coefficient must be real.

With --cache, compiled circuits are stored content-addressed in a
SQLite database and looked up before compiling.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExp(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Angle, "angle", "a", 1.0, "rotation angle")
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "path to a circuit cache database")

	return cmd
}

func runExp(opts *ExpOptions, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	term, err := loadTerm(arg)
	if err != nil {
		return err
	}

	result := expResult{Term: term.CompactString(), Angle: opts.Angle, Instructions: []string{}}
	ctx := context.Background()

	var db *store.Store
	if opts.Cache != "" {
		db, err = store.Open(opts.Cache)
		if err != nil {
			return WrapExitError(ExitCommandError, "open cache", err)
		}
		defer db.Close()

		cached, found, err := db.Get(ctx, term, opts.Angle)
		if err != nil {
			return WrapExitError(ExitCommandError, "read cache", err)
		}
		if found {
			formatter.VerboseLog("cache hit %s", cached.ID)
			result.Instructions = append(result.Instructions, cached.Instructions...)
			result.GateCount = cached.GateCount
			result.CircuitID = cached.ID
			result.CacheHit = true
			return outputExp(formatter, opts, result)
		}
	}

	f, err := trotter.ExponentialMap(term)
	if err != nil {
		return WrapExitError(ExitFailure, "compile exponential", err)
	}
	circ := f(opts.Angle)
	for _, in := range circ.Instructions() {
		result.Instructions = append(result.Instructions, in.String())
	}
	result.GateCount = circ.Len()

	if db != nil {
		id, err := db.Put(ctx, term, opts.Angle, circ)
		if err != nil {
			return WrapExitError(ExitCommandError, "write cache", err)
		}
		formatter.VerboseLog("cached as %s", id)
		result.CircuitID = id
	}

	return outputExp(formatter, opts, result)
}

func outputExp(formatter *OutputFormatter, opts *ExpOptions, result expResult) error {
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
