package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/halfspin/pauliq/internal/hamiltonian"
	"github.com/halfspin/pauliq/internal/pauli"
)

// loadSum resolves a command's input into a Pauli sum: either an inline
// compact string argument or a Hamiltonian definition file (--file).
// Exactly one of arg and file must be set.
func loadSum(arg, file string, opts ...pauli.Option) (*pauli.Sum, error) {
	switch {
	case arg != "" && file != "":
		return nil, WrapExitError(ExitCommandError, "provide either an inline sum or --file, not both", nil)
	case arg != "":
		sum, err := pauli.SumFromCompactString(arg, opts...)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "parse sum", err)
		}
		return sum, nil
	case file != "":
		spec, err := loadSpec(file)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load hamiltonian", err)
		}
		sum, err := spec.Sum(opts...)
		if err != nil {
			return nil, WrapExitError(ExitFailure, "build hamiltonian sum", err)
		}
		return sum, nil
	default:
		return nil, WrapExitError(ExitCommandError, "either an inline sum or --file is required", nil)
	}
}

// loadTerm resolves an inline compact string into a single term.
func loadTerm(arg string) (*pauli.Term, error) {
	t, err := pauli.TermFromCompactString(arg)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "parse term", err)
	}
	return t, nil
}

// loadSpec picks the Hamiltonian file format by extension: .cue loads
// through the CUE compiler, .yaml/.yml through the YAML parser.
func loadSpec(path string) (*hamiltonian.Spec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return hamiltonian.LoadCUE(path)
	case ".yaml", ".yml":
		return hamiltonian.LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported hamiltonian file extension %q (want .cue, .yaml, or .yml)", filepath.Ext(path))
	}
}
