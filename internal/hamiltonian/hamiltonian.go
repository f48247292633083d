// Package hamiltonian loads Pauli sums from definition files.
//
// Two formats are supported: CUE (the richer one, with schema
// validation positions in errors) and YAML (the lightweight one for
// hand-written term lists). Both describe the same shape: a named list
// of terms, each an operator block in compact form plus a coefficient.
package hamiltonian

import (
	"fmt"
	"strconv"

	"github.com/halfspin/pauliq/internal/pauli"
)

// Spec is a parsed Hamiltonian definition.
type Spec struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Terms       []TermSpec `yaml:"terms"`
}

// TermSpec is one term of a Hamiltonian definition. Operators is the
// compact operator block ("Z0Z1", or "I" for a scalar term);
// Coefficient accepts a number or a complex literal string.
type TermSpec struct {
	Operators   string `yaml:"operators"`
	Coefficient any    `yaml:"coefficient"`
}

// Sum builds the simplified Pauli sum the spec describes.
func (s *Spec) Sum(opts ...pauli.Option) (*pauli.Sum, error) {
	if len(s.Terms) == 0 {
		return nil, fmt.Errorf("hamiltonian %q has no terms", s.Name)
	}
	terms := make([]*pauli.Term, len(s.Terms))
	for i, ts := range s.Terms {
		t, err := ts.Term()
		if err != nil {
			return nil, fmt.Errorf("hamiltonian %q term %d: %w", s.Name, i, err)
		}
		terms[i] = t
	}
	sum, err := pauli.NewSum(terms)
	if err != nil {
		return nil, err
	}
	return sum.Simplify(opts...)
}

// Term builds the single Pauli term the spec entry describes.
func (ts *TermSpec) Term() (*pauli.Term, error) {
	coef, err := coefficientString(ts.Coefficient)
	if err != nil {
		return nil, err
	}
	ops := ts.Operators
	if ops == "" {
		ops = "I"
	}
	return pauli.TermFromCompactString(coef + "*" + ops)
}

// coefficientString renders the loosely-typed coefficient field as a
// compact-form coefficient. A missing coefficient defaults to 1.
func coefficientString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "1", nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case string:
		return val, nil
	default:
		return "", fmt.Errorf("unsupported coefficient type %T", v)
	}
}
