package pauli

import (
	"fmt"
	"strings"

	"github.com/halfspin/pauliq/internal/diag"
)

// Sum is a formal sum of one or more terms. Term order is preserved but
// carries no semantics beyond tie-breaking for simplification warnings.
//
// INVARIANT: terms is never empty; an empty construction request is
// normalized to the single zero term.
type Sum struct {
	terms []*Term
}

// Option configures simplification and equality (currently just the
// warning collector). The engine never logs on its own; diagnostics go
// wherever the caller points them.
type Option func(*config)

type config struct {
	collector diag.Collector
}

// WithCollector routes non-fatal warnings to c.
func WithCollector(c diag.Collector) Option {
	return func(cfg *config) {
		cfg.collector = c
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewSum creates a sum over the given terms. The slice is copied; an
// empty or nil slice yields the zero sum.
func NewSum(terms []*Term) (*Sum, error) {
	if len(terms) == 0 {
		return &Sum{terms: []*Term{ZeroTerm()}}, nil
	}
	ts := make([]*Term, len(terms))
	for i, t := range terms {
		if t == nil {
			return nil, Errorf(ErrCodeTypeMismatch, "sums are constructed from terms; term %d is nil", i)
		}
		ts[i] = t
	}
	return &Sum{terms: ts}, nil
}

// MustSum is like NewSum but panics on error. Use only in tests or when
// inputs are known to be valid.
func MustSum(terms ...*Term) *Sum {
	s, err := NewSum(terms)
	if err != nil {
		panic(err)
	}
	return s
}

// Len is the number of terms in the sum.
func (s *Sum) Len() int { return len(s.terms) }

// Term returns the i-th term.
func (s *Sum) Term(i int) *Term { return s.terms[i] }

// Terms returns a copy of the term list in sum order.
func (s *Sum) Terms() []*Term {
	ts := make([]*Term, len(s.terms))
	copy(ts, s.terms)
	return ts
}

// Qubits returns the union of the supports of all terms, in first-seen
// order across the term list.
func (s *Sum) Qubits() []Qubit {
	seen := map[Qubit]bool{}
	var qs []Qubit
	for _, t := range s.terms {
		for _, q := range t.order {
			if !seen[q] {
				seen[q] = true
				qs = append(qs, q)
			}
		}
	}
	return qs
}

// Mul multiplies two sums by distributing over all term pairs, then
// simplifies.
func (s *Sum) Mul(other *Sum, opts ...Option) (*Sum, error) {
	newTerms := make([]*Term, 0, len(s.terms)*len(other.terms))
	for _, lt := range s.terms {
		for _, rt := range other.terms {
			newTerms = append(newTerms, lt.Mul(rt))
		}
	}
	ns, err := NewSum(newTerms)
	if err != nil {
		return nil, err
	}
	return ns.Simplify(opts...)
}

// MulTerm multiplies the sum by a single term and simplifies.
func (s *Sum) MulTerm(t *Term, opts ...Option) (*Sum, error) {
	rhs, err := NewSum([]*Term{t})
	if err != nil {
		return nil, err
	}
	return s.Mul(rhs, opts...)
}

// Scale multiplies every term's coefficient by a scalar and simplifies.
func (s *Sum) Scale(scalar any, opts ...Option) (*Sum, error) {
	newTerms := make([]*Term, len(s.terms))
	for i, t := range s.terms {
		nt, err := t.Scale(scalar)
		if err != nil {
			return nil, err
		}
		newTerms[i] = nt
	}
	ns, err := NewSum(newTerms)
	if err != nil {
		return nil, err
	}
	return ns.Simplify(opts...)
}

// Add concatenates the term lists of two sums and simplifies.
func (s *Sum) Add(other *Sum, opts ...Option) (*Sum, error) {
	newTerms := make([]*Term, 0, len(s.terms)+len(other.terms))
	newTerms = append(newTerms, s.terms...)
	newTerms = append(newTerms, other.terms...)
	ns, err := NewSum(newTerms)
	if err != nil {
		return nil, err
	}
	return ns.Simplify(opts...)
}

// AddTerm adds a single term to the sum and simplifies.
func (s *Sum) AddTerm(t *Term, opts ...Option) (*Sum, error) {
	rhs, err := NewSum([]*Term{t})
	if err != nil {
		return nil, err
	}
	return s.Add(rhs, opts...)
}

// AddScalar adds a scalar (as a coefficient on the identity) and
// simplifies.
func (s *Sum) AddScalar(scalar any, opts ...Option) (*Sum, error) {
	st, err := New(I, nil, scalar)
	if err != nil {
		return nil, err
	}
	return s.AddTerm(st, opts...)
}

// Sub subtracts other from s and simplifies.
func (s *Sum) Sub(other *Sum, opts ...Option) (*Sum, error) {
	neg, err := other.Scale(-1.0, opts...)
	if err != nil {
		return nil, err
	}
	return s.Add(neg, opts...)
}

// Pow raises the sum to a non-negative integer power by repeated
// multiplication.
func (s *Sum) Pow(power int, opts ...Option) (*Sum, error) {
	if power < 0 {
		return nil, Errorf(ErrCodeInvalidPower, "the power must be a non-negative integer, got %d", power)
	}
	result := MustSum(Identity())
	for i := 0; i < power; i++ {
		var err error
		result, err = result.Mul(s, opts...)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Equal compares the sum against another sum or a term. Two sums are
// equal iff their term multisets match, independent of order: each term
// pairs with a distinct term of the other sum that has the same support
// set and a coefficient close under the tolerance comparison (the same
// test Term.Equal uses). Sums of different lengths are unequal; that
// case additionally emits an UNEQUAL_LENGTH warning since it usually
// means a missing Simplify. Comparing against any other type fails with
// a type mismatch.
func (s *Sum) Equal(other any, opts ...Option) (bool, error) {
	cfg := applyOptions(opts)
	var o *Sum
	switch val := other.(type) {
	case *Sum:
		o = val
	case *Term:
		var err error
		o, err = NewSum([]*Term{val})
		if err != nil {
			return false, err
		}
	default:
		return false, Errorf(ErrCodeTypeMismatch, "cannot compare a sum with %T", other)
	}

	if len(s.terms) != len(o.terms) {
		diag.Warnf(cfg.collector, diag.CodeUnequalLength,
			"these sums have a different number of terms (%d vs %d)", len(s.terms), len(o.terms))
		return false, nil
	}

	matched := make([]bool, len(o.terms))
	for _, t := range s.terms {
		found := false
		for i, ot := range o.terms {
			if matched[i] {
				continue
			}
			if t.supportKey() == ot.supportKey() && coeffClose(t.coeff, ot.coeff) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// IsIdentity reports whether the sum is a single non-zero scalar
// multiple of the identity.
func (s *Sum) IsIdentity() (bool, error) {
	if len(s.terms) != 1 {
		return false, nil
	}
	return s.terms[0].IsIdentity()
}

// IsZero reports whether the sum is the single zero term.
func (s *Sum) IsZero() (bool, error) {
	if len(s.terms) != 1 {
		return false, nil
	}
	return s.terms[0].IsZero()
}

// String renders the sum as its terms joined by " + ".
func (s *Sum) String() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// CompactString renders the sum as its terms' compact forms joined by
// "+" with no spaces. This is the textual interchange form understood
// by SumFromCompactString.
func (s *Sum) CompactString() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.CompactString()
	}
	return strings.Join(parts, "+")
}

var _ fmt.Stringer = (*Sum)(nil)
