package pauli

import (
	"github.com/halfspin/pauliq/internal/diag"
)

// Simplify collects like terms and drops near-zero ones.
//
// Terms are grouped by their support set (qubit/operator pairs as a
// set, ignoring coefficient and internal ordering), preserving the
// order in which each group was first seen. A group of one keeps its
// term untouched if the coefficient is not near zero. Larger groups sum
// their coefficients into one term carrying the first member's operator
// ordering; groups whose summed coefficient is near zero are dropped
// silently.
//
// Members of one group with differing internal qubit orderings are a
// presentation detail only, but may matter to downstream consumers that
// honor emission order, so the merge emits a REORDERED_OPS warning
// through the collector. The warning never changes the result.
//
// Symbolic coefficients cannot be tested against zero; simplifying a
// sum containing one fails with ErrCodeSymbolicCoefficient.
func (s *Sum) Simplify(opts ...Option) (*Sum, error) {
	cfg := applyOptions(opts)

	// Grouping preserves first-seen order of support sets so that the
	// simplified sum's term order stays deterministic.
	var keys []string
	likeTerms := map[string][]*Term{}
	for _, t := range s.terms {
		key := t.supportKey()
		if _, seen := likeTerms[key]; !seen {
			keys = append(keys, key)
		}
		likeTerms[key] = append(likeTerms[key], t)
	}

	var terms []*Term
	for _, key := range keys {
		group := likeTerms[key]
		first := group[0]

		if len(group) == 1 {
			zero, err := nearZero(first.coeff)
			if err != nil {
				return nil, err
			}
			if !zero {
				terms = append(terms, first)
			}
			continue
		}

		coeff := first.coeff
		for _, t := range group[1:] {
			coeff = addCoeff(coeff, t.coeff)
		}
		for _, t := range group {
			if !sameOpsOrder(t, first) {
				diag.Warnf(cfg.collector, diag.CodeReorderedOps,
					"the term %s will be combined with %s, but they have different orders of operations",
					t.ID(), first.ID())
			}
		}
		zero, err := nearZero(coeff)
		if err != nil {
			return nil, err
		}
		if !zero {
			merged, err := first.WithCoefficient(coeff)
			if err != nil {
				return nil, err
			}
			terms = append(terms, merged)
		}
	}
	return NewSum(terms)
}

// sameOpsOrder reports whether two terms list their operations in the
// same sequence. Support-set equality is assumed by the caller.
func sameOpsOrder(a, b *Term) bool {
	if len(a.order) != len(b.order) {
		return false
	}
	for i, q := range a.order {
		if b.order[i] != q || a.ops[q] != b.ops[q] {
			return false
		}
	}
	return true
}
