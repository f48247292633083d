package pauli

import (
	"fmt"
	"strconv"
	"strings"
)

// multiplyFactor folds a single right-hand operator into t: the
// operator already at q (I if absent) is combined with op through the
// product table, and the phase of that combination multiplies the
// coefficient. Products that collapse to I drop the qubit from the
// support; replacements keep the qubit's original position in iteration
// order; new qubits append.
func (t *Term) multiplyFactor(op Op, q Qubit) *Term {
	nt := t.copy()
	key := string(nt.Get(q)) + string(op)
	newOp := pauliProd[key]
	existing := nt.Get(q) != I
	switch {
	case newOp == I && existing:
		delete(nt.ops, q)
		for i, oq := range nt.order {
			if oq == q {
				nt.order = append(nt.order[:i], nt.order[i+1:]...)
				break
			}
		}
	case newOp != I && existing:
		nt.ops[q] = newOp
	case newOp != I:
		nt.ops[q] = newOp
		nt.order = append(nt.order, q)
	}
	nt.coeff = mulCoeff(nt.coeff, Numeric(pauliPhase[key]))
	return nt
}

// Mul multiplies two terms under the Pauli algebra. The result's
// coefficient is the product of both coefficients and the phase
// accumulated per overlapping qubit. Not commutative at the operator
// level: SX(0).Mul(SY(0)) and SY(0).Mul(SX(0)) differ in phase.
func (t *Term) Mul(other *Term) *Term {
	result := t.copy()
	result.coeff = One
	for _, qo := range other.Operations() {
		result = result.multiplyFactor(qo.Op, qo.Qubit)
	}
	result.coeff = mulCoeff(result.coeff, mulCoeff(t.coeff, other.coeff))
	return result
}

// Scale multiplies the term's coefficient by a scalar; the operator map
// is unchanged. Fails with a type mismatch if the scalar is neither
// numeric nor a supported symbolic expression.
func (t *Term) Scale(scalar any) (*Term, error) {
	c, err := AsCoeff(scalar)
	if err != nil {
		return nil, err
	}
	nt := t.copy()
	nt.coeff = mulCoeff(nt.coeff, c)
	return nt, nil
}

// MulSum distributes the term over the sum and simplifies.
func (t *Term) MulSum(s *Sum, opts ...Option) (*Sum, error) {
	lhs, err := NewSum([]*Term{t})
	if err != nil {
		return nil, err
	}
	return lhs.Mul(s, opts...)
}

// Add adds two terms, producing a simplified sum.
func (t *Term) Add(other *Term, opts ...Option) (*Sum, error) {
	s, err := NewSum([]*Term{t, other})
	if err != nil {
		return nil, err
	}
	return s.Simplify(opts...)
}

// AddScalar adds a scalar to the term, producing a simplified sum. The
// scalar enters as a coefficient on the identity.
func (t *Term) AddScalar(scalar any, opts ...Option) (*Sum, error) {
	st, err := New(I, nil, scalar)
	if err != nil {
		return nil, err
	}
	return t.Add(st, opts...)
}

// AddSum adds the term to a sum, producing a simplified sum.
func (t *Term) AddSum(s *Sum, opts ...Option) (*Sum, error) {
	return s.AddTerm(t, opts...)
}

// Sub subtracts other from t, producing a simplified sum.
func (t *Term) Sub(other *Term, opts ...Option) (*Sum, error) {
	neg, err := other.Scale(-1.0)
	if err != nil {
		return nil, err
	}
	return t.Add(neg, opts...)
}

// Pow raises the term to a non-negative integer power by repeated
// multiplication. Power zero of a term with support yields the
// identity; for a scalar-only term the coefficient is reset to 1, since
// a pure scalar to the zeroth power is definitionally 1.
func (t *Term) Pow(power int) (*Term, error) {
	if power < 0 {
		return nil, Errorf(ErrCodeInvalidPower, "the power must be a non-negative integer, got %d", power)
	}
	if len(t.ops) == 0 {
		return t.WithCoefficient(1.0)
	}
	result := Identity()
	for i := 0; i < power; i++ {
		result = result.Mul(t)
	}
	return result, nil
}

// Equal compares the term against another term or a sum. Two terms are
// equal iff their support sets match and their coefficients are close
// under the tolerance comparison. Comparing against any other type
// fails with a type mismatch.
func (t *Term) Equal(other any) (bool, error) {
	switch o := other.(type) {
	case *Term:
		return t.supportKey() == o.supportKey() && coeffClose(t.coeff, o.coeff), nil
	case *Sum:
		return o.Equal(t)
	default:
		return false, Errorf(ErrCodeTypeMismatch, "cannot compare a term with %T", other)
	}
}

// hashKey returns the term's identity for hashed containers: the fixed
// precision rounding of the coefficient combined with the support set.
// Terms equal under the tolerance comparison usually share a key but
// may diverge right at the rounding boundary; see HashPrecision.
func (t *Term) hashKey() string {
	var b strings.Builder
	switch c := t.coeff.(type) {
	case Numeric:
		b.WriteString(strconv.FormatInt(hashRound(real(complex128(c))), 10))
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(hashRound(imag(complex128(c))), 10))
	case Symbolic:
		b.WriteString("sym|")
		b.WriteString(c.Expr)
	}
	b.WriteByte('|')
	b.WriteString(t.supportKey())
	return b.String()
}

// HashKey exposes the hashed-container identity of the term. Prefer
// Equal for correctness-sensitive comparison.
func (t *Term) HashKey() string { return t.hashKey() }

var _ fmt.Stringer = (*Term)(nil)
