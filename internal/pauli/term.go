package pauli

import (
	"slices"
	"strings"
)

// Op is a single-qubit Pauli operator symbol.
type Op string

// The four Pauli operators. I is never stored in a term's operator map;
// identity on a qubit is represented by omission.
const (
	I Op = "I"
	X Op = "X"
	Y Op = "Y"
	Z Op = "Z"
)

// Ops lists the valid operator symbols.
var Ops = []Op{X, Y, Z, I}

// pauliProd maps the concatenation of two operator symbols to the
// operator of their product. Multiplication is qubit-local; there is no
// cross-qubit interaction.
var pauliProd = map[string]Op{
	"II": I, "XX": I, "YY": I, "ZZ": I,
	"XY": Z, "YX": Z,
	"XZ": Y, "ZX": Y,
	"YZ": X, "ZY": X,
	"IX": X, "IY": Y, "IZ": Z,
	"XI": X, "YI": Y, "ZI": Z,
}

// pauliPhase maps the same keys to the accumulated phase of the
// product. Order matters: XY carries +i while YX carries -i.
var pauliPhase = map[string]complex128{
	"II": 1, "XX": 1, "YY": 1, "ZZ": 1,
	"XY": 1i, "YX": -1i,
	"XZ": -1i, "ZX": 1i,
	"YZ": 1i, "ZY": -1i,
	"IX": 1, "IY": 1, "IZ": 1,
	"XI": 1, "YI": 1, "ZI": 1,
}

// validOp reports whether op is a recognized operator symbol.
func validOp(op Op) bool {
	switch op {
	case I, X, Y, Z:
		return true
	default:
		return false
	}
}

// QubitOp pairs an operator with the qubit it acts on.
type QubitOp struct {
	Op    Op
	Qubit Qubit
}

// Term is a product of Pauli operators acting on distinct qubits,
// scaled by a coefficient.
//
// INVARIANTS:
//   - ops never contains an I entry; identity is represented by omission
//   - order holds exactly the keys of ops, in insertion order
//   - algebra operations return new terms; operands are never mutated
type Term struct {
	order []Qubit
	ops   map[Qubit]Op
	coeff Coeff
}

// New creates a term with a single operator at a qubit and a leading
// coefficient. An I operator yields a scalar term with empty support,
// and the qubit is ignored (it may be nil).
func New(op Op, q Qubit, coefficient any) (*Term, error) {
	if !validOp(op) {
		return nil, Errorf(ErrCodeInvalidOperator, "%q is not a valid Pauli operator", string(op))
	}
	c, err := AsCoeff(coefficient)
	if err != nil {
		return nil, err
	}
	t := &Term{ops: map[Qubit]Op{}, coeff: c}
	if op != I {
		if !validQubit(q) {
			return nil, Errorf(ErrCodeInvalidQubit, "%s is not a valid qubit", qubitString(q))
		}
		t.ops[q] = op
		t.order = append(t.order, q)
	}
	return t, nil
}

// MustNew is like New but panics on error. Use only in tests or when
// inputs are known to be valid.
func MustNew(op Op, q Qubit, coefficient any) *Term {
	t, err := New(op, q, coefficient)
	if err != nil {
		panic(err)
	}
	return t
}

// SI returns the identity operator.
func SI() *Term { return MustNew(I, nil, 1.0) }

// SX returns the sigma_X operator on a qubit.
// Panics if q is not a valid qubit.
func SX(q Qubit) *Term { return MustNew(X, q, 1.0) }

// SY returns the sigma_Y operator on a qubit.
// Panics if q is not a valid qubit.
func SY(q Qubit) *Term { return MustNew(Y, q, 1.0) }

// SZ returns the sigma_Z operator on a qubit.
// Panics if q is not a valid qubit.
func SZ(q Qubit) *Term { return MustNew(Z, q, 1.0) }

// Identity returns the unit term: empty support, coefficient 1.
func Identity() *Term { return SI() }

// ZeroTerm returns the zero term: empty support, coefficient 0.
func ZeroTerm() *Term { return MustNew(I, nil, 0.0) }

// FromList allocates a term from operators on disjoint qubits. This is
// the efficient path for building a multi-qubit term: it skips the
// per-factor multiplication, so the qubits must not repeat.
func FromList(ops []QubitOp, coefficient any) (*Term, error) {
	c, err := AsCoeff(coefficient)
	if err != nil {
		return nil, err
	}
	t := &Term{ops: map[Qubit]Op{}, coeff: c}
	for _, qo := range ops {
		if !validOp(qo.Op) {
			return nil, Errorf(ErrCodeInvalidOperator, "%q is not a valid Pauli operator", string(qo.Op))
		}
		if qo.Op == I {
			continue
		}
		if !validQubit(qo.Qubit) {
			return nil, Errorf(ErrCodeInvalidQubit, "%s is not a valid qubit", qubitString(qo.Qubit))
		}
		if _, exists := t.ops[qo.Qubit]; exists {
			return nil, Errorf(ErrCodeDuplicateQubit,
				"qubit %s appears more than once; from-list terms must be on disjoint qubits, use multiplication instead",
				qubitString(qo.Qubit))
		}
		t.ops[qo.Qubit] = qo.Op
		t.order = append(t.order, qo.Qubit)
	}
	return t, nil
}

// copy returns a new term with a fresh operator map and order slice.
func (t *Term) copy() *Term {
	nt := &Term{
		order: make([]Qubit, len(t.order)),
		ops:   make(map[Qubit]Op, len(t.ops)),
		coeff: t.coeff,
	}
	copy(nt.order, t.order)
	for q, op := range t.ops {
		nt.ops[q] = op
	}
	return nt
}

// WithCoefficient returns a duplicate of t carrying a new coefficient.
func (t *Term) WithCoefficient(coefficient any) (*Term, error) {
	c, err := AsCoeff(coefficient)
	if err != nil {
		return nil, err
	}
	nt := t.copy()
	nt.coeff = c
	return nt, nil
}

// Coefficient returns the term's coefficient.
func (t *Term) Coefficient() Coeff { return t.coeff }

// Len is the number of Pauli operators in the term. A term consisting
// of only a scalar has length zero.
func (t *Term) Len() int { return len(t.ops) }

// Qubits returns the qubits this term acts on, in term iteration order.
// The returned slice is a copy.
func (t *Term) Qubits() []Qubit {
	qs := make([]Qubit, len(t.order))
	copy(qs, t.order)
	return qs
}

// Get returns the operator acting on q, or I if the term does not act
// on q.
func (t *Term) Get(q Qubit) Op {
	if op, ok := t.ops[q]; ok {
		return op
	}
	return I
}

// Operations returns the term's (op, qubit) pairs in iteration order.
func (t *Term) Operations() []QubitOp {
	ops := make([]QubitOp, len(t.order))
	for i, q := range t.order {
		ops[i] = QubitOp{Op: t.ops[q], Qubit: q}
	}
	return ops
}

// supportKey returns a canonical key for the term's support set: the
// (qubit, op) pairs sorted by internal qubit key. Two terms with the
// same support in any order share a key. Coefficients do not enter.
func (t *Term) supportKey() string {
	pairs := make([]string, 0, len(t.order))
	for q, op := range t.ops {
		pairs = append(pairs, qubitKey(q)+"="+string(op))
	}
	slices.Sort(pairs)
	return strings.Join(pairs, ",")
}

// ID returns an identifier string for the term, ignoring the
// coefficient: the operators concatenated with their qubits in term
// iteration order, or "I" for a scalar term. Do not use this to compare
// terms; iteration order is a presentation detail. Use supports
// (see Equal) instead.
func (t *Term) ID() string {
	if len(t.order) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, q := range t.order {
		b.WriteString(string(t.ops[q]))
		b.WriteString(qubitString(q))
	}
	return b.String()
}

// IsIdentity reports whether the term is a non-zero scalar multiple of
// the identity.
func (t *Term) IsIdentity() (bool, error) {
	if len(t.ops) != 0 {
		return false, nil
	}
	zero, err := nearZero(t.coeff)
	if err != nil {
		return false, err
	}
	return !zero, nil
}

// IsZero reports whether the term's coefficient is near zero.
func (t *Term) IsZero() (bool, error) {
	return nearZero(t.coeff)
}

// String renders the term as <coefficient>*<op><qubit>*... with factors
// separated by '*'.
func (t *Term) String() string {
	if len(t.order) == 0 {
		return coeffExpr(t.coeff) + "*I"
	}
	factors := make([]string, len(t.order))
	for i, q := range t.order {
		factors[i] = string(t.ops[q]) + qubitString(q)
	}
	return coeffExpr(t.coeff) + "*" + strings.Join(factors, "*")
}

// CompactString renders the term as <coefficient>*<op><qubit>... with
// no separators between factors, e.g. "2*X1Z2". This is the textual
// interchange form understood by TermFromCompactString.
func (t *Term) CompactString() string {
	return coeffExpr(t.coeff) + "*" + t.ID()
}

// PauliString returns the operator on each of the given qubits as one
// character per qubit, e.g. "XIZ" for qubits [0, 1, 2] of X0*Z2.
func (t *Term) PauliString(qubits []Qubit) string {
	var b strings.Builder
	for _, q := range qubits {
		b.WriteString(string(t.Get(q)))
	}
	return b.String()
}
