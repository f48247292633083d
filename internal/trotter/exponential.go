// Package trotter compiles exponentials of Pauli terms into circuits:
// exp(-i*angle*term) for a single term via basis changes and a CNOT
// parity ladder, and exp(A+B) for a non-commuting pair via the
// Suzuki-Trotter product decomposition.
package trotter

import (
	"math"

	"github.com/halfspin/pauliq/internal/pauli"
	"github.com/halfspin/pauliq/internal/quil"
)

// ExponentialMap returns a function f(angle) that constructs the
// circuit implementing exp(-i * angle * term).
//
// The term's coefficient must be real: an imaginary part would make the
// exponential non-unitary. Symbolic coefficients cannot be compiled.
//
// Special cases, resolved per call of the returned function:
//   - scalar multiple of identity: a global-phase gadget (X, PHASE, X,
//     PHASE on qubit 0 - an even number of self-inverse gates realizes a
//     pure global phase without altering any qubit's measured state)
//   - near-zero coefficient: the empty circuit
func ExponentialMap(term *pauli.Term) (func(angle float64) *quil.Circuit, error) {
	n, ok := term.Coefficient().(pauli.Numeric)
	if !ok {
		return nil, pauli.Errorf(pauli.ErrCodeSymbolicCoefficient,
			"cannot exponentiate a term with a symbolic coefficient")
	}
	z := complex128(n)
	if !closeToZero(imag(z)) {
		return nil, pauli.Errorf(pauli.ErrCodeNonRealCoefficient,
			"term coefficient must be real, got %v", z)
	}
	coeff := real(z)

	realTerm, err := term.WithCoefficient(coeff)
	if err != nil {
		return nil, err
	}

	return func(angle float64) *quil.Circuit {
		circ := quil.NewCircuit()
		switch {
		case realTerm.Len() == 0 && !closeToZero(coeff):
			q := pauli.Index(0)
			circ.Append(quil.X(q))
			circ.Append(quil.PHASE(-angle*coeff, q))
			circ.Append(quil.X(q))
			circ.Append(quil.PHASE(-angle*coeff, q))
		case closeToZero(coeff):
			// exp(0) is the identity: nothing to emit.
		default:
			circ.Extend(exponentiateGeneralCase(realTerm, coeff, angle))
		}
		return circ
	}, nil
}

// Exponentiate compiles the circuit for exp(-i * term), i.e. the
// exponential map at angle 1.
func Exponentiate(term *pauli.Term) (*quil.Circuit, error) {
	f, err := ExponentialMap(term)
	if err != nil {
		return nil, err
	}
	return f(1.0), nil
}

// ExponentiateCommutingSum returns a function f(angle) compiling every
// term of the sum in sequence. The factorization
// exp(-i*angle*sum) = prod exp(-i*angle*term) is exact only when the
// terms pairwise commute; that precondition is the caller's to ensure
// (see pauli.CommutingGroups).
func ExponentiateCommutingSum(sum *pauli.Sum) (func(angle float64) *quil.Circuit, error) {
	terms := sum.Terms()
	fns := make([]func(float64) *quil.Circuit, len(terms))
	for i, t := range terms {
		f, err := ExponentialMap(t)
		if err != nil {
			return nil, err
		}
		fns[i] = f
	}
	return func(angle float64) *quil.Circuit {
		circ := quil.NewCircuit()
		for _, f := range fns {
			circ.Extend(f(angle))
		}
		return circ
	}, nil
}

// exponentiateGeneralCase synthesizes exp(-i*angle*term) for a term
// with non-empty support: per-qubit basis changes into Z, a CNOT ladder
// accumulating parity onto the last qubit in term iteration order, a
// single RZ by 2*coeff*angle there, then the ladder reversed and the
// inverse basis changes. The reversed ladder is a distinct instruction
// sequence (same qubit pairs, reverse order), which undoes the parity
// accumulation since CNOT is self-inverse.
func exponentiateGeneralCase(term *pauli.Term, coeff, angle float64) *quil.Circuit {
	changeToZ := quil.NewCircuit()
	changeBack := quil.NewCircuit()
	ladder := quil.NewCircuit()

	var prev pauli.Qubit
	var last pauli.Qubit
	havePrev := false

	for _, qo := range term.Operations() {
		switch qo.Op {
		case pauli.X:
			changeToZ.Append(quil.H(qo.Qubit))
			changeBack.Append(quil.H(qo.Qubit))
		case pauli.Y:
			changeToZ.Append(quil.RX(math.Pi/2, qo.Qubit))
			changeBack.Append(quil.RX(-math.Pi/2, qo.Qubit))
		}
		if havePrev {
			ladder.Append(quil.CNOT(prev, qo.Qubit))
		}
		prev = qo.Qubit
		last = qo.Qubit
		havePrev = true
	}

	circ := quil.NewCircuit()
	circ.Extend(changeToZ)
	circ.Extend(ladder)
	circ.Append(quil.RZ(2*coeff*angle, last))
	circ.Extend(ladder.Reversed())
	circ.Extend(changeBack)
	return circ
}

// closeToZero mirrors the absolute tolerance of the algebra's near-zero
// test for a real value compared against zero.
func closeToZero(f float64) bool {
	return math.Abs(f) <= 1e-8
}
