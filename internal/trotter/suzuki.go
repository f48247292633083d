package trotter

import (
	"math"

	"github.com/halfspin/pauliq/internal/pauli"
	"github.com/halfspin/pauliq/internal/quil"
)

// Operand selects which of the two terms a schedule slice applies to.
type Operand int

const (
	// OperandA selects the first term of the pair.
	OperandA Operand = 0
	// OperandB selects the second term of the pair.
	OperandB Operand = 1
)

// Slice is one factor of a Suzuki-Trotter product: exp(Weight * op),
// where op is the term selected by Operand.
type Slice struct {
	Weight  float64
	Operand Operand
}

// baseSequence returns the per-order factor sequence approximating
// exp(A+B). Orders 1 and 2 are the textbook first-order and symmetric
// splittings; orders 3 and 4 use the Suzuki fractal-decomposition
// coefficients from the literature.
func baseSequence(order int) ([]Slice, bool) {
	// Order-4 fractal coefficients: p1 = p2 = p4 = p5 = 1/(4 - 4^(1/3)),
	// p3 = 1 - 4*p1.
	p1 := 1.0 / (4.0 - math.Pow(4.0, 1.0/3.0))
	p2, p4, p5 := p1, p1, p1
	p3 := 1.0 - 4.0*p1

	switch order {
	case 1:
		return []Slice{{1, OperandA}, {1, OperandB}}, true
	case 2:
		return []Slice{{0.5, OperandA}, {1, OperandB}, {0.5, OperandA}}, true
	case 3:
		return []Slice{
			{7.0 / 24.0, OperandA}, {2.0 / 3.0, OperandB}, {3.0 / 4.0, OperandA},
			{-2.0 / 3.0, OperandB}, {-1.0 / 24.0, OperandA}, {1.0, OperandB},
		}, true
	case 4:
		return []Slice{
			{p5 / 2, OperandA}, {p5, OperandB}, {p5 / 2, OperandA},
			{p4 / 2, OperandA}, {p4, OperandB}, {p4 / 2, OperandA},
			{p3 / 2, OperandA}, {p3, OperandB}, {p3 / 2, OperandA},
			{p2 / 2, OperandA}, {p2, OperandB}, {p2 / 2, OperandA},
			{p1 / 2, OperandA}, {p1, OperandB}, {p1 / 2, OperandA},
		}, true
	default:
		return nil, false
	}
}

// SuzukiTrotter generates the trotterization schedule for a given order
// and number of steps: the per-order base sequence with every weight
// divided by steps, repeated steps times. Only orders 1 through 4 are
// supported.
func SuzukiTrotter(order, steps int) ([]Slice, error) {
	if steps < 1 {
		return nil, pauli.Errorf(pauli.ErrCodeInvalidPower,
			"trotter steps must be a positive integer, got %d", steps)
	}
	base, ok := baseSequence(order)
	if !ok {
		return nil, pauli.Errorf(pauli.ErrCodeUnsupportedOrder,
			"suzuki-trotter only accepts orders in {1, 2, 3, 4}, got %d", order)
	}
	schedule := make([]Slice, 0, len(base)*steps)
	for step := 0; step < steps; step++ {
		for _, s := range base {
			schedule = append(schedule, Slice{Weight: s.Weight / float64(steps), Operand: s.Operand})
		}
	}
	return schedule, nil
}

// Trotterize compiles a circuit approximating exp(A+B) for terms A and
// B. When the pair commutes exactly (their commutator simplifies to
// zero), the product exp(A)exp(B) is exact and no splitting is needed.
// Otherwise the Suzuki-Trotter schedule of the given order and step
// count is compiled factor by factor, in schedule order.
func Trotterize(a, b *pauli.Term, order, steps int, opts ...pauli.Option) (*quil.Circuit, error) {
	if order < 1 || order > 4 {
		return nil, pauli.Errorf(pauli.ErrCodeUnsupportedOrder,
			"trotterize only accepts orders in {1, 2, 3, 4}, got %d", order)
	}

	commutator, err := commutatorOf(a, b, opts...)
	if err != nil {
		return nil, err
	}
	zero, err := commutator.IsZero()
	if err != nil {
		return nil, err
	}

	circ := quil.NewCircuit()
	if zero {
		for _, t := range []*pauli.Term{a, b} {
			part, err := Exponentiate(t)
			if err != nil {
				return nil, err
			}
			circ.Extend(part)
		}
		return circ, nil
	}

	schedule, err := SuzukiTrotter(order, steps)
	if err != nil {
		return nil, err
	}
	for _, s := range schedule {
		operand := a
		if s.Operand == OperandB {
			operand = b
		}
		scaled, err := operand.Scale(s.Weight)
		if err != nil {
			return nil, err
		}
		part, err := Exponentiate(scaled)
		if err != nil {
			return nil, err
		}
		circ.Extend(part)
	}
	return circ, nil
}

// commutatorOf computes [A,B] = A*B - B*A as a simplified sum.
func commutatorOf(a, b *pauli.Term, opts ...pauli.Option) (*pauli.Sum, error) {
	ab := a.Mul(b)
	ba := b.Mul(a)
	negBA, err := ba.Scale(-1.0)
	if err != nil {
		return nil, err
	}
	return ab.Add(negBA, opts...)
}
