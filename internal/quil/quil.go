// Package quil is the instruction layer the synthesizers compile into:
// opaque gate constructors and an ordered, appendable instruction
// sequence. Append order is execution order; there are no other
// invariants. The richer textual instruction format (its lexer and
// parser) lives outside this module.
package quil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halfspin/pauliq/internal/pauli"
)

// Instruction is a single primitive quantum instruction: a one- or
// two-qubit gate, optionally parametrized by an angle.
type Instruction struct {
	Name   string
	Qubits []pauli.Qubit
	// Angle is the rotation parameter for parametrized gates.
	// HasAngle distinguishes an absent parameter from a zero one.
	Angle    float64
	HasAngle bool
}

// Gate constructors. Each returns a fresh instruction; instructions are
// value types and safe to copy.

// H is the Hadamard gate on a qubit.
func H(q pauli.Qubit) Instruction {
	return Instruction{Name: "H", Qubits: []pauli.Qubit{q}}
}

// X is the Pauli-X gate on a qubit.
func X(q pauli.Qubit) Instruction {
	return Instruction{Name: "X", Qubits: []pauli.Qubit{q}}
}

// RX is a rotation about the X axis.
func RX(angle float64, q pauli.Qubit) Instruction {
	return Instruction{Name: "RX", Qubits: []pauli.Qubit{q}, Angle: angle, HasAngle: true}
}

// RZ is a rotation about the Z axis.
func RZ(angle float64, q pauli.Qubit) Instruction {
	return Instruction{Name: "RZ", Qubits: []pauli.Qubit{q}, Angle: angle, HasAngle: true}
}

// PHASE applies a phase rotation on a qubit.
func PHASE(angle float64, q pauli.Qubit) Instruction {
	return Instruction{Name: "PHASE", Qubits: []pauli.Qubit{q}, Angle: angle, HasAngle: true}
}

// CNOT is the controlled-NOT gate; control first, target second.
func CNOT(control, target pauli.Qubit) Instruction {
	return Instruction{Name: "CNOT", Qubits: []pauli.Qubit{control, target}}
}

// Gate builds the bare single-qubit gate for a Pauli operator symbol,
// for turning a term's operator map into instructions directly.
func Gate(op pauli.Op, q pauli.Qubit) (Instruction, error) {
	switch op {
	case pauli.X, pauli.Y, pauli.Z, pauli.I:
		return Instruction{Name: string(op), Qubits: []pauli.Qubit{q}}, nil
	default:
		return Instruction{}, fmt.Errorf("no gate for operator %q", string(op))
	}
}

// FromTerm renders a term's operators as a circuit of bare gates, one
// per supported qubit in term iteration order. The coefficient is
// dropped; this is the operator content only.
func FromTerm(t *pauli.Term) (*Circuit, error) {
	c := NewCircuit()
	for _, qo := range t.Operations() {
		in, err := Gate(qo.Op, qo.Qubit)
		if err != nil {
			return nil, err
		}
		c.Append(in)
	}
	return c, nil
}

// String renders the instruction in the conventional text form, e.g.
// "RZ(1.5) 0" or "CNOT 0 1".
func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Name)
	if in.HasAngle {
		b.WriteByte('(')
		b.WriteString(strconv.FormatFloat(in.Angle, 'g', -1, 64))
		b.WriteByte(')')
	}
	for _, q := range in.Qubits {
		b.WriteByte(' ')
		b.WriteString(qubitText(q))
	}
	return b.String()
}

func qubitText(q pauli.Qubit) string {
	if idx, ok := q.(pauli.Index); ok {
		return strconv.Itoa(int(idx))
	}
	return fmt.Sprintf("%v", q)
}

// Circuit is an ordered, mutable, appendable instruction sequence.
type Circuit struct {
	instructions []Instruction
}

// NewCircuit creates a circuit from the given instructions.
func NewCircuit(instructions ...Instruction) *Circuit {
	c := &Circuit{}
	c.Append(instructions...)
	return c
}

// Append adds instructions at the end of the circuit.
func (c *Circuit) Append(instructions ...Instruction) {
	c.instructions = append(c.instructions, instructions...)
}

// Extend appends every instruction of other, leaving other untouched.
func (c *Circuit) Extend(other *Circuit) {
	c.instructions = append(c.instructions, other.instructions...)
}

// Len is the number of instructions in the circuit.
func (c *Circuit) Len() int { return len(c.instructions) }

// Instructions returns a copy of the instruction sequence in execution
// order.
func (c *Circuit) Instructions() []Instruction {
	out := make([]Instruction, len(c.instructions))
	copy(out, c.instructions)
	return out
}

// Reversed returns a new circuit with the same instructions in reverse
// order. The receiver is unchanged.
func (c *Circuit) Reversed() *Circuit {
	out := make([]Instruction, len(c.instructions))
	for i, in := range c.instructions {
		out[len(c.instructions)-1-i] = in
	}
	return &Circuit{instructions: out}
}

// String renders the circuit one instruction per line.
func (c *Circuit) String() string {
	lines := make([]string, len(c.instructions))
	for i, in := range c.instructions {
		lines[i] = in.String()
	}
	return strings.Join(lines, "\n")
}
