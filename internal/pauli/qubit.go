package pauli

import (
	"strconv"

	"github.com/google/uuid"
)

// Qubit is a sealed interface over the qubit designators a term can act
// on. Only Index and Placeholder implement it. Both are comparable and
// usable as map keys; Placeholder additionally has no meaningful
// ordering, so nothing in the algebra may sort qubits for semantic
// purposes (canonical serialization sorts by an internal key only).
type Qubit interface {
	qubit() // Sealed - only Index and Placeholder implement it.
}

// Index is a concrete, non-negative qubit index.
type Index int

func (Index) qubit() {}

// Placeholder is an opaque qubit designator for circuits whose concrete
// indices are assigned later. Placeholders support equality and hashing
// but not ordering.
type Placeholder struct {
	id uuid.UUID
}

func (Placeholder) qubit() {}

// NewPlaceholder allocates a fresh placeholder with a unique identity.
func NewPlaceholder() Placeholder {
	return Placeholder{id: uuid.New()}
}

// String returns a short display form. Placeholders render with a
// truncated identity; they have no stable textual interchange form.
func (p Placeholder) String() string {
	return "q{" + p.id.String()[:8] + "}"
}

// validQubit reports whether q is a usable qubit designator.
func validQubit(q Qubit) bool {
	switch val := q.(type) {
	case Index:
		return val >= 0
	case Placeholder:
		return val.id != uuid.UUID{}
	default:
		return false
	}
}

// qubitString renders a qubit for display and interchange.
func qubitString(q Qubit) string {
	switch val := q.(type) {
	case Index:
		return strconv.Itoa(int(val))
	case Placeholder:
		return val.String()
	default:
		return "?"
	}
}

// qubitKey returns a deterministic map/sort key for a qubit. The key is
// internal to canonical serialization and grouping; it carries no
// ordering semantics visible to callers.
func qubitKey(q Qubit) string {
	switch val := q.(type) {
	case Index:
		return "i:" + strconv.Itoa(int(val))
	case Placeholder:
		return "p:" + val.id.String()
	default:
		return "?"
	}
}
