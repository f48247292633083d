package pauli

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Domain prefixes for content-addressed identity. Version suffix
// enables future algorithm migration.
const (
	DomainTerm    = "pauliq/term/v1"
	DomainCircuit = "pauliq/circuit/v1"
)

// TermID computes a content-addressed identifier for a term: SHA-256
// over the canonical JSON of its support (sorted by internal qubit key)
// and its coefficient at fixed hash precision. The ID is stable across
// processes and restarts, which is what lets the compilation cache key
// on it.
//
// Canonical JSON here carries no floats: the coefficient enters as its
// rounded real and imaginary integer parts, so the ID inherits the same
// documented rounding-boundary approximation as Term hashing.
//
// Terms with symbolic coefficients or placeholder qubits have no stable
// cross-process identity and are rejected.
func TermID(t *Term) (string, error) {
	n, ok := t.coeff.(Numeric)
	if !ok {
		return "", Errorf(ErrCodeSymbolicCoefficient, "term with symbolic coefficient has no content-addressed identity")
	}
	for _, q := range t.order {
		if _, ok := q.(Index); !ok {
			return "", Errorf(ErrCodeInvalidQubit, "term with placeholder qubit %s has no content-addressed identity", qubitString(q))
		}
	}

	support := make([]any, 0, len(t.ops))
	for q, op := range t.ops {
		support = append(support, map[string]any{
			"q":  int64(q.(Index)),
			"op": string(op),
		})
	}
	sortSupportByQubit(support)

	obj := map[string]any{
		"re":      hashRound(real(complex128(n))),
		"im":      hashRound(imag(complex128(n))),
		"support": support,
	}
	canonical, err := marshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("TermID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTerm, canonical), nil
}

// CircuitID computes a content-addressed identifier for a compiled
// exponential: the term identity plus the rotation angle at fixed hash
// precision.
func CircuitID(termID string, angle float64) string {
	canonical := fmt.Sprintf(`{"angle":%d,"term":%q}`, hashRound(angle), termID)
	return hashWithDomain(DomainCircuit, []byte(canonical))
}

func sortSupportByQubit(support []any) {
	slices.SortFunc(support, func(a, b any) int {
		qa := a.(map[string]any)["q"].(int64)
		qb := b.(map[string]any)["q"].(int64)
		return int(qa - qb)
	})
}

// hashWithDomain computes SHA-256 with domain separation:
// SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// marshalCanonical produces canonical JSON for hashing: object keys in
// sorted order, strings NFC normalized without HTML escaping, integers
// only (floats are forbidden; callers pre-round them), no null.
func marshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is forbidden in canonical JSON")
	case string:
		return marshalCanonicalString(val)
	case int64:
		return []byte(fmt.Sprintf("%d", val)), nil
	case int:
		return []byte(fmt.Sprintf("%d", val)), nil
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case float64, float32:
		return nil, fmt.Errorf("floats are forbidden in canonical JSON: %v", val)
	case []any:
		return marshalCanonicalArray(val)
	case map[string]any:
		return marshalCanonicalObject(val)
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

func marshalCanonicalString(s string) ([]byte, error) {
	// NFC normalize at the serialization boundary.
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it.
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}

func marshalCanonicalArray(arr []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := marshalCanonical(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(elemBytes)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalObject(obj map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := marshalCanonicalString(k)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := marshalCanonical(obj[k])
		if err != nil {
			return nil, fmt.Errorf("value for key %q: %w", k, err)
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
