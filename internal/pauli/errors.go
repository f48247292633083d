package pauli

import (
	"errors"
	"fmt"
)

// AlgebraError represents a contract violation detected by the algebra.
//
// Algebra errors include:
//   - Invalid construction: bad operator symbol, bad qubit index,
//     repeated qubits in a from-list construction
//   - Invalid operations: negative power, unsupported operand type
//   - Compilation limits: non-real coefficient in an exponential,
//     unsupported Trotter order
//   - Parsing: malformed compact-string input
//
// All algebra errors are raised synchronously at the violating call;
// no operation partially mutates state before failing.
type AlgebraError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes algebra errors.
type ErrorCode string

const (
	// ErrCodeInvalidOperator indicates an operator symbol outside {I, X, Y, Z}.
	ErrCodeInvalidOperator ErrorCode = "INVALID_OPERATOR"

	// ErrCodeInvalidQubit indicates a negative or otherwise invalid qubit index.
	ErrCodeInvalidQubit ErrorCode = "INVALID_QUBIT"

	// ErrCodeInvalidPower indicates a negative exponent.
	ErrCodeInvalidPower ErrorCode = "INVALID_POWER"

	// ErrCodeTypeMismatch indicates an operand type the algebra cannot combine
	// or compare with.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeDuplicateQubit indicates repeated qubit indices in a from-list
	// construction, which must be on disjoint qubits.
	ErrCodeDuplicateQubit ErrorCode = "DUPLICATE_QUBIT"

	// ErrCodeParse indicates malformed compact-string input.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeNonRealCoefficient indicates an imaginary coefficient where a
	// real one is required (exponentiation).
	ErrCodeNonRealCoefficient ErrorCode = "NON_REAL_COEFFICIENT"

	// ErrCodeUnsupportedOrder indicates a Trotter order outside {1, 2, 3, 4}.
	ErrCodeUnsupportedOrder ErrorCode = "UNSUPPORTED_ORDER"

	// ErrCodeSymbolicCoefficient indicates an operation that requires a
	// numeric coefficient was attempted on a symbolic one.
	ErrCodeSymbolicCoefficient ErrorCode = "SYMBOLIC_COEFFICIENT"
)

// Error implements the error interface.
func (e *AlgebraError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf creates an AlgebraError with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *AlgebraError {
	return &AlgebraError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode returns true if err is an AlgebraError with the given code.
// Uses errors.As to handle wrapped errors.
func IsCode(err error, code ErrorCode) bool {
	var ae *AlgebraError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// IsParseError returns true if the error is a compact-string parse error.
func IsParseError(err error) bool {
	return IsCode(err, ErrCodeParse)
}

// IsTypeMismatch returns true if the error is an unsupported-operand error.
func IsTypeMismatch(err error) bool {
	return IsCode(err, ErrCodeTypeMismatch)
}
