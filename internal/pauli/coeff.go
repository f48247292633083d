package pauli

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Tolerances for coefficient comparison:
// close(a, b) iff |a-b| <= absTol + relTol*|b|.
const (
	relTol = 1e-5
	absTol = 1e-8
)

// HashPrecision is the fixed precision used when hashing coefficients.
// Equality uses the tolerance comparison above, which has a different
// resolution; two coefficients that are equal under tolerance may hash
// differently right at the rounding boundary. Use Equal, not hash
// identity, for correctness-sensitive comparison.
const HashPrecision = 1e6

// Coeff is a sealed interface over the two coefficient variants.
// Only Numeric and Symbolic implement it.
//
// Numeric coefficients support the full algebra including near-zero
// tests. Symbolic coefficients support addition and multiplication
// (building up a composite expression) but cannot be compared to zero
// without external evaluation; operations that need a near-zero test
// fail with ErrCodeSymbolicCoefficient.
type Coeff interface {
	coeff() // Sealed - only Numeric and Symbolic implement it.
}

// Numeric is a plain complex coefficient.
type Numeric complex128

func (Numeric) coeff() {}

// Symbolic is an opaque symbolic-expression coefficient. Expr is the
// expression source; the algebra treats it as an uninterpreted handle
// and only composes it textually.
type Symbolic struct {
	Expr string
}

func (Symbolic) coeff() {}

// One is the multiplicative unit coefficient.
var One = Numeric(1)

// AsCoeff converts a scalar to a Coeff. Accepts the Coeff variants and
// the ordinary numeric Go types. Anything else is a type mismatch.
func AsCoeff(v any) (Coeff, error) {
	switch val := v.(type) {
	case Numeric:
		return val, nil
	case Symbolic:
		return val, nil
	case complex128:
		return Numeric(val), nil
	case complex64:
		return Numeric(complex128(val)), nil
	case float64:
		return Numeric(complex(val, 0)), nil
	case float32:
		return Numeric(complex(float64(val), 0)), nil
	case int:
		return Numeric(complex(float64(val), 0)), nil
	case int64:
		return Numeric(complex(float64(val), 0)), nil
	default:
		return nil, Errorf(ErrCodeTypeMismatch, "cannot use %T as a coefficient", v)
	}
}

// mulCoeff multiplies two coefficients. Mixing a Numeric with a
// Symbolic promotes the result to Symbolic.
func mulCoeff(a, b Coeff) Coeff {
	an, aok := a.(Numeric)
	bn, bok := b.(Numeric)
	if aok && bok {
		return an * bn
	}
	return Symbolic{Expr: "(" + coeffExpr(a) + "*" + coeffExpr(b) + ")"}
}

// addCoeff adds two coefficients, promoting to Symbolic when mixed.
func addCoeff(a, b Coeff) Coeff {
	an, aok := a.(Numeric)
	bn, bok := b.(Numeric)
	if aok && bok {
		return an + bn
	}
	return Symbolic{Expr: "(" + coeffExpr(a) + "+" + coeffExpr(b) + ")"}
}

// nearZero reports whether c is numerically close to zero.
func nearZero(c Coeff) (bool, error) {
	n, ok := c.(Numeric)
	if !ok {
		return false, Errorf(ErrCodeSymbolicCoefficient,
			"cannot compare symbolic coefficient %s to zero", coeffExpr(c))
	}
	return closeComplex(complex128(n), 0), nil
}

// coeffClose reports whether two coefficients are numerically close.
// Symbolic coefficients compare by exact expression identity.
func coeffClose(a, b Coeff) bool {
	an, aok := a.(Numeric)
	bn, bok := b.(Numeric)
	if aok && bok {
		return closeComplex(complex128(an), complex128(bn))
	}
	as, aok := a.(Symbolic)
	bs, bok := b.(Symbolic)
	return aok && bok && as.Expr == bs.Expr
}

// closeComplex implements the absolute+relative tolerance comparison.
func closeComplex(a, b complex128) bool {
	return cmplx.Abs(a-b) <= absTol+relTol*cmplx.Abs(b)
}

// hashRound rounds a float at the fixed hash precision.
func hashRound(f float64) int64 {
	return int64(math.Round(f * HashPrecision))
}

// coeffExpr renders a coefficient for display and interchange. Numeric
// coefficients with zero imaginary part render as plain floats; complex
// values use the Go complex literal form, which the parser accepts back.
func coeffExpr(c Coeff) string {
	switch val := c.(type) {
	case Numeric:
		z := complex128(val)
		if imag(z) == 0 {
			return strconv.FormatFloat(real(z), 'g', -1, 64)
		}
		return strconv.FormatComplex(z, 'g', -1, 128)
	case Symbolic:
		return val.Expr
	default:
		return ""
	}
}
