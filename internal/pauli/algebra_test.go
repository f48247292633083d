package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulDisjointSupports(t *testing.T) {
	product := SX(Index(0)).Mul(SY(Index(1)))
	assert.Equal(t, 2, product.Len())
	assert.Equal(t, X, product.Get(Index(0)))
	assert.Equal(t, Y, product.Get(Index(1)))
	assert.Equal(t, Numeric(1), product.Coefficient())
}

func TestMulSameOperatorCancels(t *testing.T) {
	product := SX(Index(0)).Mul(SX(Index(0)))
	assert.Equal(t, 0, product.Len())
	assert.Equal(t, Numeric(1), product.Coefficient())

	id, err := product.IsIdentity()
	require.NoError(t, err)
	assert.True(t, id)
}

func TestMulAccumulatesPhase(t *testing.T) {
	// X*Z = -i*Y, Z*X = +i*Y: order matters.
	xz := SX(Index(0)).Mul(SZ(Index(0)))
	assert.Equal(t, Y, xz.Get(Index(0)))
	assert.Equal(t, Numeric(-1i), xz.Coefficient())

	zx := SZ(Index(0)).Mul(SX(Index(0)))
	assert.Equal(t, Y, zx.Get(Index(0)))
	assert.Equal(t, Numeric(1i), zx.Coefficient())

	xy := SX(Index(0)).Mul(SY(Index(0)))
	assert.Equal(t, Z, xy.Get(Index(0)))
	assert.Equal(t, Numeric(1i), xy.Coefficient())

	yz := SY(Index(0)).Mul(SZ(Index(0)))
	assert.Equal(t, X, yz.Get(Index(0)))
	assert.Equal(t, Numeric(1i), yz.Coefficient())
}

func TestMulMultipliesCoefficients(t *testing.T) {
	a := MustNew(X, Index(0), 2.0)
	b := MustNew(Z, Index(1), 3.0)
	product := a.Mul(b)
	assert.Equal(t, Numeric(6), product.Coefficient())
}

func TestMulAssociative(t *testing.T) {
	a := SX(Index(0))
	b := SY(Index(0))
	c := SZ(Index(1))

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))

	eq, err := left.Equal(right)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMulIdentityLaws(t *testing.T) {
	term := MustNew(Y, Index(3), 0.5)

	left := Identity().Mul(term)
	eq, err := left.Equal(term)
	require.NoError(t, err)
	assert.True(t, eq)

	right := term.Mul(Identity())
	eq, err = right.Equal(term)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMulDoesNotMutateOperands(t *testing.T) {
	a := SX(Index(0))
	b := SZ(Index(0))
	_ = a.Mul(b)

	assert.Equal(t, X, a.Get(Index(0)))
	assert.Equal(t, Numeric(1), a.Coefficient())
	assert.Equal(t, Z, b.Get(Index(0)))
}

func TestMulSupportOrdering(t *testing.T) {
	// A replacement keeps the qubit's position; a cancellation removes
	// it; a new qubit appends.
	base, err := FromList([]QubitOp{
		{Op: X, Qubit: Index(0)},
		{Op: Y, Qubit: Index(1)},
	}, 1.0)
	require.NoError(t, err)

	replaced := base.Mul(SZ(Index(0)))
	assert.Equal(t, []Qubit{Index(0), Index(1)}, replaced.Qubits())
	assert.Equal(t, Y, replaced.Get(Index(0)))

	cancelled := base.Mul(SX(Index(0)))
	assert.Equal(t, []Qubit{Index(1)}, cancelled.Qubits())

	extended := base.Mul(SZ(Index(2)))
	assert.Equal(t, []Qubit{Index(0), Index(1), Index(2)}, extended.Qubits())
}

func TestScale(t *testing.T) {
	scaled, err := SX(Index(0)).Scale(2.5)
	require.NoError(t, err)
	assert.Equal(t, Numeric(2.5), scaled.Coefficient())
	assert.Equal(t, X, scaled.Get(Index(0)))

	_, err = SX(Index(0)).Scale(struct{}{})
	require.Error(t, err)
	assert.True(t, IsTypeMismatch(err))
}

func TestTermAdd(t *testing.T) {
	sum, err := SX(Index(0)).Add(SX(Index(0)))
	require.NoError(t, err)
	require.Equal(t, 1, sum.Len())
	assert.Equal(t, Numeric(2), sum.Term(0).Coefficient())

	mixed, err := SX(Index(0)).Add(SZ(Index(1)))
	require.NoError(t, err)
	assert.Equal(t, 2, mixed.Len())
}

func TestTermAddScalar(t *testing.T) {
	sum, err := SZ(Index(0)).AddScalar(1.5)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Len())
	assert.Equal(t, "1*Z0+1.5*I", sum.CompactString())
}

func TestTermAddZeroScalar(t *testing.T) {
	term := MustNew(Y, Index(2), 0.5)
	sum, err := term.AddScalar(0.0)
	require.NoError(t, err)
	eq, err := sum.Equal(term)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestTermSub(t *testing.T) {
	diff, err := SX(Index(0)).Sub(SX(Index(0)))
	require.NoError(t, err)
	zero, err := diff.IsZero()
	require.NoError(t, err)
	assert.True(t, zero)
}

func TestTermPow(t *testing.T) {
	squared, err := SX(Index(0)).Pow(2)
	require.NoError(t, err)
	id, err := squared.IsIdentity()
	require.NoError(t, err)
	assert.True(t, id)

	cubed, err := SY(Index(1)).Pow(3)
	require.NoError(t, err)
	eq, err := cubed.Equal(SY(Index(1)))
	require.NoError(t, err)
	assert.True(t, eq)

	zeroth, err := MustNew(Z, Index(0), 4.0).Pow(0)
	require.NoError(t, err)
	id, err = zeroth.IsIdentity()
	require.NoError(t, err)
	assert.True(t, id)
	assert.Equal(t, Numeric(1), zeroth.Coefficient())

	// A pure scalar to any power resets to coefficient 1.
	scalar, err := MustNew(I, nil, 5.0).Pow(3)
	require.NoError(t, err)
	assert.Equal(t, Numeric(1), scalar.Coefficient())

	_, err = SX(Index(0)).Pow(-1)
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeInvalidPower))
}

func TestTermEqual(t *testing.T) {
	a, err := FromList([]QubitOp{
		{Op: X, Qubit: Index(0)},
		{Op: Z, Qubit: Index(1)},
	}, 1.0)
	require.NoError(t, err)
	// Same support, different insertion order.
	b, err := FromList([]QubitOp{
		{Op: Z, Qubit: Index(1)},
		{Op: X, Qubit: Index(0)},
	}, 1.0)
	require.NoError(t, err)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	other, err := a.WithCoefficient(2.0)
	require.NoError(t, err)
	eq, err = a.Equal(other)
	require.NoError(t, err)
	assert.False(t, eq)

	eq, err = a.Equal(SX(Index(0)))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestTermEqualTolerance(t *testing.T) {
	a := MustNew(X, Index(0), 1.0)
	b := MustNew(X, Index(0), 1.0+1e-10)
	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	c := MustNew(X, Index(0), 1.001)
	eq, err = a.Equal(c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestTermEqualTypeMismatch(t *testing.T) {
	_, err := SX(Index(0)).Equal(42)
	require.Error(t, err)
	assert.True(t, IsTypeMismatch(err))
}

func TestTermEqualAgainstSum(t *testing.T) {
	sum := MustSum(SX(Index(0)))
	eq, err := SX(Index(0)).Equal(sum)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestHashKey(t *testing.T) {
	a, err := FromList([]QubitOp{
		{Op: X, Qubit: Index(0)},
		{Op: Z, Qubit: Index(1)},
	}, 0.5)
	require.NoError(t, err)
	b, err := FromList([]QubitOp{
		{Op: Z, Qubit: Index(1)},
		{Op: X, Qubit: Index(0)},
	}, 0.5)
	require.NoError(t, err)

	assert.Equal(t, a.HashKey(), b.HashKey())

	scaled, err := a.WithCoefficient(0.25)
	require.NoError(t, err)
	assert.NotEqual(t, a.HashKey(), scaled.HashKey())
}

func TestSymbolicCoefficientArithmetic(t *testing.T) {
	sym := MustNew(X, Index(0), Symbolic{Expr: "theta"})
	assert.Equal(t, Symbolic{Expr: "theta"}, sym.Coefficient())

	scaled, err := sym.Scale(2.0)
	require.NoError(t, err)
	_, isSym := scaled.Coefficient().(Symbolic)
	assert.True(t, isSym)

	// Near-zero tests on symbolic coefficients fail.
	_, err = sym.IsZero()
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrCodeSymbolicCoefficient))
}
