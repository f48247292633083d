package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommutes(t *testing.T) {
	x0z1, err := FromList([]QubitOp{
		{Op: X, Qubit: Index(0)},
		{Op: Z, Qubit: Index(1)},
	}, 1.0)
	require.NoError(t, err)
	x0y1, err := FromList([]QubitOp{
		{Op: X, Qubit: Index(0)},
		{Op: Y, Qubit: Index(1)},
	}, 1.0)
	require.NoError(t, err)
	y0x1, err := FromList([]QubitOp{
		{Op: Y, Qubit: Index(0)},
		{Op: X, Qubit: Index(1)},
	}, 1.0)
	require.NoError(t, err)

	tests := []struct {
		name string
		a, b *Term
		want bool
	}{
		{"same operator", SX(Index(0)), SX(Index(0)), true},
		{"disjoint supports", SX(Index(0)), SZ(Index(1)), true},
		{"single anti-coincidence", SX(Index(0)), SZ(Index(0)), false},
		{"two anti-coincidences", x0y1, y0x1, true},
		{"one overlap differs", x0z1, x0y1, false},
		{"identity commutes with everything", Identity(), SY(Index(5)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Commutes(tt.a, tt.b))
			assert.Equal(t, tt.want, Commutes(tt.b, tt.a))
		})
	}
}

func TestCommutesMatchesCommutator(t *testing.T) {
	// The parity test must agree with the algebraic commutator.
	pairs := []struct{ a, b *Term }{
		{SX(Index(0)), SY(Index(0))},
		{SX(Index(0)), SX(Index(1))},
		{SZ(Index(0)), SZ(Index(0))},
	}
	for _, p := range pairs {
		ab := p.a.Mul(p.b)
		ba := p.b.Mul(p.a)
		negBA, err := ba.Scale(-1.0)
		require.NoError(t, err)
		commutator, err := ab.Add(negBA)
		require.NoError(t, err)
		zero, err := commutator.IsZero()
		require.NoError(t, err)
		assert.Equal(t, zero, Commutes(p.a, p.b),
			"parity and commutator disagree for %s, %s", p.a, p.b)
	}
}

func TestCommutingGroups(t *testing.T) {
	x0x1, err := FromList([]QubitOp{
		{Op: X, Qubit: Index(0)},
		{Op: X, Qubit: Index(1)},
	}, 1.0)
	require.NoError(t, err)

	// X0 and Z0 anticommute; X0X1 commutes with X0 and joins the first
	// group even though it also fails against Z0's group later.
	sum := MustSum(SX(Index(0)), SZ(Index(0)), x0x1)
	groups := CommutingGroups(sum)

	require.Len(t, groups, 2)
	require.Len(t, groups[0], 2)
	assert.Equal(t, "X0", groups[0][0].ID())
	assert.Equal(t, "X0X1", groups[0][1].ID())
	require.Len(t, groups[1], 1)
	assert.Equal(t, "Z0", groups[1][0].ID())
}

func TestCommutingGroupsSingle(t *testing.T) {
	sum := MustSum(SX(Index(0)))
	groups := CommutingGroups(sum)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
}

func TestCommutingGroupsDeterministic(t *testing.T) {
	sum := MustSum(SX(Index(0)), SZ(Index(0)), SY(Index(0)), SX(Index(1)))
	first := CommutingGroups(sum)
	second := CommutingGroups(sum)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, len(first[i]), len(second[i]))
		for j := range first[i] {
			assert.Equal(t, first[i][j].ID(), second[i][j].ID())
		}
	}
}

func TestCommutingGroupsAllPairwiseCommute(t *testing.T) {
	sum := MustSum(SX(Index(0)), SZ(Index(0)), SY(Index(0)), SZ(Index(1)), SX(Index(1)))
	for _, group := range CommutingGroups(sum) {
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				assert.True(t, Commutes(group[i], group[j]),
					"%s and %s share a group but do not commute", group[i], group[j])
			}
		}
	}
}
