package hamiltonian

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfspin/pauliq/internal/pauli"
)

func TestLoadYAML(t *testing.T) {
	spec, err := LoadYAML(filepath.Join("testdata", "ising.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "transverse-ising", spec.Name)
	assert.Equal(t, "two-site transverse-field Ising model", spec.Description)
	require.Len(t, spec.Terms, 3)
	assert.Equal(t, "Z0Z1", spec.Terms[0].Operators)
	assert.Equal(t, -1.0, spec.Terms[0].Coefficient)
}

func TestLoadCUE(t *testing.T) {
	spec, err := LoadCUE(filepath.Join("testdata", "ising.cue"))
	require.NoError(t, err)

	assert.Equal(t, "transverse-ising", spec.Name)
	require.Len(t, spec.Terms, 3)
	assert.Equal(t, "Z0Z1", spec.Terms[0].Operators)
	assert.Equal(t, -1.0, spec.Terms[0].Coefficient)
}

func TestYAMLAndCUEAgree(t *testing.T) {
	fromYAML, err := LoadYAML(filepath.Join("testdata", "ising.yaml"))
	require.NoError(t, err)
	fromCUE, err := LoadCUE(filepath.Join("testdata", "ising.cue"))
	require.NoError(t, err)

	sumYAML, err := fromYAML.Sum()
	require.NoError(t, err)
	sumCUE, err := fromCUE.Sum()
	require.NoError(t, err)

	eq, err := sumYAML.Equal(sumCUE)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestSpecSum(t *testing.T) {
	spec := &Spec{
		Name: "test",
		Terms: []TermSpec{
			{Operators: "Z0Z1", Coefficient: -1.0},
			{Operators: "X0", Coefficient: -0.5},
			{Operators: "X0", Coefficient: -0.5},
		},
	}
	sum, err := spec.Sum()
	require.NoError(t, err)

	// Like terms collapse during load.
	require.Equal(t, 2, sum.Len())
	assert.Equal(t, "-1*Z0Z1+-1*X0", sum.CompactString())
}

func TestTermSpecDefaults(t *testing.T) {
	// A missing coefficient defaults to 1; missing operators to the
	// scalar term.
	term, err := (&TermSpec{Operators: "X0"}).Term()
	require.NoError(t, err)
	assert.Equal(t, pauli.Numeric(1), term.Coefficient())

	scalar, err := (&TermSpec{Coefficient: 2.5}).Term()
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.Len())
	assert.Equal(t, pauli.Numeric(2.5), scalar.Coefficient())
}

func TestTermSpecComplexCoefficientString(t *testing.T) {
	term, err := (&TermSpec{Operators: "Y0", Coefficient: "(0+1i)"}).Term()
	require.NoError(t, err)
	assert.Equal(t, pauli.Numeric(1i), term.Coefficient())
}

func TestTermSpecBadOperators(t *testing.T) {
	_, err := (&TermSpec{Operators: "W0", Coefficient: 1.0}).Term()
	require.Error(t, err)
	assert.True(t, pauli.IsParseError(err))
}

func TestParseYAMLValidation(t *testing.T) {
	_, err := ParseYAML([]byte("terms:\n  - operators: X0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	_, err = ParseYAML([]byte("name: empty\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one term")

	_, err = ParseYAML([]byte("{{{not yaml"))
	require.Error(t, err)
}

func TestLoadCUEErrors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	_, err := LoadCUE(write("missing_root.cue", `other: {name: "x"}`))
	require.Error(t, err)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "hamiltonian", le.Field)

	_, err = LoadCUE(write("missing_name.cue", `hamiltonian: {terms: [{operators: "X0"}]}`))
	require.Error(t, err)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "name", le.Field)

	_, err = LoadCUE(write("no_terms.cue", `hamiltonian: {name: "x", terms: []}`))
	require.Error(t, err)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "terms", le.Field)

	_, err = LoadCUE(write("missing_operators.cue", `hamiltonian: {name: "x", terms: [{coefficient: 1.0}]}`))
	require.Error(t, err)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "operators", le.Field)

	_, err = LoadCUE(write("syntax_error.cue", `hamiltonian: {name: `))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadYAML(filepath.Join("testdata", "no-such-file.yaml"))
	require.Error(t, err)

	_, err = LoadCUE(filepath.Join("testdata", "no-such-file.cue"))
	require.Error(t, err)
}
