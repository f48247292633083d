package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpSingleZ(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1*Z0"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "RZ(2) 0\n", buf.String())
}

func TestExpAngleFlag(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1*Z0", "--angle", "0.5"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "RZ(1) 0\n", buf.String())
}

func TestExpJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0.5*X0Z1"})

	err := cmd.Execute()
	require.NoError(t, err)

	var result expResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "0.5*X0Z1", result.Term)
	assert.Equal(t, 1.0, result.Angle)
	assert.Equal(t, 5, result.GateCount)
	assert.Equal(t, []string{"H 0", "CNOT 0 1", "RZ(1) 1", "CNOT 0 1", "H 0"}, result.Instructions)
	assert.False(t, result.CacheHit)
}

func TestExpZeroCoefficient(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0*X0"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "(empty circuit)\n", buf.String())
}

func TestExpEmptyCircuitJSONArray(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0*X0"})

	err := cmd.Execute()
	require.NoError(t, err)

	// An empty circuit must render as an empty array, never null.
	assert.Contains(t, buf.String(), `"instructions": []`)

	var result expResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.NotNil(t, result.Instructions)
	assert.Empty(t, result.Instructions)
	assert.Equal(t, 0, result.GateCount)
}

func TestExpCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	run := func() expResult {
		t.Helper()
		buf := &bytes.Buffer{}
		rootOpts := &RootOptions{Format: "json"}
		cmd := NewExpCommand(rootOpts)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"1*Z0", "--cache", cachePath})
		require.NoError(t, cmd.Execute())

		var result expResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		return result
	}

	first := run()
	assert.False(t, first.CacheHit)
	assert.NotEmpty(t, first.CircuitID)

	second := run()
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.CircuitID, second.CircuitID)
	assert.Equal(t, first.Instructions, second.Instructions)
}

func TestExpImaginaryCoefficient(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"(0+1i)*X0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestExpParseError(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewExpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"X0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
