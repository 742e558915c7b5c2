package staterep

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpWritesLabelDimAndData(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	st, err := FromData([]float64{1, 2, 3, 4}, 4, true)
	require.NoError(t, err)
	st.Dump("rho0")

	out := buf.String()
	assert.Contains(t, out, "rho0")
	assert.Contains(t, out, "dim=4")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "4")
}

func TestDumpReleasedState(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	st, err := New(2)
	require.NoError(t, err)
	st.Release()

	// Must not panic, and must say the state is gone.
	st.Dump("dead")
	assert.Contains(t, buf.String(), "released=true")
}
