package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picofw/core"
	"picofw/host/devmem"
)

func TestRunStep(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"step", "-freq", "32768.5"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "phase_step=0x00863843 (8796227)")
	assert.NotContains(t, stdout.String(), "warning")
}

func TestRunStepWraps(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"step", "-freq", "16000000"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "phase_step=0x00000000 (0)")
	assert.Contains(t, stdout.String(), "wraps")
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "missing command")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"bogus"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "bogus"`)

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"step", "-freq", "abc"}, &stdout, &stderr))
}

func TestNewNCO(t *testing.T) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data, 0x80000000)

	nco, err := newNCO(devmem.WindowFrom(core.NCOBase, data))
	require.NoError(t, err)

	nco.SetFrequency(1000)
	nco.Enable(true)

	assert.Equal(t, uint32(0x80000001), binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint32(268435), binary.LittleEndian.Uint32(data[4:]))
}

func TestNewNCOWindowTooSmall(t *testing.T) {
	_, err := newNCO(devmem.WindowFrom(core.NCOBase, make([]byte, 4)))
	assert.Error(t, err)
}
