package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsAndPrompts(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  jdoe  \n"))

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got)
	assert.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("jdoe"))

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Enter username", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.Contains(t, out.String(), "Enter password")
}
