package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStylesListsPaletteAndDefault(t *testing.T) {
	stdout, _, err := executeRoot(t, "styles", "--color", "never")
	require.NoError(t, err)
	require.Equal(t, "alert\nnormal\nnotice\nwarning\n(default)\n", stdout)
}

func TestStylesRendersEachNameInItsStyle(t *testing.T) {
	stdout, _, err := executeRoot(t, "styles", "--color", "always")
	require.NoError(t, err)
	require.Contains(t, stdout, "\x1b[1;31malert\x1b[0m\n")
	require.Contains(t, stdout, "\x1b[36mnotice\x1b[0m\n")
	require.Contains(t, stdout, "\nnormal\n")
	require.Contains(t, stdout, "(default)\n")
}
