package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWatchRefusesWithoutTerminal(t *testing.T) {
	stdout, _, err := executeRoot(t, "watch")
	require.ErrorIs(t, err, errNotTerminal)
	require.Empty(t, stdout)
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	require.False(t, isTerminal(io.Discard))
}
