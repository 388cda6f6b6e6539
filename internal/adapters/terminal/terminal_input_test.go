package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalInput_RegularFileIsNotATerminal(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	sut := &TerminalInput{in: file, out: file}

	assert.False(t, sut.IsTerminal())
}

func TestTerminalInput_ReadPasswordWithoutTerminal(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "stdin"))
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	sut := &TerminalInput{in: file, out: file}

	_, err = sut.ReadPassword("Enter GitHub token: ")

	assert.ErrorContains(t, err, "failed to read password")
}
