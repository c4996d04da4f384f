package dawg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wjolley/dawg"
)

func TestBuildFromFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "words.txt")
	outputPath := filepath.Join(dir, "words.dawg")

	require.NoError(t, os.WriteFile(inputPath, []byte("cat\n\ncats\ndog\n"), 0o644))

	require.NoError(t, dawg.BuildFromFile(inputPath, outputPath))

	g, err := dawg.Load(outputPath)
	require.NoError(t, err)
	require.True(t, g.Lookup("cat"))
	require.True(t, g.Lookup("cats"))
	require.True(t, g.Lookup("dog"))
	require.False(t, g.Lookup("catnip"))
}

func TestBuildFromFileRejectsUnsortedInput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "words.txt")
	outputPath := filepath.Join(dir, "words.dawg")

	require.NoError(t, os.WriteFile(inputPath, []byte("dog\ncat\n"), 0o644))

	err := dawg.BuildFromFile(inputPath, outputPath)
	require.ErrorIs(t, err, dawg.ErrOrderViolation)
}

func TestBuildFromFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := dawg.BuildFromFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.dawg"))
	require.Error(t, err)
}
