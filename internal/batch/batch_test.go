package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/sol2ink/internal/ir"
)

func TestDiffAgainstExistingNoPriorFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "lib.rs")

	diff := diffAgainstExisting(outPath, "pub fn new() {}\n")
	assert.Contains(t, diff, "+pub fn new() {}")
}

func TestDiffAgainstExistingIdenticalContentIsEmpty(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(outPath, []byte("same\n"), 0o644))

	assert.Equal(t, "", diffAgainstExisting(outPath, "same\n"))
}

func TestDiffAgainstExistingShowsChange(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "lib.rs")
	require.NoError(t, os.WriteFile(outPath, []byte("old\n"), 0o644))

	diff := diffAgainstExisting(outPath, "new\n")
	assert.Contains(t, diff, "-old")
	assert.Contains(t, diff, "+new")
}

func TestErrorKindUnwrapsTranslateError(t *testing.T) {
	cause := ir.NewError(ir.FileCorrupted, "Token.sol", "parse error")
	wrapped := fmt.Errorf("translating %s: %w", "Token.sol", cause)

	assert.Equal(t, "file_corrupted", errorKind(wrapped))
	assert.Equal(t, "unknown", errorKind(fmt.Errorf("plain error")))
}
