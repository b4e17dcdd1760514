// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bionic-md/pkg/types"
)

func TestClean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "original stays")
	writeFile(t, dir, "notes-bionic.md", "derivative")
	writeFile(t, dir, filepath.Join("nested", "deep-bionic.md"), "derivative")
	writeFile(t, dir, "notes-bionic.txt", "wrong extension")

	var log bytes.Buffer
	summary, err := Clean(types.CleanConfig{NamingConfig: naming(), Root: dir}, &log)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Removed)
	assert.NoFileExists(t, filepath.Join(dir, "notes-bionic.md"))
	assert.NoFileExists(t, filepath.Join(dir, "nested", "deep-bionic.md"))
	assert.FileExists(t, filepath.Join(dir, "notes.md"))
	assert.FileExists(t, filepath.Join(dir, "notes-bionic.txt"))

	assert.Contains(t, log.String(), "removed: "+filepath.Join(dir, "notes-bionic.md"))
}

func TestClean_NothingFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "nothing generated yet")

	var log bytes.Buffer
	summary, err := Clean(types.CleanConfig{NamingConfig: naming(), Root: dir}, &log)
	require.NoError(t, err)

	assert.Zero(t, summary.Removed)
	assert.Empty(t, log.String())
}

func TestClean_CustomSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a-fast.md", "custom derivative")
	writeFile(t, dir, "a-bionic.md", "different suffix, untouched")

	cfg := types.CleanConfig{NamingConfig: naming(), Root: dir}
	cfg.Suffix = "-fast"

	var log bytes.Buffer
	summary, err := Clean(cfg, &log)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Removed)
	assert.NoFileExists(t, filepath.Join(dir, "a-fast.md"))
	assert.FileExists(t, filepath.Join(dir, "a-bionic.md"))
}
