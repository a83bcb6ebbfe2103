// Copyright (c) 2026 Anselm Long. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package personal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMissing(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "missing.txt"))

	words, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, words)

	// Removing from a missing file is a no-op
	require.NoError(t, store.Remove("anything"))
}

func TestFileAddAll(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "personal.txt"))

	require.NoError(t, store.Add("tardigrade"))
	require.NoError(t, store.Add("vimango"))

	words, err := store.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"tardigrade", "vimango"}, words)
}

func TestFileRemove(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "personal.txt"))

	require.NoError(t, store.Add("tardigrade"))
	require.NoError(t, store.Add("vimango"))
	require.NoError(t, store.Remove("tardigrade"))

	words, err := store.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"vimango"}, words)

	// Removing a word that is not stored leaves the file alone
	require.NoError(t, store.Remove("tardigrade"))
	words, err = store.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"vimango"}, words)
}

func TestFileSkipsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personal.txt")
	content := "# Personal Dictionary\n# one word per line\n\ntardigrade\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewFile(path)
	words, err := store.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"tardigrade"}, words)
}
