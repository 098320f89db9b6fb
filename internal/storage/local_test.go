package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scoutpro-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/uploads")
	require.NoError(t, err)
	return store, dir
}

func TestNewLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := storage.NewLocalStore(dir, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveAndRemove(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, store.Save("spraychart-abc.png", strings.NewReader("png bytes")))

	content, err := os.ReadFile(filepath.Join(dir, "spraychart-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))

	require.NoError(t, store.Remove("spraychart-abc.png"))
	_, err = os.Stat(filepath.Join(dir, "spraychart-abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	store, _ := newStore(t)

	assert.NoError(t, store.Remove("never-existed.png"))
}

func TestSaveReplacesExistingFile(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, store.Save("chart.png", strings.NewReader("first")))
	require.NoError(t, store.Save("chart.png", strings.NewReader("second")))

	content, err := os.ReadFile(filepath.Join(dir, "chart.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestSaveFlattensPathTraversal(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, store.Save("../../etc/evil.png", strings.NewReader("x")))

	// the file lands inside the store under its base name
	_, err := os.Stat(filepath.Join(dir, "evil.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "..", "..", "etc", "evil.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestURL(t *testing.T) {
	store, _ := newStore(t)

	assert.Equal(t, "/uploads/spraychart-abc.png", store.URL("spraychart-abc.png"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "spraychart-abc.png", storage.FileName("/uploads/spraychart-abc.png"))
	assert.Equal(t, "spraychart-abc.png", storage.FileName("spraychart-abc.png"))
}

func TestCheckWritable(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, store.CheckWritable())

	// probe file does not linger
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
