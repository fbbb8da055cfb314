package extraction

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocExtractor_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Jane Doe\nPython, SQL\n"), 0o644))

	texts := NewDocExtractor().Extract(context.Background(), []string{path})

	require.Len(t, texts, 1)
	assert.Equal(t, "Jane Doe\nPython, SQL", texts[path])
	assert.False(t, IsErrorText(texts[path]))
}

func TestDocExtractor_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.png")
	require.NoError(t, os.WriteFile(path, []byte("not a resume"), 0o644))

	texts := NewDocExtractor().Extract(context.Background(), []string{path})

	require.Len(t, texts, 1)
	assert.True(t, IsErrorText(texts[path]))
	assert.Contains(t, texts[path], "unsupported file type")
}

func TestDocExtractor_MissingFileIsIsolated(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("real text"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	texts := NewDocExtractor().Extract(context.Background(), []string{good, missing})

	assert.Equal(t, "real text", texts[good])
	assert.True(t, IsErrorText(texts[missing]))
}

func TestStubExtractor_Deterministic(t *testing.T) {
	paths := []string{"/tmp/john_smith.pdf", "/tmp/jane_doe.pdf"}

	texts := NewStubExtractor().Extract(context.Background(), paths)

	require.Len(t, texts, 2)
	assert.Contains(t, texts["/tmp/john_smith.pdf"], "Name: John Smith")
	assert.Contains(t, texts["/tmp/john_smith.pdf"], "john.smith@email.com")
	assert.Contains(t, texts["/tmp/jane_doe.pdf"], "Name: Jane Doe")

	again := NewStubExtractor().Extract(context.Background(), paths)
	assert.Equal(t, texts, again)
}

func TestIsErrorText(t *testing.T) {
	assert.True(t, IsErrorText("Error extracting text: boom"))
	assert.False(t, IsErrorText("A fine resume"))
	assert.False(t, IsErrorText(""))
}
