package storage

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStore(t *testing.T) {
	s, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save(strings.NewReader("one"), ".png")
	require.NoError(t, err)
	b, err := s.Save(strings.NewReader("two"), ".png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.True(t, s.Exists(a))
	assert.Equal(t, "/uploads/products/"+a, s.URL(a))

	require.NoError(t, s.Remove(a))
	assert.False(t, s.Exists(a))
	assert.NoError(t, s.Remove(a), "removing a missing file is tolerated")

	assert.ErrorIs(t, s.Remove("../etc/passwd"), ErrInvalidName)
	assert.ErrorIs(t, s.Remove(""), ErrInvalidName)
}

func TestImageStoreFileSystem(t *testing.T) {
	s, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	name, err := s.Save(strings.NewReader("pixels"), ".png")
	require.NoError(t, err)

	f, err := s.FileSystem().Open("/products/" + name)
	require.NoError(t, err)
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "pixels", string(body))

	for _, dir := range []string{"/", "/products", "/products/"} {
		_, err := s.FileSystem().Open(dir)
		assert.ErrorIs(t, err, fs.ErrNotExist, dir)
	}
}
