package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		Bucket:   "test-bucket",
	})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "projects/1-part.step", strings.NewReader("step data"), "application/step")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "projects/1-part.step")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Get(ctx, "projects/1-part.step")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "step data", string(data))

	require.NoError(t, s.Delete(ctx, "projects/1-part.step"))

	exists, err = s.Exists(ctx, "projects/1-part.step")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsHarmless(t *testing.T) {
	s := newTestLocalStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "never/existed.pdf"))
}

func TestLocalStorage_URLs(t *testing.T) {
	s := newTestLocalStorage(t)
	ctx := context.Background()

	url, err := s.GetURL(ctx, "projects/1-part.step")
	require.NoError(t, err)
	assert.Equal(t, "/files/test-bucket/projects/1-part.step", url)

	// Local storage has no signing; the signed URL matches the plain one.
	signed, err := s.GetSignedURL(ctx, "projects/1-part.step", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, url, signed)
}
