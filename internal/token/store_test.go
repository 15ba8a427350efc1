package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Credentials{}, creds)

	require.NoError(t, s.Save(Credentials{Access: "a", Refresh: "r"}))
	creds, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "a", creds.Access)
	assert.Equal(t, "r", creds.Refresh)

	require.NoError(t, s.Clear())
	creds, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, Credentials{}, creds)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	s := NewFileStore(path)

	t.Run("load before first save is empty", func(t *testing.T) {
		creds, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, Credentials{}, creds)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, s.Save(Credentials{Access: "aaa", Refresh: "rrr"}))

		creds, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, Credentials{Access: "aaa", Refresh: "rrr"}, creds)
	})

	t.Run("file is private", func(t *testing.T) {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("clear removes the file", func(t *testing.T) {
		require.NoError(t, s.Clear())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		// clearing twice is fine
		require.NoError(t, s.Clear())
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, err := s.Load()
		assert.Error(t, err)
	})
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	client := newTestRedis(t)
	s := NewRedisStoreWithClient(client, "kedesh:tokens:test")

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Credentials{}, creds)

	require.NoError(t, s.Save(Credentials{Access: "tok-a", Refresh: "tok-r"}))

	creds, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-a", creds.Access)
	assert.Equal(t, "tok-r", creds.Refresh)

	require.NoError(t, s.Clear())
	creds, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, Credentials{}, creds)
}

func TestReturnPath(t *testing.T) {
	var rp ReturnPath

	_, ok := rp.Take()
	assert.False(t, ok)

	rp.Set("/dashboard/houses")

	path, ok := rp.Peek()
	assert.True(t, ok)
	assert.Equal(t, "/dashboard/houses", path)

	path, ok = rp.Take()
	assert.True(t, ok)
	assert.Equal(t, "/dashboard/houses", path)

	_, ok = rp.Take()
	assert.False(t, ok)
}
