package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(token string, ttl time.Duration) Session {
	return Session{
		Token:     token,
		UserID:    1,
		Username:  "alice",
		FullName:  "Alice A",
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("tok-1", time.Hour)))

	sess, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, uint(1), sess.UserID)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, "Alice A", sess.FullName)
}

func TestMemoryStoreGetUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	sess, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStoreExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("tok-1", -time.Minute)))

	sess, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, sess, "an expired session must not resolve")
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("tok-1", time.Hour)))
	require.NoError(t, store.Delete(ctx, "tok-1"))

	sess, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	assert.Nil(t, sess)

	// Deleting again is not an error
	require.NoError(t, store.Delete(ctx, "tok-1"))
	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("live-1", time.Hour)))
	require.NoError(t, store.Create(ctx, newSession("stale-1", -time.Minute)))
	require.NoError(t, store.Create(ctx, newSession("stale-2", -time.Hour)))

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	sess, err := store.Get(ctx, "live-1")
	require.NoError(t, err)
	assert.NotNil(t, sess)
}

func TestSessionExpired(t *testing.T) {
	assert.False(t, newSession("t", time.Hour).Expired())
	assert.True(t, newSession("t", -time.Second).Expired())
}
