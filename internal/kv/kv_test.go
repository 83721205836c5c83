package kv

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketfront/internal/logging"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	value := []byte(`{"a":1}`)
	require.NoError(t, m.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, m.Delete(ctx, "never-written"))
}

func TestMemoryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory()
	assert.ErrorIs(t, m.Put(ctx, "k", []byte("1")), context.Canceled)
}

func TestNamespaceIsolatesClients(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	alice := Namespace(m, "alice")
	bob := Namespace(m, "bob")

	require.NoError(t, alice.Put(ctx, KeyWishlist, []byte(`[]`)))

	_, err := bob.Get(ctx, KeyWishlist)
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := m.Get(ctx, "alice:"+KeyWishlist)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	anon := Namespace(m, "  ")
	require.NoError(t, anon.Put(ctx, KeyProfile, []byte(`{}`)))
	_, err = m.Get(ctx, AnonymousClient+":"+KeyProfile)
	assert.NoError(t, err)
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	items, found, err := GetJSON[[]string](ctx, m, "list")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)

	require.NoError(t, PutJSON(ctx, m, "list", []string{"a", "b"}))
	items, found, err = GetJSON[[]string](ctx, m, "list")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, items)

	require.NoError(t, m.Put(ctx, "broken", []byte("{not json")))
	_, found, err = GetJSON[[]string](ctx, m, "broken")
	assert.True(t, found)
	assert.True(t, errors.Is(err, ErrCorrupt))

	items, err = LoadJSON[[]string](ctx, m, "broken")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWithLoggingPassesThrough(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	store := WithLogging(NewMemory(), logging.New(logging.Config{Level: "error", Output: &buf}))

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, buf.Len())

	require.NoError(t, store.Put(ctx, "k", []byte("1")))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
	require.NoError(t, store.Delete(ctx, "k"))
}
