// Package kv is the per-client blob storage behind orders, wishlists and
// profiles. Values are opaque bytes; callers decide on the encoding.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ticketfront/internal/logging"
)

var (
	// ErrNotFound is returned by Get when a key has never been written or was
	// deleted.
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt marks a stored value that could not be decoded.
	ErrCorrupt = errors.New("corrupt stored value")
)

// Well-known keys.
const (
	KeyOrders   = "userOrders"
	KeyWishlist = "wishlist"
	KeyProfile  = "userProfile"
)

// AnonymousClient is the namespace used when a request carries no client id.
const AnonymousClient = "anonymous"

// Store is a flat string-keyed blob store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type namespaced struct {
	prefix string
	store  Store
}

// Namespace scopes every key of store under clientID, so one backend can hold
// many browsers' data side by side. Keys become "<clientID>:<key>".
func Namespace(store Store, clientID string) Store {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		clientID = AnonymousClient
	}
	return &namespaced{prefix: clientID + ":", store: store}
}

func (n *namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.store.Get(ctx, n.prefix+key)
}

func (n *namespaced) Put(ctx context.Context, key string, value []byte) error {
	return n.store.Put(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.prefix+key)
}

// GetJSON loads and decodes key. found is false when the key is missing. A
// value that does not decode is reported as an error wrapping ErrCorrupt.
func GetJSON[T any](ctx context.Context, store Store, key string) (value T, found bool, err error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, err
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return value, true, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return decoded, true, nil
}

// LoadJSON is GetJSON for values that may be rebuilt from scratch: a corrupt
// value is logged and treated like a missing one.
func LoadJSON[T any](ctx context.Context, store Store, key string) (T, error) {
	value, _, err := GetJSON[T](ctx, store, key)
	if errors.Is(err, ErrCorrupt) {
		logging.WithContext(ctx).Warn().Err(err).Str("key", key).Msg("Discarding corrupt stored value")
		var zero T
		return zero, nil
	}
	return value, err
}

// PutJSON encodes v and stores it under key.
func PutJSON(ctx context.Context, store Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Put(ctx, key, raw)
}
