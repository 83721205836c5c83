package kv

import (
	"context"
	"errors"
	"time"

	"ticketfront/internal/logging"
)

type logged struct {
	store  Store
	logger *logging.Logger
}

// WithLogging wraps store so every call is logged at debug level, or at error
// level when the backend fails. A missing key is not a failure.
func WithLogging(store Store, logger *logging.Logger) Store {
	return &logged{store: store, logger: logger}
}

func (l *logged) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := l.store.Get(ctx, key)
	l.observe(ctx, "get", key, start, err)
	return value, err
}

func (l *logged) Put(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := l.store.Put(ctx, key, value)
	l.observe(ctx, "put", key, start, err)
	return err
}

func (l *logged) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := l.store.Delete(ctx, key)
	l.observe(ctx, "delete", key, start, err)
	return err
}

func (l *logged) observe(ctx context.Context, op, key string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	l.logger.StoreOp(ctx, op, key, time.Since(start), err)
}
