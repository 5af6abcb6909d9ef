package objstore

import (
	"context"

	"github.com/pkg/errors"
)

// UpdateFunc computes the next content of a key from its current content.
// exists is false when the key has no record.
type UpdateFunc func(current []byte, exists bool) ([]byte, error)

type updateConfig struct {
	maxAttempts int
}

// UpdateOption configures Update.
type UpdateOption func(*updateConfig)

// WithMaxAttempts bounds the number of read-modify-write rounds. Values
// below one are ignored.
func WithMaxAttempts(n int) UpdateOption {
	return func(c *updateConfig) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// Update applies fn to key with a read-modify-write loop, retrying when a
// concurrent writer wins the race. Each round writes with Match on the etag
// it read, or None if the key was absent. Errors from fn and backend errors
// end the loop immediately. When every attempt conflicts the returned error
// wraps ErrConflict.
func Update(ctx context.Context, s Store, key string, fn UpdateFunc, opts ...UpdateOption) (string, error) {
	cfg := updateConfig{maxAttempts: 3}
	for _, apply := range opts {
		apply(&cfg)
	}

	for attempt := 1; ; attempt++ {
		obj, found, err := s.Get(ctx, key)
		if err != nil {
			return "", err
		}

		cond := None()
		var current []byte
		if found {
			cond = Match(obj.ETag)
			current = obj.Data
		}

		next, err := fn(current, found)
		if err != nil {
			return "", err
		}

		etag, err := s.Put(ctx, key, next, cond)
		if err == nil {
			return etag, nil
		}
		if !IsConflict(err) {
			return "", err
		}
		if attempt >= cfg.maxAttempts {
			return "", errors.Wrapf(err, "update %q: gave up after %d attempts", key, attempt)
		}
		if err := ctx.Err(); err != nil {
			return "", NewError("update", key, Transient, err)
		}
	}
}
