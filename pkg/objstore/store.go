package objstore

import (
	"context"
	"iter"
)

// Store provides conditional reads and writes of blobs by key. All
// implementations are safe for concurrent use.
type Store interface {
	// Get returns the record stored at key. A missing key is reported with
	// found == false and a nil error.
	Get(ctx context.Context, key string) (obj Object, found bool, err error)

	// Put installs data at key if cond holds against the current record and
	// returns the new etag. A failed condition returns ErrConflict without
	// mutating anything.
	Put(ctx context.Context, key string, data []byte, cond IfMatch) (etag string, err error)

	// Delete removes key if cond holds. Deleting an absent key under Any or
	// None succeeds without effect; under Match it is a conflict.
	Delete(ctx context.Context, key string, cond IfMatch) error

	// List enumerates the keys starting with prefix. The sequence is
	// computed lazily from current state on every call. A failure is
	// yielded once, as the last element.
	List(ctx context.Context, prefix string) iter.Seq2[string, error]
}

// Collect drains a listing into a slice.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var keys []string
	for key, err := range seq {
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
