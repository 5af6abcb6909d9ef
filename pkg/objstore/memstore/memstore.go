// Package memstore implements objstore.Store over a process-local map. A
// single mutex serializes every operation, which makes it the reference
// implementation of the conditional-write contract.
package memstore

import (
	"context"
	"iter"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/sirupsen/logrus"
)

type record struct {
	data     []byte
	etag     string
	modified time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for write outcomes.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithClock replaces time.Now as the source of LastModified.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

type Store struct {
	mu      sync.Mutex
	records map[string]record

	log logrus.FieldLogger
	now func() time.Time
}

func New(opts ...Option) *Store {
	s := &Store{
		records: make(map[string]record),
		log:     objstore.NopLogger(),
		now:     time.Now,
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

var _ objstore.Store = (*Store)(nil)

func (s *Store) Get(_ context.Context, key string) (objstore.Object, bool, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return objstore.Object{}, false, err
	}

	s.mu.Lock()
	rec, ok := s.records[key]
	s.mu.Unlock()
	if !ok {
		return objstore.Object{}, false, nil
	}

	// Record data is never mutated in place, but callers may mutate what we
	// hand out.
	return objstore.Object{
		Key:          key,
		Data:         append([]byte{}, rec.data...),
		ETag:         rec.etag,
		Size:         int64(len(rec.data)),
		LastModified: rec.modified,
	}, true, nil
}

func (s *Store) Put(_ context.Context, key string, data []byte, cond objstore.IfMatch) (string, error) {
	if err := objstore.ValidateKey(key); err != nil {
		return "", err
	}
	rec := record{
		data: append([]byte{}, data...),
		etag: objstore.ETag(data),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !cond.Check(s.current(key)) {
		objstore.LogOutcome(s.log, "put", key, cond, objstore.ErrConflict)
		return "", objstore.ErrConflict
	}
	rec.modified = s.now()
	s.records[key] = rec
	return rec.etag, nil
}

func (s *Store) Delete(_ context.Context, key string, cond objstore.IfMatch) error {
	if err := objstore.ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(key)
	// Deleting what is already gone is only a conflict under Match.
	if cur == nil && cond.Kind() != objstore.CondMatch {
		return nil
	}
	if !cond.Check(cur) {
		objstore.LogOutcome(s.log, "delete", key, cond, objstore.ErrConflict)
		return objstore.ErrConflict
	}
	delete(s.records, key)
	return nil
}

// List yields a sorted snapshot of the matching keys taken when iteration
// starts.
func (s *Store) List(ctx context.Context, prefix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s.mu.Lock()
		var keys []string
		for k := range s.records {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		s.mu.Unlock()
		sort.Strings(keys)

		for _, k := range keys {
			if err := ctx.Err(); err != nil {
				yield("", objstore.NewError("list", prefix, objstore.Transient, err))
				return
			}
			if !yield(k, nil) {
				return
			}
		}
	}
}

// current returns the record at key as an Object for condition checks.
// Callers must hold s.mu.
func (s *Store) current(key string) *objstore.Object {
	rec, ok := s.records[key]
	if !ok {
		return nil
	}
	return &objstore.Object{Key: key, ETag: rec.etag}
}
