// Package objstoretest provides a reusable test suite that validates any
// objstore.Store implementation against the conditional-write contract.
package objstoretest

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory creates the Store under test. It may return the same instance
// for every call; each test works under its own random key prefix.
type Factory func(t *testing.T) objstore.Store

// Run executes the full contract test suite against the given factory.
func Run(t *testing.T, factory Factory) {
	t.Run("GetMissing", func(t *testing.T) {
		s, ns := factory(t), namespace()
		_, found, err := s.Get(context.Background(), ns+"nonexistent")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()

		cases := []struct {
			name string
			key  string
			data []byte
		}{
			{"text", ns + "foo.txt", []byte("hello")},
			{"empty", ns + "emptykey", []byte{}},
			{"binary", ns + "bin", []byte{0, 159, 146, 150, 255, 0, 1, 2, 3}},
			{"nested", ns + "nested/dir/structure/file.txt", []byte("deep")},
			{"unicode", ns + "spécial-字符-!@#.bin", []byte("special")},
			{"long", ns + strings.Repeat("a", 200) + "/" + strings.Repeat("b", 200) + "/" + strings.Repeat("c", 200), []byte("long")},
			{"large", ns + "large", bytes.Repeat([]byte{42}, 1024*1024)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				etag, err := s.Put(ctx, tc.key, tc.data, objstore.Any())
				require.NoError(t, err)
				assert.NotEmpty(t, etag)

				obj, found, err := s.Get(ctx, tc.key)
				require.NoError(t, err)
				require.True(t, found)
				assert.True(t, bytes.Equal(tc.data, obj.Data), "content differs after round trip")
				assert.Equal(t, etag, obj.ETag)
				assert.Equal(t, int64(len(tc.data)), obj.Size)
				assert.Equal(t, tc.key, obj.Key)
			})
		}
	})

	t.Run("ReturnedDataIsACopy", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "copy"

		data := []byte("original")
		_, err := s.Put(ctx, key, data, objstore.Any())
		require.NoError(t, err)
		data[0] = 'X'

		obj, _, err := s.Get(ctx, key)
		require.NoError(t, err)
		obj.Data[1] = 'Y'

		again, _, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "original", string(again.Data))
	})

	t.Run("CreateOnce", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "once"

		_, err := s.Put(ctx, key, []byte("c1"), objstore.None())
		require.NoError(t, err)

		_, err = s.Put(ctx, key, []byte("c2"), objstore.None())
		assert.True(t, objstore.IsConflict(err), "second create: got err = %v, want conflict", err)
		assertContent(t, s, key, "c1")
	})

	t.Run("ETagGate", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "gate"

		e1, err := s.Put(ctx, key, []byte("c1"), objstore.Any())
		require.NoError(t, err)

		e2, err := s.Put(ctx, key, []byte("c2"), objstore.Match(e1))
		require.NoError(t, err)
		assert.NotEqual(t, e1, e2)

		_, err = s.Put(ctx, key, []byte("c3"), objstore.Match(e1))
		assert.True(t, objstore.IsConflict(err), "stale etag: got err = %v, want conflict", err)
		assertContent(t, s, key, "c2")

		_, err = s.Put(ctx, key, []byte("c3"), objstore.Match("wrong-etag"))
		assert.True(t, objstore.IsConflict(err), "wrong etag: got err = %v, want conflict", err)
		assertContent(t, s, key, "c2")
	})

	t.Run("MatchOnMissingKey", func(t *testing.T) {
		s, ns := factory(t), namespace()
		_, err := s.Put(context.Background(), ns+"missing", []byte("data"), objstore.Match(objstore.ETag([]byte("data"))))
		assert.True(t, objstore.IsConflict(err), "got err = %v, want conflict", err)

		_, found, err := s.Get(context.Background(), ns+"missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("SameContentSameETag", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "same"

		e1, err := s.Put(ctx, key, []byte("same"), objstore.Any())
		require.NoError(t, err)
		e2, err := s.Put(ctx, key, []byte("same"), objstore.Any())
		require.NoError(t, err)
		assert.Equal(t, e1, e2)

		e3, err := s.Put(ctx, key, []byte("different"), objstore.Match(e2))
		require.NoError(t, err)
		assert.NotEqual(t, e2, e3)

		e4, err := s.Put(ctx, key, []byte("same"), objstore.Match(e3))
		require.NoError(t, err)
		assert.Equal(t, e1, e4)
	})

	t.Run("DeleteSemantics", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "doomed"

		assert.NoError(t, s.Delete(ctx, key, objstore.Any()), "delete absent under Any")
		assert.NoError(t, s.Delete(ctx, key, objstore.None()), "delete absent under None")
		err := s.Delete(ctx, key, objstore.Match("whatever"))
		assert.True(t, objstore.IsConflict(err), "delete absent under Match: got err = %v", err)

		e1, err := s.Put(ctx, key, []byte("v1"), objstore.Any())
		require.NoError(t, err)
		_, err = s.Put(ctx, key, []byte("v2"), objstore.Match(e1))
		require.NoError(t, err)

		err = s.Delete(ctx, key, objstore.Match(e1))
		assert.True(t, objstore.IsConflict(err), "delete with stale etag: got err = %v", err)
		assertContent(t, s, key, "v2")

		err = s.Delete(ctx, key, objstore.None())
		assert.True(t, objstore.IsConflict(err), "delete present under None: got err = %v", err)
		assertContent(t, s, key, "v2")

		require.NoError(t, s.Delete(ctx, key, objstore.Any()))
		_, found, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)

		e3, err := s.Put(ctx, key, []byte("v3"), objstore.None())
		require.NoError(t, err, "recreate after delete")
		require.NoError(t, s.Delete(ctx, key, objstore.Match(e3)))
		_, found, err = s.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("ConcurrentPutAny", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "contended"

		const writers = 8
		contents := make([][]byte, writers)
		for i := range contents {
			contents[i] = bytes.Repeat([]byte{byte('a' + i)}, 64*1024)
		}

		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(data []byte) {
				defer wg.Done()
				_, err := s.Put(ctx, key, data, objstore.Any())
				errs <- err
			}(contents[i])
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}

		obj, found, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, found)
		matched := false
		for _, c := range contents {
			if bytes.Equal(c, obj.Data) {
				matched = true
			}
		}
		assert.True(t, matched, "final content is not one of the submitted contents")
	})

	t.Run("ConcurrentCASCounter", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "counter"

		const workers, increments = 4, 5
		var wg sync.WaitGroup
		errs := make(chan error, workers*increments)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < increments; j++ {
					_, err := objstore.Update(ctx, s, key, increment, objstore.WithMaxAttempts(1000))
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		assertContent(t, s, key, strconv.Itoa(workers*increments))
	})

	t.Run("Listing", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()

		for _, k := range []string{"a/x", "a/y", "b/z"} {
			_, err := s.Put(ctx, ns+k, []byte(k), objstore.Any())
			require.NoError(t, err)
		}

		keys, err := objstore.Collect(s.List(ctx, ns+"a/"))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{ns + "a/x", ns + "a/y"}, keys)

		keys, err = objstore.Collect(s.List(ctx, ns))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{ns + "a/x", ns + "a/y", ns + "b/z"}, keys)

		keys, err = objstore.Collect(s.List(ctx, ns+"no_such_prefix/"))
		require.NoError(t, err)
		assert.Empty(t, keys)

		// A partial segment is a valid prefix.
		keys, err = objstore.Collect(s.List(ctx, ns+"b"))
		require.NoError(t, err)
		assert.Equal(t, []string{ns + "b/z"}, keys)
	})

	t.Run("ListingReflectsCurrentState", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			_, err := s.Put(ctx, fmt.Sprintf("%sitem-%d", ns, i), []byte{byte(i)}, objstore.Any())
			require.NoError(t, err)
		}

		seq := s.List(ctx, ns)
		var first []string
		for k, err := range seq {
			require.NoError(t, err)
			first = append(first, k)
			if len(first) == 2 {
				break
			}
		}
		assert.Len(t, first, 2)

		require.NoError(t, s.Delete(ctx, ns+"item-0", objstore.Any()))

		// Iterating again starts over from current state.
		keys, err := objstore.Collect(seq)
		require.NoError(t, err)
		sort.Strings(keys)
		assert.Equal(t, []string{ns + "item-1", ns + "item-2", ns + "item-3", ns + "item-4"}, keys)
	})

	t.Run("InvalidKeys", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()

		for _, key := range []string{"", "/" + ns + "abs", ns + "a//b", ns + "a/../b", ns + "trailing/"} {
			_, err := s.Put(ctx, key, []byte("x"), objstore.Any())
			assert.ErrorIs(t, err, objstore.ErrInvalidKey, "put %q", key)
			assert.True(t, objstore.IsPermanent(err), "put %q: got %v, want permanent", key, err)

			_, _, err = s.Get(ctx, key)
			assert.ErrorIs(t, err, objstore.ErrInvalidKey, "get %q", key)

			err = s.Delete(ctx, key, objstore.Any())
			assert.ErrorIs(t, err, objstore.ErrInvalidKey, "delete %q", key)
		}
	})

	t.Run("EndToEnd", func(t *testing.T) {
		s, ns := factory(t), namespace()
		ctx := context.Background()
		key := ns + "hello.txt"

		e, err := s.Put(ctx, key, []byte("Hello, world!"), objstore.Any())
		require.NoError(t, err)
		assertContent(t, s, key, "Hello, world!")

		_, err = s.Put(ctx, key, []byte("Bye"), objstore.Match(e))
		require.NoError(t, err)

		_, err = s.Put(ctx, key, []byte("X"), objstore.Match(e))
		assert.True(t, objstore.IsConflict(err), "got err = %v, want conflict", err)
		assertContent(t, s, key, "Bye")
	})
}

func namespace() string {
	return "objstoretest/" + uuid.New().String() + "/"
}

func increment(current []byte, exists bool) ([]byte, error) {
	n := 0
	if exists {
		var err error
		if n, err = strconv.Atoi(string(current)); err != nil {
			return nil, err
		}
	}
	return []byte(strconv.Itoa(n + 1)), nil
}

func assertContent(t *testing.T, s objstore.Store, key, want string) {
	t.Helper()
	obj, found, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, found, "key %q missing", key)
	assert.Equal(t, want, string(obj.Data))
}
