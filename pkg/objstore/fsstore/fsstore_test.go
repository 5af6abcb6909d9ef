package fsstore_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/serverlessresearch/objstore/pkg/objstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/fsstore"
	"github.com/serverlessresearch/objstore/pkg/objstore/objstoretest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsStoreOnDisk(t *testing.T) {
	objstoretest.Run(t, func(t *testing.T) objstore.Store {
		t.Helper()
		s, err := fsstore.New(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestFsStoreInMemory(t *testing.T) {
	objstoretest.Run(t, func(t *testing.T) objstore.Store {
		t.Helper()
		s, err := fsstore.New("/objects", fsstore.WithFs(afero.NewMemMapFs()))
		require.NoError(t, err)
		return s
	})
}

func TestKeyMapsToNestedFile(t *testing.T) {
	root := t.TempDir()
	s, err := fsstore.New(root)
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "a/b/c.txt", []byte("deep"), objstore.Any())
	require.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(root, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(onDisk))
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := fsstore.New("/root", fsstore.WithFs(fs))
	require.NoError(t, err)
	ctx := context.Background()

	etag, err := s.Put(ctx, "dir/k", []byte("v1"), objstore.None())
	require.NoError(t, err)
	_, err = s.Put(ctx, "dir/k", []byte("v2"), objstore.Match(etag))
	require.NoError(t, err)
	_, err = s.Put(ctx, "dir/k", []byte("v3"), objstore.Match(etag))
	require.ErrorIs(t, err, objstore.ErrConflict)

	names, err := afero.ReadDir(fs, "/root/dir")
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "k", names[0].Name())
}

func TestListSkipsTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := fsstore.New("/root", fsstore.WithFs(fs))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "a/x", []byte("x"), objstore.Any())
	require.NoError(t, err)
	orphan := "/root/a/.y.tmp-0b6b1a8e-7c55-4a4b-9f0e-2f4b3c8f3a11"
	require.NoError(t, afero.WriteFile(fs, orphan, []byte("partial"), 0o644))

	keys, err := objstore.Collect(s.List(ctx, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"a/x"}, keys)
}

func TestTempLookingKeyRejected(t *testing.T) {
	s, err := fsstore.New("/root", fsstore.WithFs(afero.NewMemMapFs()))
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "a/.y.tmp-0b6b1a8e-7c55-4a4b-9f0e-2f4b3c8f3a11", []byte("x"), objstore.Any())
	assert.ErrorIs(t, err, objstore.ErrInvalidKey)

	// Dot files in general are fine.
	_, err = s.Put(context.Background(), "a/.y.tmp-notauuid", []byte("x"), objstore.Any())
	assert.NoError(t, err)
}

func TestDeletePrunesEmptyDirectories(t *testing.T) {
	root := t.TempDir()
	s, err := fsstore.New(root)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "a/b/c/leaf", []byte("1"), objstore.Any())
	require.NoError(t, err)
	_, err = s.Put(ctx, "a/sibling", []byte("2"), objstore.Any())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "a/b/c/leaf", objstore.Any()))

	_, err = os.Stat(filepath.Join(root, "a", "b"))
	assert.True(t, os.IsNotExist(err), "a/b should be pruned, stat err = %v", err)
	_, err = os.Stat(filepath.Join(root, "a", "sibling"))
	assert.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "a/sibling", objstore.Any()))
	_, err = os.Stat(filepath.Join(root, "a"))
	assert.True(t, os.IsNotExist(err), "a should be pruned, stat err = %v", err)
	_, err = os.Stat(root)
	assert.NoError(t, err, "root must survive pruning")
}

func TestDirectoryIsNotARecord(t *testing.T) {
	s, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "a/b", []byte("x"), objstore.Any())
	require.NoError(t, err)

	_, found, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = s.Get(ctx, "a/b/c")
	require.NoError(t, err)
	assert.False(t, found)

	// A file cannot also be a directory.
	_, err = s.Put(ctx, "a/b/c", []byte("y"), objstore.Any())
	assert.True(t, objstore.IsPermanent(err), "got %v, want permanent error", err)
	assertUnchanged(t, s, "a/b", "x")
}

func TestPurgeTemp(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := fsstore.New("/root", fsstore.WithFs(fs))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "a/keep", []byte("k"), objstore.Any())
	require.NoError(t, err)
	stale := "/root/a/.gone.tmp-0b6b1a8e-7c55-4a4b-9f0e-2f4b3c8f3a11"
	fresh := "/root/.new.tmp-5e0f8a3c-1d2b-4c6e-8f9a-0b1c2d3e4f50"
	require.NoError(t, afero.WriteFile(fs, stale, []byte("x"), 0o644))
	require.NoError(t, afero.WriteFile(fs, fresh, []byte("y"), 0o644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, fs.Chtimes(stale, old, old))

	n, err := s.PurgeTemp(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	exists, err := afero.Exists(fs, stale)
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(fs, fresh)
	require.NoError(t, err)
	assert.True(t, exists)
	assertUnchanged(t, s, "a/keep", "k")
}

func TestListPrefixOutsideRoot(t *testing.T) {
	root := t.TempDir()
	s, err := fsstore.New(filepath.Join(root, "store"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret"), []byte("s"), 0o644))

	keys, err := objstore.Collect(s.List(context.Background(), "../"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// flakyFs fails temp file creation with the configured errno.
type flakyFs struct {
	afero.Fs
	errno syscall.Errno
}

func (f flakyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.Contains(filepath.Base(name), ".tmp-") {
		return nil, &os.PathError{Op: "open", Path: name, Err: f.errno}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestErrorKinds(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		errno     syscall.Errno
		transient bool
	}{
		{syscall.EAGAIN, true},
		{syscall.EINTR, true},
		{syscall.EBUSY, true},
		{syscall.ENOSPC, false},
		{syscall.EACCES, false},
	}
	for _, tc := range cases {
		t.Run(tc.errno.Error(), func(t *testing.T) {
			base := afero.NewMemMapFs()
			s, err := fsstore.New("/root", fsstore.WithFs(flakyFs{Fs: base, errno: tc.errno}))
			require.NoError(t, err)

			_, err = s.Put(ctx, "k", []byte("v"), objstore.Any())
			require.Error(t, err)
			assert.False(t, objstore.IsConflict(err))
			assert.Equal(t, tc.transient, objstore.IsTransient(err), "err = %v", err)
			assert.Equal(t, !tc.transient, objstore.IsPermanent(err), "err = %v", err)
			assert.ErrorIs(t, err, tc.errno)

			_, found, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found, "failed put must not leave a record")
		})
	}
}

func TestFailedPutLeavesNoDirectories(t *testing.T) {
	ctx := context.Background()
	base := afero.NewMemMapFs()
	s, err := fsstore.New("/root", fsstore.WithFs(flakyFs{Fs: base, errno: syscall.ENOSPC}))
	require.NoError(t, err)

	_, err = s.Put(ctx, "x/y/z", []byte("v"), objstore.None())
	require.True(t, objstore.IsPermanent(err), "got %v", err)
	exists, err := afero.Exists(base, "/root/x")
	require.NoError(t, err)
	assert.False(t, exists, "x must be pruned after the failed put")

	// Once space frees up, the shorter keys are usable.
	s, err = fsstore.New("/root", fsstore.WithFs(base))
	require.NoError(t, err)
	_, err = s.Put(ctx, "x/y", []byte("y"), objstore.None())
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "x/y", objstore.Any()))
	_, err = s.Put(ctx, "x", []byte("x"), objstore.None())
	require.NoError(t, err)
	assertUnchanged(t, s, "x", "x")
}

func TestEmptyDirectoryDoesNotBlockPut(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755))
	s, err := fsstore.New(root)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "a", []byte("v"), objstore.None())
	require.NoError(t, err)
	assertUnchanged(t, s, "a", "v")

	// A directory holding records stays put.
	_, err = s.Put(ctx, "d/e", []byte("e"), objstore.Any())
	require.NoError(t, err)
	_, err = s.Put(ctx, "d", []byte("d"), objstore.Any())
	assert.True(t, objstore.IsPermanent(err), "got %v", err)
	assertUnchanged(t, s, "d/e", "e")
}

func TestFailedPutKeepsEmptyRecordAtParent(t *testing.T) {
	s, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "a", nil, objstore.Any())
	require.NoError(t, err)
	_, err = s.Put(ctx, "a/b", []byte("x"), objstore.Any())
	require.Error(t, err)

	_, found, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, found, "an empty record is not an empty directory")
}

func TestListOrderMatchesKeyOrder(t *testing.T) {
	s, err := fsstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	for _, key := range []string{"a/x", "a.txt", "a-b", "a0", "b"} {
		_, err := s.Put(ctx, key, []byte(key), objstore.Any())
		require.NoError(t, err)
	}

	keys, err := objstore.Collect(s.List(ctx, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"a-b", "a.txt", "a/x", "a0", "b"}, keys)

	keys, err = objstore.Collect(s.List(ctx, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a-b", "a.txt", "a/x", "a0"}, keys)
}

func assertUnchanged(t *testing.T, s objstore.Store, key, want string) {
	t.Helper()
	obj, found, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, string(obj.Data))
}
