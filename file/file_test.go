// FILE: bouquet/file/file_test.go
package file

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFile(t *testing.T, path, content string) File {
	t.Helper()
	fs := afero.NewMemMapFs()
	f := NewOn(fs, path)
	require.NoError(t, f.WriteText(content))
	return f
}

func TestNewOn(t *testing.T) {
	fs := afero.NewMemMapFs()

	f := NewOn(fs, "/data/./reports/../reports/q1.txt")
	assert.Equal(t, filepath.FromSlash("/data/reports/q1.txt"), f.Path())
	assert.Equal(t, "q1.txt", f.Name())
	assert.Equal(t, filepath.FromSlash("/data/reports"), f.Dir())
	assert.Equal(t, filepath.FromSlash("/data/reports"), f.Parent().Path())
	assert.Equal(t, f.Path(), f.String())
	assert.Same(t, fs, f.Fs())
	assert.False(t, f.Exists())
}

func TestNewMakesOSPathsAbsolute(t *testing.T) {
	f := New("relative.txt")
	assert.True(t, filepath.IsAbs(f.Path()))
	assert.Equal(t, "relative.txt", f.Name())
}

func TestHideUnhideBoundary(t *testing.T) {
	f := memFile(t, "/d/x", "payload")

	h, err := f.Hide()
	require.NoError(t, err)
	assert.Equal(t, ".x", h.Name())
	assert.False(t, f.Exists())
	assert.True(t, h.Exists())

	hh, err := h.Hide()
	require.NoError(t, err)
	assert.Equal(t, "..x", hh.Name())

	u, err := hh.Unhide()
	require.NoError(t, err)
	assert.Equal(t, ".x", u.Name())

	u, err = u.Unhide()
	require.NoError(t, err)
	assert.Equal(t, "x", u.Name())

	same, err := u.Unhide()
	require.NoError(t, err)
	assert.Equal(t, "x", same.Name())
	assert.Equal(t, u.Path(), same.Path())
}

func TestHideUnhideRoundTripKeepsContent(t *testing.T) {
	f := memFile(t, "/out/report.txt", "quarterly numbers")

	h, err := f.Hide()
	require.NoError(t, err)
	assert.Equal(t, ".report.txt", h.Name())

	back, err := h.Unhide()
	require.NoError(t, err)
	assert.Equal(t, "report.txt", back.Name())

	content, err := back.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "quarterly numbers", content)
}

func TestHideMissingFile(t *testing.T) {
	f := NewOn(afero.NewMemMapFs(), "/nowhere/ghost")

	_, err := f.Hide()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFile)

	var fe *Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "hide", fe.Op)
	assert.Equal(t, f.Path(), fe.Path)
}

func TestRename(t *testing.T) {
	f := memFile(t, "/a/old.txt", "x")

	r, err := f.Rename("new.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/a/new.txt"), r.Path())
	assert.True(t, r.Exists())
	assert.False(t, f.Exists())

	_, err = r.Rename("")
	assert.ErrorIs(t, err, ErrFile)
}

func TestMove(t *testing.T) {
	t.Run("KeepsNameAndSetsParent", func(t *testing.T) {
		f := memFile(t, "/src/data.bin", "abc")
		dest := filepath.FromSlash("/dst")
		require.NoError(t, NewOn(f.Fs(), dest).CreateDirectory())

		moved, err := f.Move(dest, false, false)
		require.NoError(t, err)
		assert.Equal(t, f.Name(), moved.Name())
		assert.Equal(t, dest, moved.Dir())
		assert.False(t, f.Exists())

		content, err := moved.ReadText()
		require.NoError(t, err)
		assert.Equal(t, "abc", content)
	})

	t.Run("MissingDirectoryWithoutCreateParents", func(t *testing.T) {
		f := memFile(t, "/src/data.bin", "abc")

		_, err := f.Move("/missing/dir", false, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFile)
		assert.True(t, f.Exists())
	})

	t.Run("CreateParents", func(t *testing.T) {
		f := memFile(t, "/src/data.bin", "abc")

		moved, err := f.Move("/deep/new/dir", true, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/deep/new/dir"), moved.Dir())
		assert.True(t, moved.Exists())
	})

	t.Run("ExistingTargetWithoutOverwrite", func(t *testing.T) {
		f := memFile(t, "/src/data.bin", "new")
		existing := NewOn(f.Fs(), "/dst/data.bin")
		require.NoError(t, existing.WriteText("old"))

		_, err := f.Move("/dst", false, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExists)

		content, err := existing.ReadText()
		require.NoError(t, err)
		assert.Equal(t, "old", content)
	})

	t.Run("ExistingTargetWithOverwrite", func(t *testing.T) {
		f := memFile(t, "/src/data.bin", "new")
		require.NoError(t, NewOn(f.Fs(), "/dst/data.bin").WriteText("old"))

		moved, err := f.Move("/dst", false, true)
		require.NoError(t, err)

		content, err := moved.ReadText()
		require.NoError(t, err)
		assert.Equal(t, "new", content)
	})

	t.Run("DestinationIsFile", func(t *testing.T) {
		f := memFile(t, "/src/data.bin", "abc")
		require.NoError(t, NewOn(f.Fs(), "/blocker").WriteText("x"))

		_, err := f.Move("/blocker", true, false)
		assert.ErrorIs(t, err, ErrNotDirectory)
	})
}

func TestTouch(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewOn(fs, "/t/sub/stamp")

	require.NoError(t, f.Touch())
	assert.True(t, f.Exists())

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, fs.Chtimes(f.Path(), old, old))
	require.NoError(t, f.WriteText("keep"))
	require.NoError(t, fs.Chtimes(f.Path(), old, old))

	require.NoError(t, f.Touch())
	info, err := fs.Stat(f.Path())
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(old))

	content, err := f.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "keep", content)
}

func TestWriteAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewOn(fs, "/w/nested/out.txt")

	require.NoError(t, f.WriteText("first"))
	require.NoError(t, f.WriteText("second"))
	text, err := f.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "second", text)

	require.NoError(t, f.WriteBytes([]byte{0, 1, 2}))
	b, err := f.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, b)

	entries, err := afero.ReadDir(fs, f.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files are not left behind")
	assert.Equal(t, "out.txt", entries[0].Name())

	stream := NewOn(fs, "/w/other/stream.txt")
	require.NoError(t, stream.WriteFrom(strings.NewReader("streamed")))

	var buf bytes.Buffer
	require.NoError(t, stream.ReadTo(&buf))
	assert.Equal(t, "streamed", buf.String())
}

func TestWriteKeepsModeAndRejectsDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewOn(fs, "/m/script.sh")
	require.NoError(t, f.WriteText("#!/bin/sh"))
	require.NoError(t, fs.Chmod(f.Path(), 0700))

	require.NoError(t, f.WriteText("#!/bin/sh\necho hi"))
	info, err := fs.Stat(f.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	dir := NewOn(fs, "/m")
	assert.ErrorIs(t, dir.WriteText("x"), ErrFile)
}

func TestReadMissing(t *testing.T) {
	f := NewOn(afero.NewMemMapFs(), "/none.txt")

	_, err := f.ReadText()
	assert.ErrorIs(t, err, ErrFile)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.ErrorIs(t, f.ReadTo(io.Discard), ErrFile)
}

func TestCopyToDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewOn(fs, "/c/src.txt")
	require.NoError(t, f.WriteText("copy me"))
	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, fs.Chtimes(f.Path(), stamp, stamp))

	dup, err := f.CopyToDirectory("/backup")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/backup/src.txt"), dup.Path())
	assert.True(t, f.Exists())

	content, err := dup.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "copy me", content)

	info, err := fs.Stat(dup.Path())
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(stamp))

	_, err = f.CopyToDirectory("/c")
	assert.ErrorIs(t, err, ErrFile)
}

func TestDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := NewOn(fs, "/tree/a/b")

	require.NoError(t, dir.CreateDirectory())
	assert.True(t, dir.IsDir())
	require.NoError(t, dir.CreateDirectory())

	require.NoError(t, dir.Join("leaf.txt").WriteText("x"))

	root := NewOn(fs, "/tree")
	require.NoError(t, root.DeleteDirectory())
	assert.False(t, root.Exists())
	assert.NoError(t, root.DeleteDirectory())

	plain := NewOn(fs, "/plain.txt")
	require.NoError(t, plain.WriteText("x"))
	assert.ErrorIs(t, plain.CreateDirectory(), ErrNotDirectory)
	assert.ErrorIs(t, plain.DeleteDirectory(), ErrNotDirectory)
}

func TestDeleteQuietly(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewOn(fs, "/q/gone.txt")
	require.NoError(t, f.WriteText("x"))

	assert.True(t, f.DeleteQuietly())
	assert.False(t, f.Exists())
	assert.False(t, f.DeleteQuietly())

	empty := NewOn(fs, "/q/empty")
	require.NoError(t, empty.CreateDirectory())
	assert.True(t, empty.DeleteQuietly())
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestCopy(t *testing.T) {
	var out bytes.Buffer
	src := &closeTracker{Reader: strings.NewReader("abc")}
	require.NoError(t, Copy(&out, src, false))
	assert.Equal(t, "abc", out.String())
	assert.False(t, src.closed)

	out.Reset()
	src = &closeTracker{Reader: strings.NewReader("def")}
	require.NoError(t, Copy(&out, src, true))
	assert.Equal(t, "def", out.String())
	assert.True(t, src.closed)
}
