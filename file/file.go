// FILE: bouquet/file/file.go

// Package file provides an immutable handle to a filesystem path with
// bulk read, write, move and rename conveniences.
//
// A File is a value. Operations that change the name or location on disk
// (Hide, Unhide, Rename, Move) return a new File for the new path; the
// receiver keeps its old path, which no longer exists afterwards.
//
//	f := file.New("report.txt")
//	hidden, err := f.Hide() // .report.txt
//	if err != nil {
//	    return err
//	}
//	f, err = hidden.Unhide() // report.txt again
package file

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	filePerm = 0644
	dirPerm  = 0755
)

// File is an immutable handle to a path on an afero filesystem.
type File struct {
	fs   afero.Fs
	path string
}

// New returns a handle to path on the OS filesystem, made absolute.
func New(path string) File {
	return NewOn(afero.NewOsFs(), path)
}

// NewOn returns a handle to path on fsys. On the OS filesystem the path is made absolute.
func NewOn(fsys afero.Fs, path string) File {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	clean := filepath.Clean(path)
	if _, isOS := fsys.(*afero.OsFs); isOS {
		if abs, err := filepath.Abs(clean); err == nil {
			clean = abs
		}
	}
	return File{fs: fsys, path: clean}
}

// Path returns the cleaned path of the handle.
func (f File) Path() string { return f.path }

// Name returns the last element of the path.
func (f File) Name() string { return filepath.Base(f.path) }

// Dir returns the directory containing the path.
func (f File) Dir() string { return filepath.Dir(f.path) }

// String returns the path.
func (f File) String() string { return f.path }

// Fs returns the filesystem the handle refers to.
func (f File) Fs() afero.Fs { return f.fs }

// Parent returns a handle to the containing directory.
func (f File) Parent() File { return File{fs: f.fs, path: f.Dir()} }

// Join returns a handle to name inside this path.
func (f File) Join(name string) File {
	return File{fs: f.fs, path: filepath.Join(f.path, name)}
}

// sibling returns a handle to name in the same directory.
func (f File) sibling(name string) File {
	return File{fs: f.fs, path: filepath.Join(f.Dir(), name)}
}

// Exists reports whether anything exists at the path.
func (f File) Exists() bool {
	_, err := f.fs.Stat(f.path)
	return err == nil
}

// IsDir reports whether the path is an existing directory.
func (f File) IsDir() bool {
	info, err := f.fs.Stat(f.path)
	return err == nil && info.IsDir()
}

// Hide renames the file to ".<name>" in the same directory.
func (f File) Hide() (File, error) {
	return f.rename("hide", "."+f.Name())
}

// Unhide strips one leading dot from the name. A name without one is left as is.
func (f File) Unhide() (File, error) {
	name := f.Name()
	if !strings.HasPrefix(name, ".") || name == "." || name == ".." {
		return f, nil
	}
	return f.rename("unhide", name[1:])
}

// Rename renames the file within its current directory.
func (f File) Rename(newName string) (File, error) {
	return f.rename("rename", newName)
}

func (f File) rename(op, newName string) (File, error) {
	if newName == "" {
		return f, wrap(op, f.path, errors.New("empty name"))
	}
	target := f.sibling(newName)
	if target.path == f.path {
		return target, nil
	}
	if err := f.fs.Rename(f.path, target.path); err != nil {
		return f, wrap(op, f.path, err)
	}
	return target, nil
}

// Move moves the file into destDir, keeping its name.
// With createParents, missing directories of destDir are created.
// With overwrite, an existing target is deleted first; without it an existing target is an error.
func (f File) Move(destDir string, createParents, overwrite bool) (File, error) {
	dir := NewOn(f.fs, destDir)
	target := dir.Join(f.Name())

	if _, err := f.fs.Stat(f.path); err != nil {
		return f, wrap("move", f.path, err)
	}

	info, err := f.fs.Stat(dir.path)
	switch {
	case err == nil && !info.IsDir():
		return f, wrap("move", dir.path, ErrNotDirectory)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return f, wrap("move", dir.path, err)
	case err != nil && !createParents:
		return f, wrap("move", dir.path, fmt.Errorf("destination directory does not exist: %w", err))
	case err != nil:
		if err := f.fs.MkdirAll(dir.path, dirPerm); err != nil {
			return f, wrap("move", dir.path, err)
		}
	}

	if target.path == f.path {
		return target, nil
	}

	if target.Exists() {
		if !overwrite {
			return f, wrap("move", target.path, ErrExists)
		}
		if err := f.fs.Remove(target.path); err != nil {
			return f, wrap("move", target.path, err)
		}
	}

	if err := f.fs.Rename(f.path, target.path); err != nil {
		// Cross-device moves cannot rename; copy then delete.
		if _, copyErr := f.copyTo(target); copyErr != nil {
			return f, wrap("move", f.path, errors.Join(err, copyErr))
		}
		if err := f.fs.Remove(f.path); err != nil {
			return target, wrap("move", f.path, err)
		}
	}
	return target, nil
}

// Touch creates the file if it is absent, otherwise sets its modification time to now.
func (f File) Touch() error {
	if !f.Exists() {
		if err := f.fs.MkdirAll(f.Dir(), dirPerm); err != nil {
			return wrap("touch", f.path, err)
		}
		file, err := f.fs.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, filePerm)
		if err != nil {
			return wrap("touch", f.path, err)
		}
		if err := file.Close(); err != nil {
			return wrap("touch", f.path, err)
		}
	}

	now := time.Now()
	return wrap("touch", f.path, f.fs.Chtimes(f.path, now, now))
}

// WriteText replaces the file content with s, creating parent directories.
func (f File) WriteText(s string) error {
	return wrap("write", f.path, f.atomicWrite(strings.NewReader(s)))
}

// WriteBytes replaces the file content with b, creating parent directories.
func (f File) WriteBytes(b []byte) error {
	return wrap("write", f.path, f.atomicWrite(bytes.NewReader(b)))
}

// WriteFrom replaces the file content with everything read from r, creating
// parent directories. r is not closed.
func (f File) WriteFrom(r io.Reader) error {
	return wrap("write", f.path, f.atomicWrite(r))
}

// atomicWrite streams r into a temporary sibling and renames it over the
// path, so readers never observe a partial file. An existing file keeps its mode.
func (f File) atomicWrite(r io.Reader) error {
	dir := f.Dir()
	if err := f.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	perm := os.FileMode(filePerm)
	if info, err := f.fs.Stat(f.path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("path is a directory")
		}
		perm = info.Mode().Perm()
	}

	tempFile, err := afero.TempFile(f.fs, dir, f.Name()+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer f.fs.Remove(tempPath) // no-op after a successful rename

	if _, err := io.Copy(tempFile, r); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := f.fs.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := f.fs.Rename(tempPath, f.path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// ReadText returns the whole file as a string.
func (f File) ReadText() (string, error) {
	b, err := f.ReadBytes()
	return string(b), err
}

// ReadBytes returns the whole file.
func (f File) ReadBytes() ([]byte, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, wrap("read", f.path, err)
	}
	return b, nil
}

// ReadTo copies the whole file to w.
func (f File) ReadTo(w io.Writer) error {
	file, err := f.fs.Open(f.path)
	if err != nil {
		return wrap("read", f.path, err)
	}
	defer file.Close()

	if _, err := io.Copy(w, file); err != nil {
		return wrap("read", f.path, err)
	}
	return nil
}

// CopyToDirectory copies the file into dir under the same name, creating dir
// when needed and preserving mode and modification time. It returns the copy.
func (f File) CopyToDirectory(dir string) (File, error) {
	target := NewOn(f.fs, dir).Join(f.Name())
	if target.path == f.path {
		return f, wrap("copy", f.path, errors.New("source and destination are the same"))
	}
	if err := f.fs.MkdirAll(target.Dir(), dirPerm); err != nil {
		return f, wrap("copy", target.Dir(), err)
	}
	if _, err := f.copyTo(target); err != nil {
		return f, wrap("copy", f.path, err)
	}
	return target, nil
}

// copyTo copies content, mode and modification time to target.
func (f File) copyTo(target File) (int64, error) {
	info, err := f.fs.Stat(f.path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("source is a directory: %s", f.path)
	}

	src, err := f.fs.Open(f.path)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := target.fs.OpenFile(target.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, err
	}

	return n, target.fs.Chtimes(target.path, info.ModTime(), info.ModTime())
}

// CreateDirectory creates the path as a directory, including missing parents.
func (f File) CreateDirectory() error {
	if info, err := f.fs.Stat(f.path); err == nil && !info.IsDir() {
		return wrap("mkdir", f.path, ErrNotDirectory)
	}
	return wrap("mkdir", f.path, f.fs.MkdirAll(f.path, dirPerm))
}

// DeleteDirectory deletes the directory and everything below it.
// A missing directory is not an error.
func (f File) DeleteDirectory() error {
	info, err := f.fs.Stat(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return wrap("rmdir", f.path, err)
	}
	if !info.IsDir() {
		return wrap("rmdir", f.path, ErrNotDirectory)
	}
	return wrap("rmdir", f.path, f.fs.RemoveAll(f.path))
}

// DeleteQuietly deletes a file or an empty directory and reports whether it
// succeeded. Errors are swallowed.
func (f File) DeleteQuietly() bool {
	return f.fs.Remove(f.path) == nil
}

// Copy copies src to dst. With closeInput, src is closed afterwards when it is an io.Closer.
func Copy(dst io.Writer, src io.Reader, closeInput bool) error {
	if closeInput {
		if c, ok := src.(io.Closer); ok {
			defer c.Close()
		}
	}
	if _, err := io.Copy(dst, src); err != nil {
		return &Error{Op: "copy", Err: err}
	}
	return nil
}
