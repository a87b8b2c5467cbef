// FILE: bouquet/file/errors.go
package file

import (
	"errors"
	"fmt"
)

var (
	// ErrFile is matched by every error returned from a File operation.
	ErrFile = errors.New("file operation failed")

	// ErrExists reports a move onto an existing target without overwrite.
	ErrExists = errors.New("destination already exists")

	// ErrNotDirectory reports a directory operation on something else.
	ErrNotDirectory = errors.New("not a directory")
)

// Error records a failed operation and the path it was applied to.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("file %s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrFile, e.Err}
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}
