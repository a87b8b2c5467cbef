// FILE: bouquet/config/resources.go
package config

import (
	"errors"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// ClasspathPrefix marks a location that must be loaded from the embedded
// resource namespace instead of the filesystem.
const ClasspathPrefix = "classpath:"

// resourceSet is an ordered union of filesystems. Lookups try each member in
// registration order and return the first hit.
type resourceSet struct {
	mutex   sync.RWMutex
	members []fs.FS
}

var classpath = &resourceSet{}

// RegisterResources appends fsys to the shared embedded resource namespace.
// It is meant to be called from package init functions, typically with an embed.FS.
func RegisterResources(fsys fs.FS) {
	if fsys == nil {
		return
	}
	classpath.mutex.Lock()
	defer classpath.mutex.Unlock()
	classpath.members = append(classpath.members, fsys)
}

// Resources returns the shared embedded resource namespace.
func Resources() fs.FS {
	return classpath
}

// Open implements fs.FS.
func (r *resourceSet) Open(name string) (fs.File, error) {
	r.mutex.RLock()
	members := r.members
	r.mutex.RUnlock()

	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	var firstErr error
	for _, fsys := range members {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// resourceName converts a classpath style location into an fs.FS name.
// Leading slashes and "./" are dropped; names escaping the root are rejected.
func resourceName(location string) (string, bool) {
	name := strings.TrimLeft(location, "/")
	if name == "" {
		return "", false
	}
	name = path.Clean(name)
	if !fs.ValidPath(name) || name == "." {
		return "", false
	}
	return name, true
}
