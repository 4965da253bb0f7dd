// Package store provides raw byte-level access to the task file.
// Read creates the file on first use, Write overwrites it completely.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/go-pkgz/lgr"
)

// File keeps access to a single file, not thread safe
type File struct {
	path string
}

// ReadResult is the outcome of a successful Read
type ReadResult struct {
	Content []byte
	Created bool // file was missing and created empty by this read
}

// IoError wraps any OS level failure of the store
type IoError struct {
	Op   string // stat, create, read or write
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying OS error
func (e *IoError) Unwrap() error {
	return e.Err
}

// New makes store for given path. The file is not touched until Read or Write
func New(path string) *File {
	return &File{path: path}
}

// Read returns the whole content of the file. Missing file created empty first.
func (f *File) Read() (ReadResult, error) {
	res := ReadResult{}
	if _, err := os.Stat(f.path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return ReadResult{}, &IoError{Op: "stat", Path: f.path, Err: err}
		}
		fh, err := os.Create(f.path)
		if err != nil {
			return ReadResult{}, &IoError{Op: "create", Path: f.path, Err: err}
		}
		if err := fh.Close(); err != nil {
			return ReadResult{}, &IoError{Op: "create", Path: f.path, Err: err}
		}
		log.Printf("[DEBUG] created empty task file %s", f.path)
		res.Created = true
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return ReadResult{}, &IoError{Op: "read", Path: f.path, Err: err}
	}
	log.Printf("[DEBUG] read %d bytes from %s", len(data), f.path)
	res.Content = data
	return res, nil
}

// Write creates or truncates the file and writes data to it.
// Not crash safe, interrupted write may leave the file empty or partial.
func (f *File) Write(data []byte) error {
	if err := os.WriteFile(f.path, data, 0o644); err != nil { //nolint:gosec // task file is not sensitive
		return &IoError{Op: "write", Path: f.path, Err: err}
	}
	log.Printf("[DEBUG] wrote %d bytes to %s", len(data), f.path)
	return nil
}

func (f *File) String() string {
	return f.path
}
