package vfs

import (
	"errors"
	"io/fs"
	"strings"
	"sync"
)

// ErrInjected is the default error returned by injected faults.
var ErrInjected = errors.New("vfs: injected fault")

// Fault describes how files matching a rule misbehave.
type Fault struct {
	// FailAfterBytes fails writes once this many bytes were written to the
	// file. Negative disables the limit.
	FailAfterBytes int64
	FailOnOpen     bool
	FailOnSync     bool
	FailOnClose    bool
	Err            error
}

// Faulty wraps a FileSystem and injects failures for matching file names.
type Faulty struct {
	FS FileSystem

	mu    sync.Mutex
	rules map[string]Fault
	opens map[string]int
}

// NewFaulty wraps fsys, or Local when fsys is nil.
func NewFaulty(fsys FileSystem) *Faulty {
	if fsys == nil {
		fsys = Local{}
	}
	return &Faulty{
		FS:    fsys,
		rules: make(map[string]Fault),
		opens: make(map[string]int),
	}
}

// AddRule registers a fault for every file whose name contains pattern.
func (f *Faulty) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// Opens reports how many times name was opened.
func (f *Faulty) Opens(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[name]
}

func (f *Faulty) match(name string) (Fault, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			if rule.Err == nil {
				rule.Err = ErrInjected
			}
			return rule, true
		}
	}
	return Fault{FailAfterBytes: -1}, false
}

// OpenFile implements FileSystem.
func (f *Faulty) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	fault, ok := f.match(name)
	if ok && fault.FailOnOpen {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fault.Err}
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.opens[name]++
	f.mu.Unlock()
	if !ok {
		return file, nil
	}
	return &faultyFile{File: file, fault: fault}, nil
}

func (f *Faulty) Stat(name string) (fs.FileInfo, error)      { return f.FS.Stat(name) }
func (f *Faulty) ReadDir(name string) ([]fs.DirEntry, error) { return f.FS.ReadDir(name) }
func (f *Faulty) Remove(name string) error                   { return f.FS.Remove(name) }

type faultyFile struct {
	File
	fault   Fault
	written int64
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if ff.fault.FailAfterBytes >= 0 && ff.written+int64(len(p)) > ff.fault.FailAfterBytes {
		return 0, ff.fault.Err
	}
	n, err := ff.File.Write(p)
	ff.written += int64(n)
	return n, err
}

func (ff *faultyFile) Sync() error {
	if ff.fault.FailOnSync {
		return ff.fault.Err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		_ = ff.File.Close()
		return ff.fault.Err
	}
	return ff.File.Close()
}

var _ FileSystem = (*Faulty)(nil)
