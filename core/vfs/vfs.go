package vfs

import (
	"io"
	"io/fs"
	"os"
)

// File is an open physical file.
type File interface {
	io.ReadWriteCloser
	io.ReaderAt
	io.Seeker
	Stat() (fs.FileInfo, error)
	Sync() error
	Truncate(size int64) error
}

// FileSystem opens and inspects files.
type FileSystem interface {
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error
}

// Local implements FileSystem with the os package.
type Local struct{}

// OpenFile implements FileSystem.
func (Local) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm) //nolint:gosec // caller-provided volume path
}

func (Local) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }
func (Local) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (Local) Remove(name string) error                   { return os.Remove(name) }

// Interface compliance.
var (
	_ FileSystem = Local{}
	_ File       = (*os.File)(nil)
)
