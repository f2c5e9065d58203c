// Package vfs abstracts the single-file byte-stream primitive that a
// multi-volume stream is built on.
//
//   - [File]: one open physical file (read, write, seek, positional read)
//   - [FileSystem]: open, stat, list and remove files
//
// Production code uses [Local]. Tests wrap it with [Faulty] to inject
// write, sync and close failures:
//
//	ffs := vfs.NewFaulty(nil)
//	ffs.AddRule(".0002", vfs.Fault{FailAfterBytes: 0})
//	s, err := multivolume.Open(base, multivolume.ModeWriteTruncate,
//	    multivolume.WithFileSystem(ffs))
//
// Operations carry no context.Context: local file I/O cannot be
// interrupted at the syscall level.
package vfs
