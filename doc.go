// Package multivolume reads and writes a byte stream split across
// sequentially numbered volume files, the layout archivers use for
// split archives and backups (archive.7z.0001, archive.7z.0002, ...).
//
// This package re-exports the stream API of the core subpackage and adds
// whole-stream helpers.
//
// # Quick Start
//
// Split a file into 100 MiB volumes:
//
//	src, err := os.Open("backup.tar")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	n, err := multivolume.Split(src, "out/backup.tar",
//	    multivolume.WithVolumeSize(100<<20))
//
// Read a volume set back as one stream:
//
//	s, err := multivolume.Open("out/backup.tar", multivolume.ModeRead)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	_, err = io.Copy(dst, s)
//
// Continue writing an existing set:
//
//	s, err := multivolume.Open("out/backup.tar", multivolume.ModeAppend,
//	    multivolume.WithVolumeSize(100<<20))
//
// # Volume Naming
//
// Volumes are named <base>.<suffix>. The suffix is a zero-padded counter,
// four decimal digits starting at 1 by default. Use [WithDigits],
// [WithStartIndex] and [WithHexSuffix] for other conventions; the same
// options must be passed when reading the set back.
package multivolume
