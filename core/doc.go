// Package multivolume presents a set of sequentially numbered files as one
// randomly addressable byte stream.
//
// A volume set named "backup.tar" with the default naming scheme consists
// of backup.tar.0001, backup.tar.0002, ... . A [Stream] keeps a boundary
// table of cumulative volume offsets and translates the caller's logical
// position into a volume and an offset inside it.
//
// # Modes
//
//   - [ModeRead]: discover the existing volumes and read them as one stream
//   - [ModeWriteTruncate]: create or truncate the first volume and write,
//     adding volumes whenever the configured capacity is reached
//   - [ModeWriteExclusive]: like ModeWriteTruncate but fails with
//     [ErrAlreadyExists] when the first volume exists
//   - [ModeAppend]: reopen an existing set and continue writing after its
//     last byte; append streams are not seekable
//
// # Usage
//
//	s, err := multivolume.Open("out/backup.tar", multivolume.ModeWriteTruncate,
//	    multivolume.WithVolumeSize(100<<20))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	_, err = io.Copy(s, src)
//
// A Stream is not safe for concurrent use.
package multivolume
