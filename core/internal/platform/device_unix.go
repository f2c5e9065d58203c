//go:build unix

package platform

import (
	"io/fs"
	"syscall"
)

// DeviceID extracts the ID of the device containing the file on Unix systems.
func DeviceID(info fs.FileInfo) uint64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return uint64(stat.Dev) //nolint:unconvert,gosec // Dev width varies by platform
	}
	return 0
}
