//go:build !unix

package platform

import "io/fs"

// DeviceID returns zero on non-Unix systems.
func DeviceID(info fs.FileInfo) uint64 {
	return 0
}
