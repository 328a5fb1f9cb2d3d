//go:build !windows

package fs

import "io/fs"

func isExecutable(_ string, mode fs.FileMode) bool {
	return mode&0o111 != 0
}
