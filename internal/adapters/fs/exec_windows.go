//go:build windows

package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

func isExecutable(name string, _ fs.FileMode) bool {
	return strings.EqualFold(filepath.Ext(name), ".exe")
}
