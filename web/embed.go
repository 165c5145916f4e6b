// Package web holds the browser front-end: the login page, the dashboard and
// their scripts.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed static
var static embed.FS

// Assets returns the front-end file system rooted at the static directory.
// A non-empty dir replaces the embedded copy with the files on disk.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("error opening static directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static path %q is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}

	return fs.Sub(static, "static")
}
