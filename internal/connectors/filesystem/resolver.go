package filesystem

import (
	"path/filepath"
	"strings"
)

// ResolvePath converts a documents location to a clean local path.
// Handles file:// URIs and bare paths.
func ResolvePath(uri string) string {
	// Strip file:// prefix for local paths
	path := strings.TrimPrefix(uri, "file://")
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
