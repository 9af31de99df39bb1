package services

import (
	"path/filepath"
	"strings"
)

// ResolveMediaType picks the media type for an uploaded artifact: the
// declared content type wins, then the extension table, then the opaque
// default.
func ResolveMediaType(declared, filename string) string {
	if declared != "" {
		return declared
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg", "png", "webp":
		return "image/" + ext
	default:
		return "application/octet-stream"
	}
}
