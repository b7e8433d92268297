package constants

import (
	"path/filepath"
	"strings"
)

// DetectContentType maps an attachment filename to the MIME type ODK media
// usually carries. Attachments are stored byte-identical, so the extension is
// the only signal available before download.
func DetectContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".amr":
		return "audio/amr"
	case ".wav":
		return "audio/wav"
	case ".mp4":
		return "video/mp4"
	case ".csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
