package constants

import "strings"

// Formats for the application source document.
const (
	PDF         = "PDF"
	IMAGE       = "IMAGE"
	SPREADSHEET = "SPREADSHEET"
)

// FileFormats holds the allowed values for the format field on applications.
var FileFormats = []string{PDF, IMAGE, SPREADSHEET}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized file extension to its document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	case "xlsx", "xlsm", "xls":
		return SPREADSHEET
	}
	return ""
}

// IsAsyncFormat reports whether the OCR provider processes this format as a
// long-running job (multi-page inputs) rather than a single synchronous call.
func IsAsyncFormat(format string) bool {
	return format == PDF
}
