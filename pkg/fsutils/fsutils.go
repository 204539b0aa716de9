package fsutils

import (
	"os"
	"regexp"
	"strings"
)

// CreateDir creates a directory (and parents) if it doesn't exist.
func CreateDir(path string) error {
	return os.MkdirAll(path, 0755) // Use standard permission bits
}

// WriteToFile writes content to a file, overwriting if it exists.
func WriteToFile(path string, content []byte) error {
	return os.WriteFile(path, content, 0644) // Standard file permissions
}

// ReadFile reads the content of a file.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FileExists checks if a path exists and is a regular file (not a directory).
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		// NotExist or any other stat failure counts as "not usable".
		return false
	}
	return !info.IsDir()
}

// nonAlphanumericRegex matches any character that is NOT a lowercase letter,
// number, underscore, hyphen or period.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9_.-]+`)
var collapseUnderscoreRegex = regexp.MustCompile(`_+`)

// SanitizeFilename converts a string into a safe format suitable for slugs
// and export filenames. It lowercases, replaces spaces and disallowed
// characters with underscores, and collapses consecutive underscores.
func SanitizeFilename(name string) string {
	lower := strings.ToLower(name)
	trimmed := strings.TrimSpace(lower)
	noSpaces := strings.ReplaceAll(trimmed, " ", "_")
	sanitized := nonAlphanumericRegex.ReplaceAllString(noSpaces, "_")
	collapsed := collapseUnderscoreRegex.ReplaceAllString(sanitized, "_")
	if collapsed == "" && name != "" {
		return "_"
	}
	return collapsed
}
