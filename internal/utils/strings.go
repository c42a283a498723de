package utils

import (
	"regexp"
	"strings"

	"github.com/sealbox/sealbox/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// IsValidKeyName checks if a key name is valid (alphanumeric, hyphens, underscores).
func IsValidKeyName(name string) bool {
	if name == "" {
		return false
	}
	validPattern := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)
	return validPattern.MatchString(name)
}
