package application

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateTypeLabel checks that a project type label is a single token
func ValidateTypeLabel(fieldName, label string) error {
	if strings.IndexFunc(label, unicode.IsSpace) >= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not contain whitespace, got: %q", formatFieldName(fieldName), label),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "projectType" -> "project type")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"projectType": "project type",
		"matchMode":   "match mode",
		"path":        "path",
		"keyword":     "keyword",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
