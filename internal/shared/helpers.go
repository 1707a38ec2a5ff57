// Package shared provides common utility functions used across multiple
// packages in the atest-finder codebase.
package shared

import (
	"fmt"
	"strings"
)

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// NormalizeClassName trims whitespace and strips a trailing .java or
// .kt suffix so free-form class references compare cleanly.
func NormalizeClassName(value string) string {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimSuffix(trimmed, ".java")
	return strings.TrimSuffix(trimmed, ".kt")
}
