// helpers.go
package main

import (
	"fmt"
	"strings"
)

// stringSet converts a list of names into a set for quick lookup.
func stringSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// extensionSet normalizes a list of extension strings (with or without
// leading dots, any case) into a lookup set keyed by ".ext".
func extensionSet(extList []string) map[string]struct{} {
	processed := make(map[string]struct{}, len(extList))
	for _, ext := range extList {
		cleaned := strings.TrimSpace(strings.ToLower(ext))
		if cleaned == "" {
			continue
		}
		if !strings.HasPrefix(cleaned, ".") {
			cleaned = "." + cleaned
		}
		processed[cleaned] = struct{}{}
	}
	return processed
}

// formatBytes formats bytes into human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	val := float64(b) / float64(div)
	unitPrefix := "KMGTPE"[exp]
	if val == float64(int64(val)) {
		return fmt.Sprintf("%d %ciB", int64(val), unitPrefix)
	}
	return fmt.Sprintf("%.1f %ciB", val, unitPrefix)
}

// tern is a small ternary helper for terse formatting code.
func tern[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
