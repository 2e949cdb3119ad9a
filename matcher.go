// matcher.go
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Matcher holds compiled ignore-file patterns. A nil *Matcher is valid
// and matches nothing, which is how a missing or unreadable ignore file
// degrades to "no exclusions".
type Matcher struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	raw string
	re  *regexp.Regexp
}

// loadIgnorePatterns reads an ignore file and returns its raw pattern
// lines. Blank lines and '#' comments are skipped, surrounding
// whitespace is trimmed.
func loadIgnorePatterns(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var patterns []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}

// newMatcher compiles raw pattern lines into a Matcher. Matching is a
// deliberately simplified wildcard scheme, not full gitignore: '*'
// matches any run of characters (including '/'), '?' matches a single
// character, and a pattern matches any path it is a prefix of. There is
// no negation, no anchoring syntax, and no '**'.
func newMatcher(rawPatterns []string) *Matcher {
	m := &Matcher{patterns: make([]ignorePattern, 0, len(rawPatterns))}
	for _, raw := range rawPatterns {
		pattern := strings.TrimSuffix(raw, "/")
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(patternToRegex(pattern))
		if err != nil {
			slog.Warn("Skipping unusable ignore pattern.", "pattern", raw, "error", err)
			continue
		}
		m.patterns = append(m.patterns, ignorePattern{raw: raw, re: re})
	}
	return m
}

// patternToRegex translates a wildcard pattern into a regexp source
// anchored at the start of the path only, giving prefix semantics.
func patternToRegex(pattern string) string {
	var regex strings.Builder
	regex.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		char := pattern[i]
		switch char {
		case '*':
			regex.WriteString(".*")
		case '?':
			regex.WriteString(".")
		case '.', '[', ']', '{', '}', '(', ')', '+', '^', '$', '|', '\\':
			regex.WriteByte('\\')
			regex.WriteByte(char)
		default:
			regex.WriteByte(char)
		}
	}
	return regex.String()
}

// Matches reports whether any pattern matches a prefix of the
// slash-separated path relative to the walk root. A wildcard pattern
// like "*.log" still applies at any depth because '*' crosses
// separators; a bare name like "build" only excludes paths starting
// with it.
func (m *Matcher) Matches(relPath string) bool {
	if m == nil {
		return false
	}
	for _, p := range m.patterns {
		if p.re.MatchString(relPath) {
			return true
		}
	}
	return false
}

// matcherForRoot builds a Matcher from the ignore file in root, if one
// exists. Absence is not an error; any failure degrades to a nil
// matcher with a diagnostic, never aborting the run.
func matcherForRoot(root, ignoreName string) *Matcher {
	path := filepath.Join(root, ignoreName)
	patterns, err := loadIgnorePatterns(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No ignore file found. Proceeding without exclusions.", "path", path)
		} else {
			slog.Warn("Could not read ignore file. Proceeding without exclusions.", "path", path, "error", err)
		}
		return nil
	}
	slog.Debug("Loaded ignore patterns.", "path", path, "count", len(patterns))
	return newMatcher(patterns)
}
