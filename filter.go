// filter.go
package main

import (
	"log/slog"
	"strings"
)

// Filter is the single inclusion predicate shared by every consumer of
// the walk: directory pruning, statistics, the tree rendering, the file
// index, and the content sections. Centralizing it here keeps those
// outputs operating on an identical file set.
type Filter struct {
	outputName   string
	toolName     string
	ignoreName   string
	ignoredNames map[string]struct{}
	ignoredDirs  map[string]struct{}
	binaryExts   map[string]struct{}
	includeEmpty bool
	matcher      *Matcher
}

// newFilter builds a Filter from the effective configuration. outputName
// and toolName are basenames; matcher may be nil.
func newFilter(cfg Config, outputName, toolName string, matcher *Matcher) *Filter {
	includeEmpty := false
	if cfg.IncludeEmpty != nil {
		includeEmpty = *cfg.IncludeEmpty
	}
	return &Filter{
		outputName:   outputName,
		toolName:     toolName,
		ignoreName:   cfg.IgnoreFilename,
		ignoredNames: stringSet(cfg.IgnoredNames),
		ignoredDirs:  stringSet(cfg.IgnoredDirs),
		binaryExts:   extensionSet(cfg.BinaryExtensions),
		includeEmpty: includeEmpty,
		matcher:      matcher,
	}
}

// includeFile decides whether a regular file belongs in the report.
// Checks run cheapest first and short-circuit: generated output, the
// tool itself, the ignore file, static name blacklist, binary
// extension, ignore patterns, then emptiness.
func (f *Filter) includeFile(relPath, name string, size int64) bool {
	if name == f.outputName {
		return false
	}
	if name == f.toolName {
		return false
	}
	if name == f.ignoreName {
		return false
	}
	if _, ok := f.ignoredNames[name]; ok {
		return false
	}
	if _, ok := f.binaryExts[lowerExt(name)]; ok {
		return false
	}
	if f.matcher.Matches(relPath) {
		return false
	}
	if size == 0 && !f.includeEmpty {
		return false
	}
	return true
}

// includeDir is the reduced directory form of the predicate, applied
// before descending so excluded subtrees are never walked. The .git
// metadata directory is always pruned regardless of configuration.
func (f *Filter) includeDir(relPath, name string) bool {
	if name == ".git" {
		return false
	}
	if _, ok := f.ignoredDirs[name]; ok {
		slog.Debug("Pruning directory from static ignore set.", "path", relPath)
		return false
	}
	if f.matcher.Matches(relPath) {
		slog.Debug("Pruning directory matched by ignore pattern.", "path", relPath)
		return false
	}
	return true
}

// lowerExt returns the lowercased extension of name including the dot,
// or "" when there is none.
func lowerExt(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx > 0 {
		return strings.ToLower(name[idx:])
	}
	return ""
}
