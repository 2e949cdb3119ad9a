// filter_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFilter(matcher *Matcher, includeEmpty bool) *Filter {
	cfg := defaultConfig
	cfg.IncludeEmpty = &includeEmpty
	return newFilter(cfg, "myrepo.txt", "repocat", matcher)
}

func TestFilter_IncludeFile(t *testing.T) {
	matcher := newMatcher([]string{"*.secret"})

	testCases := []struct {
		name     string
		relPath  string
		baseName string
		size     int64
		expected bool
	}{
		{"regular source file", "main.go", "main.go", 42, true},
		{"nested source file", "pkg/util/util.go", "util.go", 10, true},
		{"generated output excluded", "myrepo.txt", "myrepo.txt", 100, false},
		{"tool itself excluded", "repocat", "repocat", 9000, false},
		{"ignore file excluded", ".gitignore", ".gitignore", 12, false},
		{"lockfile excluded", "package-lock.json", "package-lock.json", 5000, false},
		{"os metadata excluded", "sub/.DS_Store", ".DS_Store", 1, false},
		{"binary extension excluded", "logo.png", "logo.png", 1234, false},
		{"binary extension case-insensitive", "PHOTO.JPG", "PHOTO.JPG", 7, false},
		{"ignore pattern excluded", "keys/api.secret", "api.secret", 3, false},
		{"empty file excluded", "empty.go", "empty.go", 0, false},
	}

	f := testFilter(matcher, false)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.includeFile(tc.relPath, tc.baseName, tc.size))
		})
	}
}

func TestFilter_IncludeFile_IncludeEmptyOption(t *testing.T) {
	f := testFilter(nil, true)
	assert.True(t, f.includeFile("empty.go", "empty.go", 0))

	f = testFilter(nil, false)
	assert.False(t, f.includeFile("empty.go", "empty.go", 0))
}

func TestFilter_IncludeDir(t *testing.T) {
	matcher := newMatcher([]string{"private"})
	f := testFilter(matcher, false)

	assert.False(t, f.includeDir(".git", ".git"), ".git is always pruned")
	assert.False(t, f.includeDir("node_modules", "node_modules"))
	assert.False(t, f.includeDir("sub/node_modules", "node_modules"), "static dir set applies at any depth")
	assert.False(t, f.includeDir("private", "private"))
	assert.True(t, f.includeDir("src", "src"))
	assert.True(t, f.includeDir("src/internal", "internal"))
}

func TestLowerExt(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"main.go", ".go"},
		{"archive.tar.gz", ".gz"},
		{"UPPER.JSON", ".json"},
		{"README", ""},
		{".gitignore", ""},
		{"trailing.", "."},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, lowerExt(tc.name), "name: %s", tc.name)
	}
}
