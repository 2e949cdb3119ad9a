// stats_test.go
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesFor(t *testing.T, root string, relPaths ...string) []FileEntry {
	t.Helper()
	entries := make([]FileEntry, 0, len(relPaths))
	for _, rel := range relPaths {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		require.NoError(t, err)
		name := rel
		if idx := strings.LastIndexByte(rel, '/'); idx >= 0 {
			name = rel[idx+1:]
		}
		entries = append(entries, FileEntry{RelPath: rel, Name: name, Ext: lowerExt(name), Size: info.Size()})
	}
	return entries
}

func TestCountLines(t *testing.T) {
	tempDir := t.TempDir()
	testCases := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty", "", 0},
		{"single terminated line", "hello\n", 1},
		{"single unterminated line", "hello", 1},
		{"multiple lines", "a\nb\nc\n", 3},
		{"final line unterminated", "a\nb\nc", 3},
		{"blank lines count", "\n\n\n", 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(tempDir, strings.ReplaceAll(tc.name, " ", "_"))
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))
			lines, err := countLines(path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lines)
		})
	}
}

func TestCollectStats(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{
		"main.go":      "package main\n\nfunc main() {}\n",
		"util.go":      "package main\n",
		"notes.md":     "# one\n# two\n",
		"README":       "readme\n",
		"sub/data.csv": "a,b\n1,2\n3,4\n",
	})
	files := entriesFor(t, tempDir, "main.go", "util.go", "notes.md", "README", "sub/data.csv")

	stats, errs := collectStats(tempDir, files)
	assert.Empty(t, errs)

	assert.Equal(t, 5, stats.TotalFiles)
	assert.Equal(t, 10, stats.TotalLines)
	assert.Equal(t, map[string]int{".go": 2, ".md": 1, noExtensionKey: 1, ".csv": 1}, stats.FilesPerExt)
	assert.Equal(t, map[string]int{".go": 4, ".md": 2, noExtensionKey: 1, ".csv": 3}, stats.LinesPerExt)
	assert.Equal(t, "main.go", stats.Largest.Name)
	assert.Equal(t, 3, stats.Largest.Lines)

	var totalSize int64
	for _, f := range files {
		totalSize += f.Size
	}
	assert.InDelta(t, float64(totalSize)/5, stats.AverageSize, 0.001)
}

func TestCollectStats_EmptyRoot(t *testing.T) {
	stats, errs := collectStats(t.TempDir(), nil)
	assert.Empty(t, errs)
	assert.Equal(t, 0, stats.TotalFiles)
	assert.Equal(t, 0, stats.TotalLines)
	assert.Equal(t, 0.0, stats.AverageSize)
	assert.Equal(t, LargestFile{}, stats.Largest)
}

func TestCollectStats_LargestTieKeepsFirst(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{
		"first.txt":  "12345678\n",
		"second.txt": "abcdefgh\n",
	})
	files := entriesFor(t, tempDir, "first.txt", "second.txt")
	require.Equal(t, files[0].Size, files[1].Size, "fixture files must tie on size")

	stats, _ := collectStats(tempDir, files)
	assert.Equal(t, "first.txt", stats.Largest.Name)

	// Reversed traversal order flips the winner.
	stats, _ = collectStats(tempDir, []FileEntry{files[1], files[0]})
	assert.Equal(t, "second.txt", stats.Largest.Name)
}

func TestCollectStats_UnreadableFileRecorded(t *testing.T) {
	tempDir := setupTestDir(t, map[string]string{"ok.txt": "fine\n"})
	files := entriesFor(t, tempDir, "ok.txt")
	files = append(files, FileEntry{RelPath: "gone.txt", Name: "gone.txt", Ext: ".txt", Size: 4})

	stats, errs := collectStats(tempDir, files)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "gone.txt")
	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 1, stats.TotalLines, "unreadable file contributes zero lines")
}

func TestFormatStats(t *testing.T) {
	stats := Stats{
		TotalFiles:  2,
		TotalLines:  7,
		LinesPerExt: map[string]int{".go": 5, noExtensionKey: 2},
		FilesPerExt: map[string]int{".go": 1, noExtensionKey: 1},
		AverageSize: 12.5,
		Largest:     LargestFile{Name: "main.go", Size: 20, Lines: 5},
	}

	got := formatStats(stats)
	expected := strings.Join([]string{
		"Code Statistics:",
		"1. Total number of files: 2",
		"2. Total lines of code: 7",
		"3. Lines of code per file type:",
		"   - (no extension): 2",
		"   - .go: 5",
		"4. Number of files per file type:",
		"   - (no extension): 1",
		"   - .go: 1",
		"5. Average file size: 12.50 bytes",
		"6. Largest file:",
		"   - Name: main.go",
		"   - Size: 20 bytes",
		"   - Lines: 5",
	}, "\n")
	assert.Equal(t, expected, got)
}
