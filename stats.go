// stats.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// noExtensionKey buckets files without an extension in the per-type
// breakdowns.
const noExtensionKey = "(no extension)"

// LargestFile describes the single biggest file by byte size.
type LargestFile struct {
	Name  string
	Size  int64
	Lines int
}

// Stats holds the aggregate numbers for the filtered file set.
type Stats struct {
	TotalFiles  int
	TotalLines  int
	LinesPerExt map[string]int
	FilesPerExt map[string]int
	AverageSize float64
	Largest     LargestFile
}

// collectStats computes statistics over the filtered file list in one
// pass. Files that cannot be read contribute zero lines; the error is
// recorded and processing continues. Ties for the largest file keep the
// first entry encountered, via strict greater-than comparison.
func collectStats(root string, files []FileEntry) (Stats, map[string]error) {
	stats := Stats{
		TotalFiles:  len(files),
		LinesPerExt: make(map[string]int),
		FilesPerExt: make(map[string]int),
	}
	errs := make(map[string]error)

	var totalSize int64
	for _, file := range files {
		key := file.Ext
		if key == "" {
			key = noExtensionKey
		}
		stats.FilesPerExt[key]++
		totalSize += file.Size

		lines, err := countLines(filepath.Join(root, filepath.FromSlash(file.RelPath)))
		if err != nil {
			slog.Warn("Cannot count lines, file contributes zero.", "path", file.RelPath, "error", err)
			errs[file.RelPath] = err
			continue
		}
		stats.TotalLines += lines
		stats.LinesPerExt[key] += lines

		if file.Size > stats.Largest.Size {
			stats.Largest = LargestFile{Name: file.Name, Size: file.Size, Lines: lines}
		}
	}

	if stats.TotalFiles > 0 {
		stats.AverageSize = float64(totalSize) / float64(stats.TotalFiles)
	}
	return stats, errs
}

// countLines counts newline-delimited records; a final line without a
// trailing newline still counts.
func countLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	lines := 0
	for {
		chunk, err := reader.ReadString('\n')
		if err == io.EOF {
			if len(chunk) > 0 {
				lines++
			}
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines++
	}
}

// formatStats renders the numbered statistics block of the report.
// Per-extension lines are sorted by key for deterministic output.
func formatStats(stats Stats) string {
	var b strings.Builder
	b.WriteString("Code Statistics:\n")
	fmt.Fprintf(&b, "1. Total number of files: %d\n", stats.TotalFiles)
	fmt.Fprintf(&b, "2. Total lines of code: %d\n", stats.TotalLines)

	b.WriteString("3. Lines of code per file type:\n")
	for _, ext := range sortedKeys(stats.LinesPerExt) {
		fmt.Fprintf(&b, "   - %s: %d\n", ext, stats.LinesPerExt[ext])
	}

	b.WriteString("4. Number of files per file type:\n")
	for _, ext := range sortedKeys(stats.FilesPerExt) {
		fmt.Fprintf(&b, "   - %s: %d\n", ext, stats.FilesPerExt[ext])
	}

	fmt.Fprintf(&b, "5. Average file size: %.2f bytes\n", stats.AverageSize)
	b.WriteString("6. Largest file:\n")
	fmt.Fprintf(&b, "   - Name: %s\n", stats.Largest.Name)
	fmt.Fprintf(&b, "   - Size: %d bytes\n", stats.Largest.Size)
	fmt.Fprintf(&b, "   - Lines: %d", stats.Largest.Lines)
	return b.String()
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
