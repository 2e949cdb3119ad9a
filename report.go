// report.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const sectionRuleWidth = 80

// renderReport concatenates the fixed-order report: optional preamble,
// statistics block, folder tree, 1-based file index, then one delimited
// content section per file. The file list drives the index and content
// sections directly, so they cannot diverge from the tree or the
// statistics. Read failures render an inline placeholder and are
// recorded; siblings are unaffected.
func renderReport(root string, cfg Config, files []FileEntry, treeLines []string, stats Stats) (string, map[string]error) {
	errs := make(map[string]error)
	truncateExts := extensionSet(cfg.TruncateExtensions)

	var b strings.Builder
	if cfg.HeaderText != nil && *cfg.HeaderText != "" {
		b.WriteString(*cfg.HeaderText)
		b.WriteString("\n\n")
	}

	b.WriteString(formatStats(stats))
	b.WriteString("\n\nFolder Structure:\n")
	b.WriteString(strings.Join(treeLines, "\n"))
	b.WriteString("\n\nFile Index:\n")
	for i, file := range files {
		fmt.Fprintf(&b, "%d. %s\n", i+1, file.RelPath)
	}
	b.WriteString("\n")

	separator := strings.Repeat("=", sectionRuleWidth) + "\n"
	for i, file := range files {
		number := i + 1
		fmt.Fprintf(&b, "\n%sFILE_%04d: %s\n%s\n", separator, number, file.RelPath, separator)

		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(file.RelPath)))
		if err != nil {
			slog.Warn("Cannot read file for report, emitting placeholder.", "path", file.RelPath, "error", err)
			errs[file.RelPath] = err
			fmt.Fprintf(&b, "[error reading file: %v]\n", err)
		} else {
			_, capped := truncateExts[file.Ext]
			body := string(content)
			if capped {
				body = truncateContent(body, cfg.TruncateLines)
			}
			b.WriteString(body)
			if body != "" && !strings.HasSuffix(body, "\n") {
				b.WriteString("\n")
			}
		}

		fmt.Fprintf(&b, "%sEND OF FILE_%04d: %s\n%s\n", separator, number, file.RelPath, separator)
	}

	return b.String(), errs
}

// truncateContent caps content at maxLines lines, appending a marker
// that names the omitted count and the true total. Content at or under
// the threshold passes through unchanged.
func truncateContent(content string, maxLines int) string {
	if maxLines <= 0 {
		return content
	}
	total := strings.Count(content, "\n")
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		total++
	}
	if total <= maxLines {
		return content
	}

	end := 0
	for i := 0; i < maxLines; i++ {
		next := strings.IndexByte(content[end:], '\n')
		end += next + 1
	}
	omitted := total - maxLines
	return content[:end] + fmt.Sprintf("... [%d more lines truncated, %d lines total]\n", omitted, total)
}

// generateReport runs the whole pipeline against a validated root
// directory: one filtered walk, statistics over that same file list,
// then rendering. Returned errors are the recoverable per-path kind;
// only an unreadable root fails outright.
func generateReport(root, rootLabel, outputName, toolName string, cfg Config) (string, []FileEntry, map[string]error, error) {
	matcher := matcherForRoot(root, cfg.IgnoreFilename)
	filter := newFilter(cfg, outputName, toolName, matcher)

	files, treeLines, errs, err := walkTree(root, rootLabel, filter)
	if err != nil {
		return "", nil, errs, fmt.Errorf("walking %s: %w", root, err)
	}

	stats, statErrs := collectStats(root, files)
	for path, statErr := range statErrs {
		errs[path] = statErr
	}

	report, renderErrs := renderReport(root, cfg, files, treeLines, stats)
	for path, renderErr := range renderErrs {
		errs[path] = renderErr
	}
	return report, files, errs, nil
}
