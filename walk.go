// walk.go
package main

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// FileEntry describes a file that survived filtering, in discovery
// order. RelPath is slash-separated and relative to the walk root.
type FileEntry struct {
	RelPath string
	Name    string
	Ext     string
	Size    int64
}

// walkEntry is one filtered, sorted directory member pending emission.
type walkEntry struct {
	name  string
	isDir bool
	size  int64
}

// walkFrame is one level of the explicit traversal stack.
type walkFrame struct {
	absPath string
	relPath string
	prefix  string
	entries []walkEntry
	next    int
}

// walkTree traverses root depth-first in pre-order using an explicit
// stack, producing the ordered file list and the rendered tree lines in
// a single pass so every report section sees the same set. Directories
// are pruned via the filter before they are ever read. Unreadable
// subdirectories are recorded and skipped; only a failure to read the
// root itself is fatal. Symlink cycles are not guarded against.
func walkTree(root, rootLabel string, f *Filter) (files []FileEntry, treeLines []string, errs map[string]error, err error) {
	files = make([]FileEntry, 0)
	errs = make(map[string]error)

	rootEntries, readErr := readFilteredEntries(root, "", f, errs)
	if readErr != nil {
		return nil, nil, errs, readErr
	}

	treeLines = append(treeLines, rootLabel+"/")
	stack := []walkFrame{{absPath: root, relPath: "", prefix: "", entries: rootEntries}}

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		if frame.next >= len(frame.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := frame.entries[frame.next]
		frame.next++
		isLast := frame.next == len(frame.entries)
		connector := tern(isLast, "└── ", "├── ")

		relPath := path.Join(frame.relPath, entry.name)
		if !entry.isDir {
			treeLines = append(treeLines, frame.prefix+connector+entry.name)
			files = append(files, FileEntry{
				RelPath: relPath,
				Name:    entry.name,
				Ext:     lowerExt(entry.name),
				Size:    entry.size,
			})
			continue
		}

		treeLines = append(treeLines, frame.prefix+connector+entry.name+"/")
		childAbs := filepath.Join(frame.absPath, entry.name)
		childEntries, childErr := readFilteredEntries(childAbs, relPath, f, errs)
		if childErr != nil {
			slog.Warn("Cannot read directory, skipping subtree.", "path", relPath, "error", childErr)
			errs[relPath+"/"] = childErr
			continue
		}
		stack = append(stack, walkFrame{
			absPath: childAbs,
			relPath: relPath,
			prefix:  frame.prefix + tern(isLast, "    ", "│   "),
			entries: childEntries,
		})
	}

	return files, treeLines, errs, nil
}

// readFilteredEntries lists a directory, sorted by name ascending, with
// the filter already applied to both files and subdirectories. Entries
// whose metadata cannot be read are recorded and dropped.
func readFilteredEntries(absDir, relDir string, f *Filter, errs map[string]error) ([]walkEntry, error) {
	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, err
	}

	// os.ReadDir returns entries sorted by filename, which is exactly
	// the stable ordinal order the tree rendering needs.
	entries := make([]walkEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		relPath := path.Join(relDir, name)
		if de.IsDir() {
			if !f.includeDir(relPath, name) {
				continue
			}
			entries = append(entries, walkEntry{name: name, isDir: true})
			continue
		}
		info, infoErr := de.Info()
		if infoErr != nil {
			slog.Warn("Cannot stat file, skipping.", "path", relPath, "error", infoErr)
			errs[relPath] = infoErr
			continue
		}
		if !f.includeFile(relPath, name, info.Size()) {
			slog.Debug("Excluding file.", "path", relPath)
			continue
		}
		entries = append(entries, walkEntry{name: name, size: info.Size()})
	}
	return entries, nil
}
