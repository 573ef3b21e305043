// Package notes discovers Markdown content in the source tree.
package notes

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"git.home.luguber.info/inful/notesync/internal/logfields"
)

// IndexFile is the per-directory index page name (matched case-insensitively).
const IndexFile = "index.md"

// Directory describes one visited source directory.
type Directory struct {
	// RelPath is the slash-separated path relative to the source root,
	// empty for the root itself.
	RelPath string
	// Depth is the number of path segments (root is 0).
	Depth int
	// Files are the sorted direct Markdown filenames, excluding the index page.
	Files []string
	// HasMarkdownDirs reports whether any descendant directory, at any depth,
	// contains Markdown content.
	HasMarkdownDirs bool
}

// Walker enumerates directories under the source root that carry Markdown
// content directly or transitively. Directories whose name is excluded, or
// whose relative path matches an ignore pattern, are skipped entirely.
type Walker struct {
	root     string
	excluded map[string]struct{}
	ignore   []string
}

// NewWalker creates a walker rooted at root. exclude lists directory names
// skipped at any level; ignore holds doublestar patterns matched against
// slash-separated relative paths.
func NewWalker(root string, exclude []string, ignore []string) *Walker {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}
	return &Walker{root: root, excluded: excluded, ignore: ignore}
}

// Walk visits the tree top-down in lexical order and returns one entry per
// directory containing Markdown directly or transitively. Parents precede
// children in the result.
func (w *Walker) Walk() ([]Directory, error) {
	var dirs []Directory
	if _, err := w.walk("", 0, &dirs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalkFailed, err)
	}
	return dirs, nil
}

// walk recurses into rel and reports whether the subtree contains Markdown.
func (w *Walker) walk(rel string, depth int, out *[]Directory) (bool, error) {
	abs := filepath.Join(w.root, filepath.FromSlash(rel))
	entries, err := os.ReadDir(abs)
	if err != nil {
		return false, err
	}

	var files []string
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		childRel := path.Join(rel, name)
		if entry.IsDir() {
			if _, skip := w.excluded[name]; skip {
				continue
			}
			if w.ignored(childRel) {
				slog.Debug("Ignoring directory", logfields.Dir(childRel))
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		if !IsMarkdownFile(name) || strings.EqualFold(name, IndexFile) {
			continue
		}
		if w.ignored(childRel) {
			slog.Debug("Ignoring file", logfields.File(childRel))
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	// Children are walked before the parent entry is known to be needed, but
	// emitted after it, keeping the result top-down.
	var children []Directory
	childHasMarkdown := false
	for _, name := range subdirs {
		has, err := w.walk(path.Join(rel, name), depth+1, &children)
		if err != nil {
			return false, err
		}
		childHasMarkdown = childHasMarkdown || has
	}

	hasMarkdown := len(files) > 0 || childHasMarkdown
	if hasMarkdown {
		*out = append(*out, Directory{
			RelPath:         rel,
			Depth:           depth,
			Files:           files,
			HasMarkdownDirs: childHasMarkdown,
		})
		*out = append(*out, children...)
	}
	return hasMarkdown, nil
}

func (w *Walker) ignored(rel string) bool {
	for _, pattern := range w.ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// IsMarkdownFile checks if a file is a Markdown file.
func IsMarkdownFile(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".md")
}

// ReadClean reads a file, dropping a leading UTF-8 byte-order mark if present.
func ReadClean(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileReadFailed, path, err)
	}
	return bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF}), nil
}
