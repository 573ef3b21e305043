package sync

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	adrg "github.com/adrg/frontmatter"

	"git.home.luguber.info/inful/notesync/internal/frontmatter"
	"git.home.luguber.info/inful/notesync/internal/logfields"
	"git.home.luguber.info/inful/notesync/internal/markdown"
	"git.home.luguber.info/inful/notesync/internal/notes"
	"git.home.luguber.info/inful/notesync/internal/resolve"
)

// TOCMarker separates hand-written prose (above) from generated content
// (below) in index pages. Everything from the marker on is regenerated.
const TOCMarker = "<!-- TOC:DO-NOT-EDIT -->"

// buildIndex creates or updates the index page of one directory. Front matter
// is regenerated fresh every run; prose between the front matter and the TOC
// marker is preserved across regenerations. The file is rewritten only when
// the composed content differs byte-for-byte from what is on disk.
func (s *Syncer) buildIndex(dir *notes.Directory) error {
	title := s.dirTitles[dir.RelPath]
	order := s.dirOrders[dir.RelPath]
	manualTOC := resolve.ManualTOC(dir.Depth, s.cfg.ManualTOCMinDepth(), dir.HasMarkdownDirs)

	doc := frontmatter.NewDoc().Str("title", title)
	if dir.Depth >= 2 {
		if parent := s.dirTitle(parentOf(dir.RelPath)); parent != "" {
			doc.Str("parent", parent)
		}
	}
	doc.Int("nav_order", order)
	doc.Bool("has_children", dir.HasMarkdownDirs)
	if manualTOC {
		// Suppress the renderer's built-in listing; a manual one follows.
		doc.Bool("toc", false)
	}
	head, err := doc.Render()
	if err != nil {
		return fmt.Errorf("render index front matter for %s: %w", dir.RelPath, err)
	}

	indexPath := filepath.Join(s.outputDir, filepath.FromSlash(dir.RelPath), "index.md")
	existing, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read existing index %s: %w", indexPath, err)
	}

	prose := defaultProse(title)
	if existing != nil {
		// An index reduced to whitespace above the marker reseeds the default
		// prose rather than losing its heading for good.
		if preserved := preservedProse(existing); preserved != "" {
			prose = preserved
		}
	}

	var buf bytes.Buffer
	buf.Write(head)
	buf.WriteByte('\n')
	buf.WriteString(prose)
	if manualTOC {
		buf.WriteString("\n\n" + TOCMarker + "\n\n## TABLE OF CONTENTS\n\n---\n\n")
		buf.WriteString(strings.Join(s.tocEntries(dir), "\n"))
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	content := buf.Bytes()

	if existing != nil && bytes.Equal(existing, content) {
		slog.Debug("Index is up to date", logfields.Path(indexPath))
		return nil
	}

	if err := s.writeFile(indexPath, content); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, indexPath, err)
	}
	s.stats.Indexes++
	slog.Info(s.would("Updated index"), logfields.Path(indexPath), logfields.Depth(dir.Depth))
	return nil
}

// defaultProse is the body seeded into a brand-new index page.
func defaultProse(title string) string {
	return fmt.Sprintf("# %s\n\nNotes for the **%s** section.", title, title)
}

// preservedProse extracts the user-authored portion of an existing index:
// the body with front matter stripped, truncated at the TOC marker. A
// malformed front matter block is recovered locally by keeping the whole
// content as prose and rebuilding front matter fresh.
func preservedProse(existing []byte) string {
	var fields map[string]any
	rest, err := adrg.Parse(bytes.NewReader(existing), &fields)
	if err != nil {
		rest = existing
	}
	text := string(rest)
	if idx := strings.Index(text, TOCMarker); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimLeft(text, "\r\n")
	return strings.TrimRight(text, " \t\r\n")
}

// tocEntries renders the directory's files as Markdown links, de-duplicated
// by exact text and natural-sorted by link title.
func (s *Syncer) tocEntries(dir *notes.Directory) []string {
	entries := make([]string, 0, len(dir.Files))
	seen := make(map[string]struct{}, len(dir.Files))
	for _, name := range dir.Files {
		_, title, _ := s.resolver.FileTitle(name)
		entry := fmt.Sprintf("- [%s](%s)", title, name)
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
	}
	resolve.SortNatural(entries, func(entry string) string {
		if title, ok := markdown.LinkTitle(entry); ok {
			return title
		}
		return entry
	})
	return entries
}
