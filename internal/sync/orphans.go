package sync

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/notesync/internal/logfields"
	"git.home.luguber.info/inful/notesync/internal/notes"
)

// cleanOrphans removes output entries with no corresponding source in a
// single bottom-up pass, so emptied parent directories are pruned in the same
// invocation. The output root itself is never removed.
func (s *Syncer) cleanOrphans() error {
	if _, err := os.Stat(s.outputDir); os.IsNotExist(err) {
		return nil
	}
	if _, err := s.cleanDir(""); err != nil {
		return fmt.Errorf("%w: %w", ErrOrphanCleanupFailed, err)
	}
	return nil
}

// cleanDir prunes one output directory and returns how many entries remain.
// The count is computed as if deletions had applied, so a dry run reports the
// same change set as a live run.
func (s *Syncer) cleanDir(rel string) (int, error) {
	outAbs := filepath.Join(s.outputDir, filepath.FromSlash(rel))
	entries, err := os.ReadDir(outAbs)
	if err != nil {
		return 0, err
	}

	remaining := 0
	for _, entry := range entries {
		childRel := path.Join(rel, entry.Name())
		childAbs := filepath.Join(outAbs, entry.Name())

		if entry.IsDir() {
			hasMarkdown, err := s.sourceHasMarkdown(childRel)
			if err != nil {
				return 0, err
			}
			if !hasMarkdown {
				// Source directory gone or empty of markdown: drop the whole
				// output directory, leftover files included.
				if err := s.removeAll(childAbs); err != nil {
					return 0, err
				}
				s.stats.OrphanDirs++
				slog.Info(s.would("Removed orphan directory"), logfields.Path(childAbs))
				continue
			}
			left, err := s.cleanDir(childRel)
			if err != nil {
				return 0, err
			}
			if left == 0 {
				if err := s.remove(childAbs); err != nil {
					return 0, err
				}
				s.stats.OrphanDirs++
				slog.Info(s.would("Removed emptied directory"), logfields.Path(childAbs))
				continue
			}
			remaining++
			continue
		}

		if _, gone := s.removed[childRel]; gone {
			// Already removed by rename detection; a dry run still sees the
			// file on disk, so skip it to keep the reported change set equal.
			continue
		}

		if s.isOrphanFile(childRel, entry.Name()) {
			if err := s.remove(childAbs); err != nil {
				return 0, err
			}
			s.stats.OrphanFiles++
			slog.Info(s.would("Removed orphan file"), logfields.Path(childAbs))
			continue
		}
		remaining++
	}
	return remaining, nil
}

// isOrphanFile reports whether an output file (excluding index pages) has no
// corresponding source and was not touched by this run.
func (s *Syncer) isOrphanFile(rel, name string) bool {
	if !notes.IsMarkdownFile(name) || strings.EqualFold(name, notes.IndexFile) {
		return false
	}
	if _, touched := s.updated[rel]; touched {
		return false
	}
	_, err := os.Stat(filepath.Join(s.sourceDir, filepath.FromSlash(rel)))
	return os.IsNotExist(err)
}

// sourceHasMarkdown reports whether the source directory at rel exists and
// contains markdown content anywhere beneath it, honoring the same exclusion
// rules as the walker (a newly excluded source directory orphans its output).
func (s *Syncer) sourceHasMarkdown(rel string) (bool, error) {
	for _, segment := range strings.Split(rel, "/") {
		if _, skip := s.excluded[segment]; skip {
			return false, nil
		}
	}
	abs := filepath.Join(s.sourceDir, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	found := false
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := s.excluded[d.Name()]; skip && p != abs {
				return filepath.SkipDir
			}
			return nil
		}
		if notes.IsMarkdownFile(d.Name()) && !strings.EqualFold(d.Name(), notes.IndexFile) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found, err
}
