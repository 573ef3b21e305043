// Package sync runs the notes-to-docs pipeline: front matter synthesis,
// rename detection, index generation, and orphan cleanup, driven by a
// content-hash cache.
package sync

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/notesync/internal/config"
	"git.home.luguber.info/inful/notesync/internal/frontmatter"
	"git.home.luguber.info/inful/notesync/internal/hashcache"
	"git.home.luguber.info/inful/notesync/internal/logfields"
	"git.home.luguber.info/inful/notesync/internal/notes"
	"git.home.luguber.info/inful/notesync/internal/resolve"
)

// Options selects run modes.
type Options struct {
	// DryRun disables every filesystem mutation while performing the same
	// traversal and producing the same change set.
	DryRun bool
	// Clean discards the hash cache and forces a full rebuild.
	Clean bool
}

// Syncer executes one run-to-completion pass over the source tree.
// It is strictly single-threaded; all state below is confined to one run.
type Syncer struct {
	cfg       *config.Config
	resolver  *resolve.Resolver
	sourceDir string // absolute source root
	outputDir string // absolute output root
	hashPath  string // absolute hash cache path
	excluded  map[string]struct{}
	dryRun    bool
	clean     bool
	runID     string

	cache     map[string]string   // previous run: source-relative path -> digest
	updated   map[string]string   // current run, rebuilt in full
	reverse   map[string]string   // previous run snapshot: digest -> path
	removed   map[string]struct{} // output keys removed this run; in a dry run the files are still on disk
	dirTitles map[string]string   // resolved directory titles by relative path
	dirOrders map[string]int
	stats     Stats
}

// New creates a syncer for the given configuration.
func New(cfg *config.Config, opts Options) (*Syncer, error) {
	sourceDir, err := cfg.SourcePath()
	if err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}

	excluded := map[string]struct{}{cfg.OutputDir: {}}
	for _, name := range cfg.ExcludeDirs {
		excluded[name] = struct{}{}
	}

	return &Syncer{
		cfg:       cfg,
		resolver:  resolve.New(cfg),
		sourceDir: sourceDir,
		outputDir: filepath.Join(sourceDir, cfg.OutputDir),
		hashPath:  filepath.Join(sourceDir, cfg.HashFile),
		excluded:  excluded,
		dryRun:    opts.DryRun,
		clean:     opts.Clean,
		runID:     uuid.NewString(),
		updated:   map[string]string{},
		removed:   map[string]struct{}{},
		dirTitles: map[string]string{},
		dirOrders: map[string]int{},
	}, nil
}

// Run executes the pipeline once and returns the accumulated statistics.
func (s *Syncer) Run() (Stats, error) {
	slog.Info("Starting notes sync",
		logfields.RunID(s.runID),
		logfields.Dir(s.sourceDir),
		slog.Bool("dry_run", s.dryRun))

	if err := s.loadCache(); err != nil {
		return s.stats, err
	}
	s.reverse = hashcache.Reverse(s.cache)

	exclude := make([]string, 0, len(s.excluded))
	for name := range s.excluded {
		exclude = append(exclude, name)
	}
	walker := notes.NewWalker(s.sourceDir, exclude, s.cfg.Ignore)
	dirs, err := walker.Walk()
	if err != nil {
		return s.stats, err
	}

	for i := range dirs {
		dir := &dirs[i]
		s.resolveDirectory(dir)
		if err := s.syncDirectory(dir); err != nil {
			return s.stats, err
		}
		if dir.Depth > 0 {
			if err := s.buildIndex(dir); err != nil {
				return s.stats, err
			}
		}
	}

	if err := s.cleanOrphans(); err != nil {
		return s.stats, err
	}

	if !s.dryRun {
		if err := hashcache.Save(s.hashPath, s.updated); err != nil {
			return s.stats, err
		}
	}

	slog.Info("Sync finished",
		logfields.RunID(s.runID),
		slog.Int("synced", s.stats.Synced),
		slog.Int("unchanged", s.stats.Unchanged),
		slog.Int("renamed", s.stats.Renamed),
		slog.Int("indexes", s.stats.Indexes),
		slog.Int("orphan_files", s.stats.OrphanFiles),
		slog.Int("orphan_dirs", s.stats.OrphanDirs))
	return s.stats, nil
}

// loadCache loads the previous run's hash cache, honoring --clean. A cleaned
// dry run starts from an empty cache without deleting the file, so the
// reported change set matches what a live clean run would do.
func (s *Syncer) loadCache() error {
	if s.clean {
		if !s.dryRun {
			if err := hashcache.Remove(s.hashPath); err != nil {
				return err
			}
		}
		slog.Info("Discarded hash cache, forcing full rebuild", logfields.Path(s.hashPath))
		s.cache = map[string]string{}
		return nil
	}
	cache, err := hashcache.Load(s.hashPath)
	if err != nil {
		return err
	}
	s.cache = cache
	return nil
}

// resolveDirectory records the directory's title and nav order. Parents are
// resolved before children because the walker emits them top-down.
func (s *Syncer) resolveDirectory(dir *notes.Directory) {
	if dir.RelPath == "" {
		return
	}
	parentTitle := s.dirTitles[parentOf(dir.RelPath)]
	title, order := s.resolver.Directory(path.Base(dir.RelPath), dir.Depth, parentTitle)
	s.dirTitles[dir.RelPath] = title
	s.dirOrders[dir.RelPath] = order
}

// syncDirectory renders and writes every eligible note file of one directory.
func (s *Syncer) syncDirectory(dir *notes.Directory) error {
	sectionTitle := s.dirTitles[dir.RelPath]
	hidden := resolve.Hidden(dir.Depth, dir.HasMarkdownDirs)

	for i, name := range dir.Files {
		srcPath := filepath.Join(s.sourceDir, filepath.FromSlash(dir.RelPath), name)
		body, err := notes.ReadClean(srcPath)
		if err != nil {
			return err
		}

		number, title, numbered := s.resolver.FileTitle(name)
		order := i + 1
		if numbered {
			order = number
		}

		doc := frontmatter.NewDoc().QuotedStr("title", title)
		if hidden {
			doc.Bool("nav_exclude", true)
		} else {
			if sectionTitle != "" {
				doc.Str("parent", sectionTitle)
			}
			doc.Int("nav_order", order)
		}
		head, err := doc.Render()
		if err != nil {
			return fmt.Errorf("render front matter for %s: %w", name, err)
		}

		content := make([]byte, 0, len(head)+1+len(body))
		content = append(content, head...)
		content = append(content, '\n')
		content = append(content, body...)

		key := path.Join(dir.RelPath, name)
		digest := hashcache.Sum(content)
		s.updated[key] = digest

		if s.cache[key] == digest {
			s.stats.Unchanged++
			continue
		}

		if err := s.removeRenamedOutput(key, digest); err != nil {
			return err
		}

		outPath := filepath.Join(s.outputDir, filepath.FromSlash(key))
		if err := s.writeFile(outPath, content); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, outPath, err)
		}
		s.stats.Synced++
		slog.Info(s.would("Synced note"), logfields.File(key), logfields.Hash(digest))
	}
	return nil
}

// removeRenamedOutput deletes the previous output file when the new digest
// was recorded under a different source path in the last run. Content
// identity, not path identity, is what makes this a rename; identical files
// are indistinguishable from renames and treated as such.
func (s *Syncer) removeRenamedOutput(key, digest string) error {
	oldKey, ok := s.reverse[digest]
	if !ok || oldKey == key {
		return nil
	}
	oldPath := filepath.Join(s.outputDir, filepath.FromSlash(oldKey))
	if _, err := os.Stat(oldPath); err != nil {
		return nil
	}
	if err := s.remove(oldPath); err != nil {
		return fmt.Errorf("remove renamed output %s: %w", oldPath, err)
	}
	s.removed[oldKey] = struct{}{}
	s.stats.Renamed++
	slog.Info(s.would("Rename detected, removed old output"),
		logfields.Path(oldPath), logfields.File(key))
	return nil
}

func (s *Syncer) dirTitle(rel string) string {
	if rel == "" {
		return ""
	}
	if title, ok := s.dirTitles[rel]; ok {
		return title
	}
	depth := strings.Count(rel, "/") + 1
	title, _ := s.resolver.Directory(path.Base(rel), depth, "")
	return title
}

func parentOf(rel string) string {
	parent := path.Dir(rel)
	if parent == "." {
		return ""
	}
	return parent
}

// would prefixes log messages in dry-run mode.
func (s *Syncer) would(msg string) string {
	if s.dryRun {
		return "Would have: " + msg
	}
	return msg
}

func (s *Syncer) writeFile(name string, content []byte) error {
	if s.dryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, content, 0o644)
}

func (s *Syncer) remove(name string) error {
	if s.dryRun {
		return nil
	}
	return os.Remove(name)
}

func (s *Syncer) removeAll(name string) error {
	if s.dryRun {
		return nil
	}
	return os.RemoveAll(name)
}
