package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/notesync/internal/config"
	"git.home.luguber.info/inful/notesync/internal/notes"
	"git.home.luguber.info/inful/notesync/internal/resolve"
)

// DiscoverCmd implements the 'discover' command. It walks the source tree
// without writing anything and reports, per directory, what the sync pass
// would decide: direct file counts, markdown-bearing subdirectories, and the
// resulting navigation visibility.
type DiscoverCmd struct{}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return RunDiscover(cfg)
}

func RunDiscover(cfg *config.Config) error {
	sourceDir, err := cfg.SourcePath()
	if err != nil {
		return err
	}

	exclude := append([]string{cfg.OutputDir}, cfg.ExcludeDirs...)
	walker := notes.NewWalker(sourceDir, exclude, cfg.Ignore)
	dirs, err := walker.Walk()
	if err != nil {
		return err
	}

	fmt.Printf("Source tree analysis for %s\n", sourceDir)
	for _, dir := range dirs {
		if dir.RelPath == "" {
			fmt.Printf("root: %d markdown file(s)\n", len(dir.Files))
			continue
		}
		visibility := "files in nav"
		if resolve.Hidden(dir.Depth, dir.HasMarkdownDirs) {
			visibility = "files excluded from nav"
		}
		toc := ""
		if resolve.ManualTOC(dir.Depth, cfg.ManualTOCMinDepth(), dir.HasMarkdownDirs) {
			toc = ", manual TOC"
		}
		indent := strings.Repeat("  ", dir.Depth-1)
		fmt.Printf("%s%s/: %d markdown file(s), markdown subdirs: %v (%s%s)\n",
			indent, dir.RelPath, len(dir.Files), dir.HasMarkdownDirs, visibility, toc)
	}
	return nil
}
