package commands

import (
	"fmt"

	"git.home.luguber.info/inful/notesync/internal/config"
	"git.home.luguber.info/inful/notesync/internal/sync"
)

// SyncCmd implements the 'sync' command.
type SyncCmd struct {
	DryRun bool `name:"dry-run" help:"Preview changes without writing files"`
	Clean  bool `help:"Discard the hash cache and force a full rebuild"`
}

func (c *SyncCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return RunSync(cfg, sync.Options{DryRun: c.DryRun, Clean: c.Clean})
}

func RunSync(cfg *config.Config, opts sync.Options) error {
	syncer, err := sync.New(cfg, opts)
	if err != nil {
		return err
	}

	stats, err := syncer.Run()
	if err != nil {
		return err
	}

	// Friendly user-facing summary on stdout.
	switch {
	case opts.DryRun:
		fmt.Println("Dry run complete. No files were written.")
	case stats.Changed():
		fmt.Println("Sync complete.")
	default:
		fmt.Println("All up to date.")
	}
	return nil
}
