package sync

// Stats accumulates per-run counters. A dry run produces the same counts a
// live run would, without touching the filesystem.
type Stats struct {
	Synced      int // note files written (new or changed)
	Unchanged   int // note files whose rendered content matched the cache
	Renamed     int // old output files removed by rename detection
	Indexes     int // index pages written
	OrphanFiles int // stale output files removed
	OrphanDirs  int // stale output directories removed
}

// Changed reports whether the run produced (or would produce) any mutation.
func (s Stats) Changed() bool {
	return s.Synced+s.Renamed+s.Indexes+s.OrphanFiles+s.OrphanDirs > 0
}
