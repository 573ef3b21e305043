package sync

import "errors"

var (
	// ErrOutputWriteFailed indicates writing a synced note or index page failed.
	ErrOutputWriteFailed = errors.New("output write failed")

	// ErrOrphanCleanupFailed indicates pruning stale output entries failed.
	ErrOrphanCleanupFailed = errors.New("orphan cleanup failed")
)
