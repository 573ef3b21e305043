// Package hashcache persists the mapping from source-relative note paths to
// SHA-256 digests of their rendered output. The cache is rebuilt in full on
// every run; its reverse mapping drives rename detection.
package hashcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/notesync/internal/logfields"
)

// Sum returns the hex-encoded SHA-256 digest of content.
func Sum(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}

// Load reads the cache file at path.
//
// A missing file yields an empty cache. A malformed file also yields an empty
// cache (forcing a full resync) rather than failing the run; only genuine
// filesystem errors are returned.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read hash cache: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Hash cache is malformed, forcing full resync", logfields.Path(path), logfields.Error(err))
		return map[string]string{}, nil
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

// Save writes entries to path as a pretty-printed flat JSON object.
func Save(path string, entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal hash cache: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write hash cache: %w", err)
	}
	return nil
}

// Remove deletes the cache file. A missing file is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove hash cache: %w", err)
	}
	return nil
}

// Reverse derives the digest-to-path mapping used for rename detection.
//
// It is a snapshot of the previous run's cache and is never updated mid-run,
// so two files renamed into each other within a single run are not both
// resolved. When two paths carried the same digest, one wins arbitrarily.
func Reverse(entries map[string]string) map[string]string {
	reverse := make(map[string]string, len(entries))
	for path, digest := range entries {
		reverse[digest] = path
	}
	return reverse
}
