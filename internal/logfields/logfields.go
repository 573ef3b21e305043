package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID   = "run_id"
	KeyPath    = "path"
	KeyFile    = "file"
	KeyDir     = "dir"
	KeySection = "section"
	KeyDepth   = "depth"
	KeyCount   = "count"
	KeyHash    = "hash"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr  { return slog.String(KeyRunID, id) }
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func File(f string) slog.Attr    { return slog.String(KeyFile, f) }
func Dir(d string) slog.Attr     { return slog.String(KeyDir, d) }
func Section(s string) slog.Attr { return slog.String(KeySection, s) }
func Depth(d int) slog.Attr      { return slog.Int(KeyDepth, d) }
func Count(n int) slog.Attr      { return slog.Int(KeyCount, n) }
func Hash(h string) slog.Attr    { return slog.String(KeyHash, h) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
