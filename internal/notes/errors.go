package notes

import "errors"

var (
	// ErrWalkFailed indicates filesystem traversal of the notes tree failed.
	ErrWalkFailed = errors.New("notes tree walk failed")

	// ErrFileReadFailed indicates reading content from a note file failed.
	ErrFileReadFailed = errors.New("note file read failed")
)
