package fontindex

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fontindex package.
var (
	// ErrUnreadable is returned when a font file cannot be read from disk.
	ErrUnreadable = errors.New("fontindex: unreadable font file")

	// ErrMalformed is returned when a font file contains table data the
	// parser backend cannot interpret.
	ErrMalformed = errors.New("fontindex: malformed font data")

	// ErrNotFound is returned by Find when no record matches the name.
	ErrNotFound = errors.New("fontindex: font not found")
)

// ParseError reports a per-file extraction failure. It wraps either
// [ErrUnreadable] or [ErrMalformed], so errors.Is works against both the
// sentinel and the underlying cause.
type ParseError struct {
	Path string // the file that failed
	Kind error  // ErrUnreadable or ErrMalformed
	Err  error  // the underlying parser or I/O error, may be nil
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
