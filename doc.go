// Package fontindex discovers the fonts installed on the host system,
// extracts descriptive metadata from each font file, and answers structured
// queries against the resulting collection.
//
// # Overview
//
// fontindex is a companion library for the gg 2D graphics library. Instead
// of hardcoding a font name, applications describe the face they need
// ("a bold monospace font", "anything in the DejaVu family") and select
// from the matching records. Each Record carries the name gg uses to refer
// to the face, along with the file path for loading it directly.
//
// # Quick Start
//
//	import "github.com/gogpu/fontindex"
//
//	// All monospace fonts with Latin coverage, sorted.
//	mono, err := fontindex.FilterAll(fontindex.Monospace(true))
//
//	// A specific face by name.
//	rec, err := fontindex.Find("DejaVu Sans Bold")
//
//	// Custom predicates are plain functions.
//	heavy, err := fontindex.FilterAll(func(r fontindex.Record) bool {
//	    return r.Weight >= 700 && !r.Italic
//	})
//
// # Scanning and Caching
//
// The first query triggers a full scan: font paths come from a Lister
// (SystemLister by default), each file is parsed by the configured backend,
// and files that fail to parse are silently skipped -- enumeration is
// deliberately best-effort, since system font directories routinely contain
// broken or exotic files. Results are memoized for the process lifetime;
// call ClearCache after installing fonts.
//
// The package-level functions use a shared default Catalog. Create your own
// Catalog to inject a custom discovery source or parser backend:
//
//	cat := fontindex.NewCatalog(fontindex.WithLister(myLister))
//
// # Parser Backends
//
// Font files are read through the FontParser interface. The default "sfnt"
// backend (seehuhn.de/go/sfnt) reads the name, OS/2, post and cmap tables.
// The "ximage" backend (golang.org/x/image) is a fallback without OS/2
// access. Register alternatives with RegisterParser.
//
// # Logging
//
// fontindex is silent by default. Pass a *slog.Logger to SetLogger to see
// scan summaries and per-file skip diagnostics.
package fontindex

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
