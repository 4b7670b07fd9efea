package fontindex

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font table parsing library
// (e.g., seehuhn.de/go/sfnt vs golang.org/x/image/font/sfnt).
//
// The default implementation uses seehuhn.de/go/sfnt.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont exposes the descriptive fields of a parsed font file.
// This interface abstracts the underlying font representation; Extract reads
// each field exactly once and applies the documented defaults for values a
// backend cannot provide.
type ParsedFont interface {
	// FamilyName returns the font family name, or "" if not available.
	FamilyName() string

	// SubfamilyName returns the style name, e.g. "Bold Italic".
	// Returns "" if not available.
	SubfamilyName() string

	// FullName returns the full font name, e.g. "Arial Bold Italic".
	// Returns "" if not available.
	FullName() string

	// PostScriptName returns the PostScript name, e.g. "Arial-BoldItalic".
	// Returns "" if not available.
	PostScriptName() string

	// Weight returns the OS/2 usWeightClass (100-900), or 0 if the backend
	// has no access to the OS/2 table.
	Weight() int

	// WidthClass returns the OS/2 usWidthClass (1-9), or 0 if the backend
	// has no access to the OS/2 table.
	WidthClass() int

	// Bold reports the OS/2 fsSelection bold flag (head macStyle fallback).
	Bold() bool

	// Italic reports the italic flag. Italic and Oblique are independent
	// bits: a face may set either without the other.
	Italic() bool

	// Oblique reports the OS/2 fsSelection oblique flag.
	Oblique() bool

	// FixedPitch reports the post table fixed-pitch indicator.
	FixedPitch() bool

	// HasGlyph reports whether the character map covers r.
	HasGlyph(r rune) bool
}

// parserRegistry holds registered font parsers.
// The default parser is "sfnt" (seehuhn.de/go/sfnt).
var parserRegistry = map[string]FontParser{
	"sfnt":   &sfntParser{},
	"ximage": &ximageParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "sfnt"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
