package fontindex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/sfnt/os2"
)

// Extract reads one font file and returns its metadata record.
//
// Name table entries that are absent come back as empty strings, except that
// the full name falls back to the family name. When the backend has no OS/2
// table access the standard defaults apply: weight 400, width class 5, all
// style flags false.
//
// Failures are typed: errors.Is(err, ErrUnreadable) for I/O problems and
// errors.Is(err, ErrMalformed) for table data the parser rejects. A panic in
// a parser backend is converted to ErrMalformed rather than propagated.
func Extract(path string, opts ...Option) (Record, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// #nosec G304 -- Font file path comes from discovery or the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, &ParseError{Path: path, Kind: ErrUnreadable, Err: err}
	}

	parsed, err := safeParse(getParser(cfg.parserName), data)
	if err != nil {
		return Record{}, &ParseError{Path: path, Kind: ErrMalformed, Err: err}
	}

	return buildRecord(path, parsed), nil
}

// safeParse invokes the backend and converts a backend panic into an error,
// so that a single broken font file can never take down a whole scan.
func safeParse(p FontParser, data []byte) (parsed ParsedFont, err error) {
	defer func() {
		if r := recover(); r != nil {
			parsed = nil
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return p.Parse(data)
}

// buildRecord assembles the immutable Record from a parsed font.
func buildRecord(path string, parsed ParsedFont) Record {
	family := parsed.FamilyName()
	subfamily := parsed.SubfamilyName()

	fullName := parsed.FullName()
	if fullName == "" {
		fullName = family
	}

	weight := parsed.Weight()
	if weight <= 0 {
		weight = int(os2.WeightNormal)
	}
	width := parsed.WidthClass()
	if width <= 0 {
		width = int(os2.WidthNormal)
	}

	return Record{
		Family:         family,
		Subfamily:      subfamily,
		FullName:       fullName,
		PostScriptName: parsed.PostScriptName(),
		Path:           path,
		Format:         strings.ToLower(filepath.Ext(path)),
		Bold:           parsed.Bold(),
		Italic:         parsed.Italic(),
		Oblique:        parsed.Oblique(),
		Monospace:      parsed.FixedPitch(),
		Weight:         weight,
		WeightName:     WeightClassName(weight),
		WidthClass:     width,
		SupportsLatin:  supportsLatin(parsed),
		SourceName:     sourceName(family, subfamily),
	}
}

// supportsLatin reports whether the character map covers the basic Latin
// letters A-Z and a-z.
func supportsLatin(parsed ParsedFont) bool {
	for r := 'A'; r <= 'Z'; r++ {
		if !parsed.HasGlyph(r) {
			return false
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		if !parsed.HasGlyph(r) {
			return false
		}
	}
	return true
}

// sourceName returns the name gg's text package reports for a FontSource
// loaded from this file: the family, with the style suffix appended for
// non-Regular faces.
func sourceName(family, subfamily string) string {
	if family == "" {
		return ""
	}
	if subfamily == "" || foldEqual(subfamily, "Regular") {
		return family
	}
	return family + " " + subfamily
}
