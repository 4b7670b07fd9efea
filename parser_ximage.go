package fontindex

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
// x/image exposes the name, post and cmap tables but not OS/2, so this
// backend reports zero weight and width (Extract substitutes the standard
// defaults) and leaves the style flags unset. It exists as a pure fallback
// for fonts the default backend rejects, and as the only backend that can
// open TrueType collections (the first face is used).
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	// ParseCollection accepts both plain fonts and TTC collections,
	// treating a plain font as a one-element collection.
	c, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("fontindex: failed to parse font: %w", err)
	}
	f, err := c.Font(0)
	if err != nil {
		return nil, fmt.Errorf("fontindex: failed to read collection: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using x/image's sfnt.Font.
type ximageParsedFont struct {
	font *sfnt.Font
}

func (f *ximageParsedFont) name(id sfnt.NameID) string {
	s, err := f.font.Name(nil, id)
	if err != nil {
		return ""
	}
	return s
}

// FamilyName implements ParsedFont.FamilyName.
func (f *ximageParsedFont) FamilyName() string {
	return f.name(sfnt.NameIDFamily)
}

// SubfamilyName implements ParsedFont.SubfamilyName.
func (f *ximageParsedFont) SubfamilyName() string {
	return f.name(sfnt.NameIDSubfamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	return f.name(sfnt.NameIDFull)
}

// PostScriptName implements ParsedFont.PostScriptName.
func (f *ximageParsedFont) PostScriptName() string {
	return f.name(sfnt.NameIDPostScript)
}

// Weight implements ParsedFont.Weight. x/image has no OS/2 access.
func (f *ximageParsedFont) Weight() int { return 0 }

// WidthClass implements ParsedFont.WidthClass. x/image has no OS/2 access.
func (f *ximageParsedFont) WidthClass() int { return 0 }

// Bold implements ParsedFont.Bold. x/image has no OS/2 access.
func (f *ximageParsedFont) Bold() bool { return false }

// Italic implements ParsedFont.Italic.
// Derived from the post table italic angle, the only slant signal x/image
// exposes.
func (f *ximageParsedFont) Italic() bool {
	post := f.font.PostTable()
	if post == nil {
		return false
	}
	return post.ItalicAngle != 0
}

// Oblique implements ParsedFont.Oblique. x/image has no OS/2 access.
func (f *ximageParsedFont) Oblique() bool { return false }

// FixedPitch implements ParsedFont.FixedPitch.
func (f *ximageParsedFont) FixedPitch() bool {
	post := f.font.PostTable()
	if post == nil {
		return false
	}
	return post.IsFixedPitch
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *ximageParsedFont) HasGlyph(r rune) bool {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return false
	}
	return idx != 0
}
