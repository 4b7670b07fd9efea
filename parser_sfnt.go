package fontindex

import (
	"bytes"
	"fmt"
	"strings"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/os2"
)

// sfntParser implements FontParser using seehuhn.de/go/sfnt.
// It reads the name, OS/2, post and cmap tables, which makes it the only
// backend that can fill every ParsedFont field; it is the default.
type sfntParser struct{}

// Parse implements FontParser.Parse.
func (p *sfntParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontindex: failed to parse font: %w", err)
	}
	return &sfntParsedFont{font: f}, nil
}

// sfntParsedFont implements ParsedFont using sfnt.Font.
type sfntParsedFont struct {
	font *sfnt.Font

	// best cmap subtable, resolved lazily on the first HasGlyph call.
	cmapOnce bool
	cmap     cmap.Subtable
}

// FamilyName implements ParsedFont.FamilyName.
func (f *sfntParsedFont) FamilyName() string {
	return f.font.FamilyName
}

// SubfamilyName implements ParsedFont.SubfamilyName.
// The style name is derived from the width, weight and style flags, the same
// way sfnt itself builds full names ("Condensed Bold Italic" etc.).
func (f *sfntParsedFont) SubfamilyName() string {
	info := f.font
	var words []string
	if info.Width != 0 && info.Width != os2.WidthNormal {
		words = append(words, info.Width.String())
	}
	if info.Weight != 0 && info.Weight != os2.WeightNormal {
		words = append(words, info.Weight.SimpleString())
	} else if info.IsBold {
		words = append(words, "Bold")
	}
	if info.IsOblique {
		words = append(words, "Oblique")
	} else if info.IsItalic {
		words = append(words, "Italic")
	}
	if len(words) == 0 {
		return "Regular"
	}
	return strings.Join(words, " ")
}

// FullName implements ParsedFont.FullName.
func (f *sfntParsedFont) FullName() string {
	if f.font.FamilyName == "" {
		return ""
	}
	return f.font.FullName()
}

// PostScriptName implements ParsedFont.PostScriptName.
func (f *sfntParsedFont) PostScriptName() string {
	return f.font.PostScriptName()
}

// Weight implements ParsedFont.Weight.
func (f *sfntParsedFont) Weight() int {
	return int(f.font.Weight)
}

// WidthClass implements ParsedFont.WidthClass.
func (f *sfntParsedFont) WidthClass() int {
	return int(f.font.Width)
}

// Bold implements ParsedFont.Bold.
func (f *sfntParsedFont) Bold() bool {
	return f.font.IsBold
}

// Italic implements ParsedFont.Italic.
func (f *sfntParsedFont) Italic() bool {
	return f.font.IsItalic
}

// Oblique implements ParsedFont.Oblique.
func (f *sfntParsedFont) Oblique() bool {
	return f.font.IsOblique
}

// FixedPitch implements ParsedFont.FixedPitch.
func (f *sfntParsedFont) FixedPitch() bool {
	return f.font.IsFixedPitch()
}

// HasGlyph implements ParsedFont.HasGlyph.
// A font without a usable cmap subtable covers nothing.
func (f *sfntParsedFont) HasGlyph(r rune) bool {
	if !f.cmapOnce {
		f.cmapOnce = true
		subtable, err := f.font.CMapTable.GetBest()
		if err == nil {
			f.cmap = subtable
		}
	}
	if f.cmap == nil {
		return false
	}
	return f.cmap.Lookup(r) != 0
}
