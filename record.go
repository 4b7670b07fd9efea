package fontindex

import (
	"cmp"
	"fmt"
	"path/filepath"
	"strings"
)

// Record holds the metadata of a single font face.
// All fields are set when the Record is created and never mutated afterwards,
// so Records can be shared freely between goroutines.
//
// Records sort by (Family, Weight, Italic, Bold) so that sorting a slice
// groups the variants of a family together, lightest first. The file path is
// the final tiebreak, making the order a deterministic total order.
type Record struct {
	// Identity (from the name table; empty when the entry is absent).
	Family         string
	Subfamily      string // e.g. "Bold Italic"
	FullName       string // e.g. "Arial Bold Italic"
	PostScriptName string // e.g. "Arial-BoldItalic"

	// File location.
	Path   string // absolute path of the font file
	Format string // lower-case extension: ".ttf", ".otf", ".ttc", ".otc"

	// Style flags. Italic and Oblique are independent signals: a font may
	// set either bit without the other.
	Bold      bool
	Italic    bool
	Oblique   bool
	Monospace bool

	// Numeric metrics from the OS/2 table.
	Weight     int    // usWeightClass, 100-900
	WeightName string // nearest standard stop, e.g. "Bold"
	WidthClass int    // usWidthClass, 1-9

	// Character set support.
	SupportsLatin bool // cmap covers the basic Latin letters A-Z and a-z

	// SourceName is the name under which gg's text package reports a
	// FontSource loaded from this file. Use it to re-select the face in gg.
	SourceName string
}

// recordFields lists the Record field names in declaration order.
// ToMap keys and the CLI output follow this order.
var recordFields = []string{
	"family", "subfamily", "full_name", "postscript_name",
	"path", "format",
	"bold", "italic", "oblique", "monospace",
	"weight", "weight_name", "width_class",
	"supports_latin", "source_name",
}

// RecordFields returns the canonical field order for [Record.ToMap] keys.
func RecordFields() []string {
	out := make([]string, len(recordFields))
	copy(out, recordFields)
	return out
}

// ToMap converts the record to a plain map of primitive values.
// The path is rendered as a string. Iterate [RecordFields] for a stable
// field order, since Go maps are unordered.
func (r Record) ToMap() map[string]any {
	return map[string]any{
		"family":          r.Family,
		"subfamily":       r.Subfamily,
		"full_name":       r.FullName,
		"postscript_name": r.PostScriptName,
		"path":            r.Path,
		"format":          r.Format,
		"bold":            r.Bold,
		"italic":          r.Italic,
		"oblique":         r.Oblique,
		"monospace":       r.Monospace,
		"weight":          r.Weight,
		"weight_name":     r.WeightName,
		"width_class":     r.WidthClass,
		"supports_latin":  r.SupportsLatin,
		"source_name":     r.SourceName,
	}
}

// String renders a short human-readable description of the face, e.g.
// "DejaVu Sans Mono [Bold, Mono] (weight=700, file=DejaVuSansMono-Bold.ttf)".
func (r Record) String() string {
	var style []string
	if r.Bold {
		style = append(style, "Bold")
	}
	if r.Italic {
		style = append(style, "Italic")
	}
	if r.Oblique {
		style = append(style, "Oblique")
	}
	if r.Monospace {
		style = append(style, "Mono")
	}
	s := "Regular"
	if len(style) > 0 {
		s = strings.Join(style, ", ")
	}
	return fmt.Sprintf("%s [%s] (weight=%d, file=%s)", r.Family, s, r.Weight, filepath.Base(r.Path))
}

// Compare orders two records by (Family, Weight, Italic, Bold) with the file
// path as the final tiebreak. It returns -1, 0, or +1 in the manner of
// [cmp.Compare] and is suitable for [slices.SortFunc].
func (r Record) Compare(other Record) int {
	if c := strings.Compare(r.Family, other.Family); c != 0 {
		return c
	}
	if c := cmp.Compare(r.Weight, other.Weight); c != 0 {
		return c
	}
	if c := compareBool(r.Italic, other.Italic); c != 0 {
		return c
	}
	if c := compareBool(r.Bold, other.Bold); c != 0 {
		return c
	}
	return strings.Compare(r.Path, other.Path)
}

// Less reports whether r sorts before other.
func (r Record) Less(other Record) bool {
	return r.Compare(other) < 0
}

// compareBool orders false before true.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
