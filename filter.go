package fontindex

import (
	"slices"
	"strings"
)

// Criterion is a single filter predicate over a Record.
// Criteria combine with AND: Filter keeps the records for which every
// criterion returns true. Any func(Record) bool works as a custom
// criterion; the constructors below cover the common cases.
//
// There is no validation layer. Logically impossible combinations (for
// example Weight(700) together with MaxWeight(400)) simply match nothing.
// For OR semantics, run Filter once per alternative and merge the results.
type Criterion func(Record) bool

// Family matches an exact family name, case-insensitively.
func Family(name string) Criterion {
	want := fold(name)
	return func(r Record) bool { return fold(r.Family) == want }
}

// FamilyContains matches a substring of the family name, case-insensitively.
func FamilyContains(sub string) Criterion {
	want := fold(sub)
	return func(r Record) bool { return strings.Contains(fold(r.Family), want) }
}

// FullName matches an exact full font name, case-insensitively.
func FullName(name string) Criterion {
	want := fold(name)
	return func(r Record) bool { return fold(r.FullName) == want }
}

// PostScriptName matches an exact PostScript name, case-insensitively.
func PostScriptName(name string) Criterion {
	want := fold(name)
	return func(r Record) bool { return fold(r.PostScriptName) == want }
}

// Bold matches records whose bold flag equals v.
func Bold(v bool) Criterion {
	return func(r Record) bool { return r.Bold == v }
}

// Italic matches records whose italic flag equals v.
func Italic(v bool) Criterion {
	return func(r Record) bool { return r.Italic == v }
}

// Oblique matches records whose oblique flag equals v.
func Oblique(v bool) Criterion {
	return func(r Record) bool { return r.Oblique == v }
}

// Monospace matches records whose monospace flag equals v.
func Monospace(v bool) Criterion {
	return func(r Record) bool { return r.Monospace == v }
}

// SupportsLatin matches records whose Latin support flag equals v.
func SupportsLatin(v bool) Criterion {
	return func(r Record) bool { return r.SupportsLatin == v }
}

// Weight matches an exact OS/2 weight class.
func Weight(w int) Criterion {
	return func(r Record) bool { return r.Weight == w }
}

// MinWeight matches weights >= w. Combine with MaxWeight for a range.
func MinWeight(w int) Criterion {
	return func(r Record) bool { return r.Weight >= w }
}

// MaxWeight matches weights <= w. Combine with MinWeight for a range.
func MaxWeight(w int) Criterion {
	return func(r Record) bool { return r.Weight <= w }
}

// WeightName matches the derived weight label, e.g. "Bold",
// case-insensitively.
func WeightName(name string) Criterion {
	want := fold(name)
	return func(r Record) bool { return fold(r.WeightName) == want }
}

// WidthClass matches an exact OS/2 width class.
func WidthClass(w int) Criterion {
	return func(r Record) bool { return r.WidthClass == w }
}

// Format matches the file format by extension, case-insensitively.
// A leading dot is added if missing, so "otf" and ".otf" are equivalent.
func Format(ext string) Criterion {
	want := strings.ToLower(ext)
	if !strings.HasPrefix(want, ".") {
		want = "." + want
	}
	return func(r Record) bool { return strings.ToLower(r.Format) == want }
}

// Filter returns the records matching ALL given criteria, sorted by the
// standard ordering regardless of input order. The result is always a new
// slice; the input is never modified.
//
// With no criteria, Filter returns a sorted copy of the input. To filter
// the system font collection without scanning it yourself, use
// [Catalog.Filter] or [FilterAll].
func Filter(records []Record, match ...Criterion) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, match) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, Record.Compare)
	return out
}

func matchesAll(r Record, match []Criterion) bool {
	for _, m := range match {
		if !m(r) {
			return false
		}
	}
	return true
}
