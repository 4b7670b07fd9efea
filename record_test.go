package fontindex

import (
	"slices"
	"strings"
	"testing"
)

func TestRecordCompareTotalOrder(t *testing.T) {
	records := []Record{
		{Family: "Arial", Weight: 400, Path: "/a/arial.ttf"},
		{Family: "Arial", Weight: 400, Italic: true, Path: "/a/ariali.ttf"},
		{Family: "Arial", Weight: 700, Bold: true, Path: "/a/arialbd.ttf"},
		{Family: "Arial", Weight: 700, Bold: true, Italic: true, Path: "/a/arialbi.ttf"},
		{Family: "DejaVu Sans", Weight: 400, Path: "/d/DejaVuSans.ttf"},
	}

	// Sorting any permutation must give the same order.
	want := slices.Clone(records)
	perm := []Record{records[3], records[0], records[4], records[2], records[1]}
	slices.SortFunc(perm, Record.Compare)
	for i := range want {
		if perm[i].Path != want[i].Path {
			t.Fatalf("order mismatch at %d: got %s, want %s", i, perm[i].Path, want[i].Path)
		}
	}
}

func TestRecordCompareKey(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want int
	}{
		{"family first", Record{Family: "A", Weight: 900}, Record{Family: "B", Weight: 100}, -1},
		{"weight second", Record{Family: "A", Weight: 300}, Record{Family: "A", Weight: 400}, -1},
		{"italic third", Record{Family: "A", Weight: 400}, Record{Family: "A", Weight: 400, Italic: true}, -1},
		{"bold fourth", Record{Family: "A", Weight: 400, Italic: true}, Record{Family: "A", Weight: 400, Italic: true, Bold: true}, -1},
		{"path tiebreak", Record{Family: "A", Weight: 400, Path: "/x"}, Record{Family: "A", Weight: 400, Path: "/y"}, -1},
		{"equal", Record{Family: "A", Weight: 400, Path: "/x"}, Record{Family: "A", Weight: 400, Path: "/x"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reverse Compare = %d, want %d", got, -tt.want)
			}
			if tt.a.Less(tt.b) != (tt.want < 0) {
				t.Errorf("Less = %v, want %v", tt.a.Less(tt.b), tt.want < 0)
			}
		})
	}
}

func TestRecordToMap(t *testing.T) {
	rec := Record{
		Family:         "DejaVu Sans Mono",
		Subfamily:      "Bold",
		FullName:       "DejaVu Sans Mono Bold",
		PostScriptName: "DejaVuSansMono-Bold",
		Path:           "/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
		Format:         ".ttf",
		Bold:           true,
		Monospace:      true,
		Weight:         700,
		WeightName:     "Bold",
		WidthClass:     5,
		SupportsLatin:  true,
		SourceName:     "DejaVu Sans Mono Bold",
	}

	m := rec.ToMap()
	if len(m) != len(RecordFields()) {
		t.Fatalf("ToMap has %d fields, RecordFields has %d", len(m), len(RecordFields()))
	}
	for _, field := range RecordFields() {
		if _, ok := m[field]; !ok {
			t.Errorf("ToMap missing field %q", field)
		}
	}

	// Spot-check values and primitive types.
	if got, ok := m["path"].(string); !ok || got != rec.Path {
		t.Errorf("path = %v (%T), want string %q", m["path"], m["path"], rec.Path)
	}
	if got := m["weight"].(int); got != 700 {
		t.Errorf("weight = %d, want 700", got)
	}
	if got := m["bold"].(bool); !got {
		t.Error("bold = false, want true")
	}
	if got := m["family"].(string); got != rec.Family {
		t.Errorf("family = %q, want %q", got, rec.Family)
	}
}

func TestRecordString(t *testing.T) {
	rec := Record{
		Family:    "DejaVu Sans Mono",
		Bold:      true,
		Monospace: true,
		Weight:    700,
		Path:      "/fonts/DejaVuSansMono-Bold.ttf",
	}
	s := rec.String()
	for _, part := range []string{"DejaVu Sans Mono", "Bold", "Mono", "weight=700", "DejaVuSansMono-Bold.ttf"} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}

	plain := Record{Family: "Arial", Weight: 400, Path: "/fonts/arial.ttf"}
	if got := plain.String(); !strings.Contains(got, "[Regular]") {
		t.Errorf("String() = %q, want [Regular] marker", got)
	}
}
