package fontindex

import "testing"

func TestWeightClassName(t *testing.T) {
	tests := []struct {
		weight int
		want   string
	}{
		{100, "Thin"},
		{200, "ExtraLight"},
		{300, "Light"},
		{400, "Regular"},
		{500, "Medium"},
		{600, "SemiBold"},
		{700, "Bold"},
		{800, "ExtraBold"},
		{900, "Black"},
		// Non-standard values round to the nearest stop.
		{380, "Regular"},
		{420, "Regular"},
		{720, "Bold"},
		{1000, "Black"},
		{50, "Thin"},
		// Equidistant values round down, matching the reference behavior.
		{350, "Light"},
		{650, "SemiBold"},
		// Out of range.
		{0, "Unknown"},
		{-100, "Unknown"},
	}
	for _, tt := range tests {
		if got := WeightClassName(tt.weight); got != tt.want {
			t.Errorf("WeightClassName(%d) = %q, want %q", tt.weight, got, tt.want)
		}
	}
}

func TestWidthClassName(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{1, "UltraCondensed"},
		{3, "Condensed"},
		{5, "Normal"},
		{7, "Expanded"},
		{9, "UltraExpanded"},
		{0, "Unknown"},
		{10, "Unknown"},
		{-1, "Unknown"},
	}
	for _, tt := range tests {
		if got := WidthClassName(tt.width); got != tt.want {
			t.Errorf("WidthClassName(%d) = %q, want %q", tt.width, got, tt.want)
		}
	}
}
