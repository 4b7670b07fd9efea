package fontindex

// Standard OS/2 usWeightClass stops and their conventional names.
var weightNames = [...]string{
	"Thin",       // 100
	"ExtraLight", // 200
	"Light",      // 300
	"Regular",    // 400
	"Medium",     // 500
	"SemiBold",   // 600
	"Bold",       // 700
	"ExtraBold",  // 800
	"Black",      // 900
}

// WeightClassName maps an OS/2 usWeightClass value (100-900) to its
// conventional name. Values between standard stops are rounded to the
// nearest stop; equidistant values (e.g. 350) round down.
// Values <= 0 return "Unknown".
func WeightClassName(weight int) string {
	if weight <= 0 {
		return "Unknown"
	}
	best := 0
	bestDist := distance(weight, 100)
	for i := 1; i < len(weightNames); i++ {
		if d := distance(weight, (i+1)*100); d < bestDist {
			best, bestDist = i, d
		}
	}
	return weightNames[best]
}

// Standard OS/2 usWidthClass stops and their conventional names.
var widthNames = [...]string{
	"UltraCondensed", // 1
	"ExtraCondensed", // 2
	"Condensed",      // 3
	"SemiCondensed",  // 4
	"Normal",         // 5
	"SemiExpanded",   // 6
	"Expanded",       // 7
	"ExtraExpanded",  // 8
	"UltraExpanded",  // 9
}

// WidthClassName maps an OS/2 usWidthClass value (1-9) to its conventional
// name. Out-of-range values return "Unknown".
func WidthClassName(width int) string {
	if width < 1 || width > len(widthNames) {
		return "Unknown"
	}
	return widthNames[width-1]
}

func distance(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
