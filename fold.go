package fontindex

import "golang.org/x/text/cases"

// fold case-folds s for caseless comparison. All name matching in this
// package goes through Unicode case folding rather than ASCII lowering, so
// names like "İstanbul Sans" compare correctly.
//
// cases.Caser is stateful and not safe for concurrent use, so a fresh caser
// is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// foldEqual reports whether a and b are equal under case folding.
func foldEqual(a, b string) bool {
	return fold(a) == fold(b)
}
