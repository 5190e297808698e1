package runtime

import (
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// rootCollator orders strings by the root-locale Unicode collation order,
// not by code point: collate.Loose ignores case, diacritics and width, so
// "a" and "A" (or "e" and "é") compare equal. Built once; collate.New
// is safe for concurrent use (§5: single-threaded here regardless).
var rootCollator = collate.New(language.Und, collate.Loose)

// CompareStrings orders a and b for the interpreter's `<`/`>`/`<=`/`>=`
// operators on two strings: both are NFC-normalized, then compared in
// rootCollator's collation order via golang.org/x/text/collate. Returns <0,
// 0, or >0 like strings.Compare.
func CompareStrings(a, b string) int {
	return rootCollator.CompareString(norm.NFC.String(a), norm.NFC.String(b))
}

// ToLowerCase and ToUpperCase implement the case-folding a hosted
// `String.prototype`-style builtin would expose, using norm to put the
// input into a canonical form first so combining sequences fold the same
// way regardless of how the source text happened to be composed.
func ToLowerCase(s string) string {
	return toCase(s, false)
}

func ToUpperCase(s string) string {
	return toCase(s, true)
}

func toCase(s string, upper bool) string {
	normalized := norm.NFC.String(s)
	runes := []rune(normalized)
	for i, r := range runes {
		if upper {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}
