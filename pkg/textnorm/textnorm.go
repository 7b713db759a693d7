package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldReplacer = strings.NewReplacer("đ", "d", "Đ", "d")

// Normalize lowercases s and strips combining marks, folding đ/Đ to d, so that
// "Đà Nẵng" and "da nang" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	return strings.ToLower(foldReplacer.Replace(out))
}

// Contains reports whether needle occurs in haystack after normalisation.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
