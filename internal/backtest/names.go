package backtest

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// normalizeName lowercases, strips diacritics, and drops everything but
// letters, so "Luka Dončić" and "luka doncic" reconcile. Used only for
// cross-source matching when player IDs disagree.
func normalizeName(name string) string {
	stripped, _, err := transform.String(diacriticStripper, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// namesMatch reports whether two display names refer to the same player:
// exact normalized match first, fuzzy subsequence match as a last resort
// for feeds that abbreviate first names.
func namesMatch(a, b string) bool {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return fuzzy.Match(na, nb) || fuzzy.Match(nb, na)
}
