package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips accents, and collapses whitespace.
// It is idempotent: normalizing already-normalized text is a no-op.
// All marker and trigger matching runs over normalized text so that
// "está" and "esta" compare equal.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if out, _, err := transform.String(accentStripper, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

// Small Spanish stopword list used for trigger-token significance.
var stopwords = map[string]bool{
	"a": true, "al": true, "con": true, "de": true, "del": true,
	"el": true, "en": true, "es": true, "la": true, "las": true,
	"lo": true, "los": true, "me": true, "mi": true, "o": true,
	"para": true, "por": true, "que": true, "se": true, "ser": true,
	"sin": true, "su": true, "un": true, "una": true, "y": true,
}

// Tokenize splits normalized text into lowercase alphanumeric tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// SignificantTokens drops stopwords from a phrase's tokens. If fewer than
// two significant tokens remain, every token counts: short triggers like
// "mlm" must still be matchable.
func SignificantTokens(phrase string) []string {
	tokens := Tokenize(phrase)
	var sig []string
	for _, t := range tokens {
		if !stopwords[t] {
			sig = append(sig, t)
		}
	}
	if len(sig) < 2 {
		return tokens
	}
	return sig
}

// containsAny reports the first marker found as a substring of text, which
// must already be normalized. Markers double as evidence fragments.
func containsAny(text string, markers []string) (string, bool) {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return m, true
		}
	}
	return "", false
}
