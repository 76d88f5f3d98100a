// Package detect classifies inbound text: normalization, support-intent
// detection, and funnel/tag detection for first messages.
package detect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and strips diacritics so "Cancelár" matches
// "cancelar". Keyword matching is always done on normalized text.
func Normalize(text string) string {
	folded, _, err := transform.String(foldTransformer, text)
	if err != nil {
		// Fold failure leaves diacritics in place; matching still works for
		// ASCII keywords.
		folded = text
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ContainsKeyword reports whether normalized text contains the keyword.
// Multi-word keywords match as substrings; single words match on word
// boundaries so "plan" does not hit "airplane". The keyword is normalized
// before matching.
func ContainsKeyword(normText, keyword string) bool {
	kw := Normalize(keyword)
	if kw == "" {
		return false
	}
	if strings.ContainsRune(kw, ' ') {
		return strings.Contains(normText, kw)
	}

	idx := 0
	for {
		i := strings.Index(normText[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		if boundaryBefore(normText, start) && boundaryAfter(normText, end) {
			return true
		}
		idx = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
