package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsTerm reports whether term occurs in text as a whole word or phrase.
// Both arguments are expected to be lowercased already. Boundaries are only
// enforced on sides of the term that start or end with a letter or digit, so
// symbols such as "₹" match anywhere.
func ContainsTerm(text, term string) bool {
	return indexTerm(text, term, 0) >= 0
}

// CountTerm returns the number of non-overlapping whole-word occurrences of term.
func CountTerm(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	from := 0
	for {
		idx := indexTerm(text, term, from)
		if idx < 0 {
			return count
		}
		count++
		from = idx + len(term)
	}
}

// FirstTerm returns the byte offset of the first whole-word occurrence of term, or -1.
func FirstTerm(text, term string) int {
	return indexTerm(text, term, 0)
}

// MatchedTerms returns the terms (in table order) that occur in text.
func MatchedTerms(text string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if ContainsTerm(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// ContainsAny reports whether any of terms occurs in text.
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if ContainsTerm(text, term) {
			return true
		}
	}
	return false
}

func indexTerm(text, term string, from int) int {
	if term == "" || from > len(text) {
		return -1
	}
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	checkLeft := isWordRune(first)
	checkRight := isWordRune(last)

	for from <= len(text) {
		rel := strings.Index(text[from:], term)
		if rel < 0 {
			return -1
		}
		idx := from + rel
		end := idx + len(term)

		ok := true
		if checkLeft && idx > 0 {
			before, _ := utf8.DecodeLastRuneInString(text[:idx])
			ok = !isWordRune(before)
		}
		if ok && checkRight && end < len(text) {
			after, _ := utf8.DecodeRuneInString(text[end:])
			ok = !isWordRune(after)
		}
		if ok {
			return idx
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		from = idx + size
	}
	return -1
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
