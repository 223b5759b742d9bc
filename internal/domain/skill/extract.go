package skill

import (
	"strings"
	"unicode"
)

// Extract returns the subset of the vocabulary evidenced by text, in
// vocabulary order. Matching is precision-oriented: every entry must
// match as a whole word (no adjacent letter or digit), and only
// multi-word entries are additionally accepted as substrings, including
// variants with the spaces removed or replaced by "-" or "_". Short
// single-token entries like "Go", "R" or "C#" never match inside other
// words.
func Extract(text string) Set {
	out := Set{}
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return out
	}

	for _, e := range Vocabulary {
		entry := strings.ToLower(e.Name)
		if containsWholeWord(lower, entry) {
			out.Add(e.Name)
			continue
		}
		if !strings.Contains(entry, " ") {
			continue
		}
		if strings.Contains(lower, entry) {
			out.Add(e.Name)
			continue
		}
		for _, sep := range []string{"", "-", "_"} {
			if strings.Contains(lower, strings.ReplaceAll(entry, " ", sep)) {
				out.Add(e.Name)
				break
			}
		}
	}

	return out
}

// containsWholeWord reports whether needle occurs in haystack with
// word-boundary semantics: the occurrence must not be preceded or
// followed by a letter or digit. Needles may contain non-word runes
// ("c#", "c++", "node.js"), which regexp \b handles poorly, so the
// boundary check is done by hand.
func containsWholeWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if !adjacentAlnum(haystack, start-1) && !adjacentAlnum(haystack, end) {
			return true
		}
		from = start + 1
		if from >= len(haystack) {
			return false
		}
	}
}

func adjacentAlnum(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	r := rune(s[i])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
