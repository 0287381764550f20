package analyzer

import (
	"strings"
)

// ScanResult holds the counters extracted from one message text.
type ScanResult struct {
	// KeywordHits maps lowercased keyword to its occurrence count.
	// Keywords with no hits are absent.
	KeywordHits map[string]int

	// Emojis lists emoji graphemes in order of appearance, duplicates kept.
	Emojis []string
}

// Scan counts keyword occurrences and extracts emoji graphemes from text.
// Keyword matching is case-insensitive substring matching; each match
// consumes its span, so "ааа" contains "аа" once. Pure function.
func Scan(text string, keywords []string) ScanResult {
	res := ScanResult{KeywordHits: make(map[string]int, len(keywords))}
	if text == "" {
		return res
	}

	lower := strings.ToLower(text)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == "" {
			continue
		}
		if n := strings.Count(lower, kw); n > 0 {
			res.KeywordHits[kw] = n
		}
	}

	res.Emojis = extractEmojis(text)
	return res
}
