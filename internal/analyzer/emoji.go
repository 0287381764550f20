package analyzer

import (
	"github.com/rivo/uniseg"
)

// emojiRanges covers the emoji-presentation blocks. Symbols that are only
// emoji with a variation selector (e.g. ❤️, ‼️) are handled by the VS16 and
// keycap checks in isEmojiCluster.
var emojiRanges = [][2]rune{
	{0x231A, 0x231B},   // watch, hourglass
	{0x23E9, 0x23F3},   // media controls, alarm clock, timers
	{0x23F8, 0x23FA},   // pause, stop, record
	{0x25FB, 0x25FE},   // medium squares
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x2B05, 0x2B07},   // arrows
	{0x2B1B, 0x2B1C},   // black/white large squares
	{0x2B50, 0x2B50},   // star
	{0x2B55, 0x2B55},   // heavy large circle
	{0x1F004, 0x1F004}, // mahjong red dragon
	{0x1F0CF, 0x1F0CF}, // playing card joker
	{0x1F18E, 0x1F18E}, // AB button
	{0x1F191, 0x1F19A}, // squared CL..VS
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x1F200, 0x1F2FF}, // enclosed ideographic supplement
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F7E0, 0x1F7F0}, // colored circles and squares, heavy equals
	{0x1F900, 0x1F9FF}, // supplemental symbols & pictographs
	{0x1FA70, 0x1FAFF}, // symbols & pictographs extended-A
}

const (
	vs16   = 0xFE0F // variation selector-16, requests emoji presentation
	keycap = 0x20E3 // combining enclosing keycap
)

func isEmojiRune(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// isEmojiCluster reports whether a grapheme cluster renders as emoji.
// Multi-codepoint sequences (skin tones, ZWJ families, flags, keycaps) are
// judged as a whole, never per code point.
func isEmojiCluster(runes []rune) bool {
	for _, r := range runes {
		if r == vs16 || r == keycap {
			return true
		}
		if isEmojiRune(r) {
			return true
		}
	}
	return false
}

// extractEmojis returns every emoji grapheme of text in order of appearance.
func extractEmojis(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if isEmojiCluster(gr.Runes()) {
			out = append(out, gr.Str())
		}
	}
	return out
}
