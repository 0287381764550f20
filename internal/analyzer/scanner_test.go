package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_CaseInsensitiveSubstring(t *testing.T) {
	res := Scan("ДОБРАНІЧ, добраніченько", []string{"добраніч"})
	assert.Equal(t, 2, res.KeywordHits["добраніч"], "substring matches inside larger words count")
}

func TestScan_MatchesConsumeTheirSpan(t *testing.T) {
	res := Scan("ааа", []string{"аа"})
	assert.Equal(t, 1, res.KeywordHits["аа"])
}

func TestScan_NoHitsOmitted(t *testing.T) {
	res := Scan("просто текст", []string{"кохаю"})
	assert.Empty(t, res.KeywordHits)
	assert.Empty(t, res.Emojis)
}

func TestScan_EmptyText(t *testing.T) {
	res := Scan("", []string{"кохаю"})
	assert.Empty(t, res.KeywordHits)
	assert.Empty(t, res.Emojis)
}

func TestExtractEmojis_GraphemeClusters(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"single", "привіт 😀!", []string{"😀"}},
		{"skin tone", "дякую 👍🏽", []string{"👍🏽"}},
		{"zwj family", "ми 👨‍👩‍👧", []string{"👨‍👩‍👧"}},
		{"flag", "слава 🇺🇦", []string{"🇺🇦"}},
		{"keycap", "пункт 1️⃣", []string{"1️⃣"}},
		{"vs16 heart", "❤️", []string{"❤️"}},
		{"watch", "о ⌚ котрій?", []string{"⌚"}},
		{"alarm clock", "будильник ⏰", []string{"⏰"}},
		{"colored circle", "🟡", []string{"🟡"}},
		{"colored square", "🟥", []string{"🟥"}},
		{"enclosed ideograph", "🈚", []string{"🈚"}},
		{"order and duplicates", "😀🔥😀", []string{"😀", "🔥", "😀"}},
		{"plain text", "просто текст 123", nil},
		{"cyrillic only", "ґанок їжак", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractEmojis(tc.text))
		})
	}
}
