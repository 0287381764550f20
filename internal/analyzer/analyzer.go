package analyzer

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/whoamihappyhacking/tgstat/internal/errors"
	"github.com/whoamihappyhacking/tgstat/internal/model"
)

// topEmojiCount is how many emojis a monthly stat keeps.
const topEmojiCount = 4

// Analyzer computes per-month aggregate statistics over a chat export.
// The pass is single-threaded; the bucket map lives only for the duration of
// one Analyze call.
type Analyzer struct {
	keywords []string
	loc      *time.Location
}

// New creates an Analyzer for the given fixed keyword set. Keywords are
// lowercased and deduplicated, preserving order; loc defaults to the local
// time zone when nil.
func New(keywords []string, loc *time.Location) *Analyzer {
	if loc == nil {
		loc = time.Local
	}
	seen := make(map[string]bool, len(keywords))
	fixed := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		fixed = append(fixed, kw)
	}
	return &Analyzer{keywords: fixed, loc: loc}
}

// Keywords returns the fixed keyword set in enumeration order.
func (a *Analyzer) Keywords() []string {
	return a.keywords
}

// emojiCounter tracks a single emoji's count and its first-seen sequence
// number, which resolves ties when ranking.
type emojiCounter struct {
	count int
	seq   int
}

type monthBucket struct {
	key          string
	messageCount int
	photoCount   int
	keywords     map[string]int
	emojis       map[string]*emojiCounter
	emojiSeq     int
}

// Analyze runs a single forward pass over the export's messages and returns
// the aggregated analysis. Per-message failures (unparseable date, scanner
// panic) only exclude that message; the pass as a whole fails solely when the
// message sequence is missing or malformed.
func (a *Analyzer) Analyze(export *model.ChatExport) (*model.ChatAnalysis, error) {
	if export == nil {
		return nil, errors.InvalidChatExport(nil)
	}
	entries, err := decodeMessages(export.Messages)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*monthBucket)
	order := make([]string, 0)

	for _, entry := range entries {
		var msg model.Message
		if err := json.Unmarshal(entry, &msg); err != nil {
			log.Debug().Err(err).Msg("malformed message entry, skipping")
			continue
		}
		if msg.Type != "message" {
			continue
		}
		a.accumulate(buckets, &order, &msg)
	}

	stats := make([]model.MonthlyStat, 0, len(order))
	for _, key := range order {
		stats = append(stats, a.formatBucket(buckets[key]))
	}

	return &model.ChatAnalysis{
		ChatID:        export.ID,
		ChatName:      export.Name,
		TotalMessages: len(entries),
		MonthlyStats:  stats,
	}, nil
}

// decodeMessages rejects an export whose messages field is absent or not a
// sequence. Entries stay raw so a single malformed message cannot abort the
// pass; the caller decodes them one at a time.
func decodeMessages(raw json.RawMessage) ([]json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.InvalidChatExport(nil)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.InvalidChatExport(err)
	}
	return entries, nil
}

// accumulate folds one message into its month bucket. All per-message work
// happens before any counter is touched, so a skipped message leaves no
// partial side effects. A panic inside the scanner drops the message.
func (a *Analyzer) accumulate(buckets map[string]*monthBucket, order *[]string, msg *model.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Int64("message_id", msg.ID).Msg("message scan failed, skipping")
		}
	}()

	key, err := bucketKey(msg.Date, a.loc)
	if err != nil {
		log.Debug().Str("date", msg.Date).Int64("message_id", msg.ID).Msg("unparseable message date, skipping")
		return
	}

	var scan ScanResult
	text := msg.PlainText()
	if text != "" {
		scan = Scan(text, a.keywords)
	}

	b, ok := buckets[key]
	if !ok {
		b = &monthBucket{
			key:      key,
			keywords: make(map[string]int, len(a.keywords)),
			emojis:   make(map[string]*emojiCounter),
		}
		for _, kw := range a.keywords {
			b.keywords[kw] = 0
		}
		buckets[key] = b
		*order = append(*order, key)
	}

	b.messageCount++
	if msg.HasPhoto() {
		b.photoCount++
	}
	for kw, n := range scan.KeywordHits {
		b.keywords[kw] += n
	}
	for _, e := range scan.Emojis {
		c, ok := b.emojis[e]
		if !ok {
			c = &emojiCounter{seq: b.emojiSeq}
			b.emojiSeq++
			b.emojis[e] = c
		}
		c.count++
	}
}

// formatBucket converts a bucket's maps into the ordered name/value sequences
// of the stored record. Keywords follow the fixed enumeration order exactly,
// zero counts included.
func (a *Analyzer) formatBucket(b *monthBucket) model.MonthlyStat {
	keywords := make([]model.NameValue, 0, len(a.keywords))
	for _, kw := range a.keywords {
		keywords = append(keywords, model.NameValue{Name: kw, Value: b.keywords[kw]})
	}
	return model.MonthlyStat{
		Month:        b.key,
		MessageCount: b.messageCount,
		PhotoCount:   b.photoCount,
		Keywords:     keywords,
		TopEmojis:    rankEmojis(b.emojis),
	}
}

// rankEmojis returns at most topEmojiCount (emoji, count) pairs, descending
// by count, ties broken by first-seen order during the pass.
func rankEmojis(emojis map[string]*emojiCounter) []model.NameValue {
	type entry struct {
		name string
		emojiCounter
	}
	all := make([]entry, 0, len(emojis))
	for name, c := range emojis {
		all = append(all, entry{name: name, emojiCounter: *c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].seq < all[j].seq
	})
	if len(all) > topEmojiCount {
		all = all[:topEmojiCount]
	}
	out := make([]model.NameValue, 0, len(all))
	for _, e := range all {
		out = append(out, model.NameValue{Name: e.name, Value: e.count})
	}
	return out
}
