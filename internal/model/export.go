package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ChatExport is the root of a Telegram JSON export (result.json).
type ChatExport struct {
	Name     *string         `json:"name"`
	Type     string          `json:"type"`
	ID       int64           `json:"id"`
	Messages json.RawMessage `json:"messages"`
}

// Message is a single entry of the export. Only Type == "message" entries
// participate in aggregation; "service" and other types are skipped.
//
// Text can be a plain string or an array mixing strings and entity objects,
// so it is kept raw until the scanner needs it.
type Message struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Date         string          `json:"date"`
	DateUnix     string          `json:"date_unixtime,omitempty"`
	From         string          `json:"from,omitempty"`
	FromID       string          `json:"from_id,omitempty"`
	Text         json.RawMessage `json:"text,omitempty"`
	TextEntities []TextEntity    `json:"text_entities,omitempty"`

	// Photo indicator fields. Export variants carry a path string, a bare
	// boolean or an object here, so both fields stay raw and are
	// truthy-checked. A message counts as a photo when Photo or Thumbnail
	// is present and truthy, or MediaType equals "photo".
	Photo     json.RawMessage `json:"photo,omitempty"`
	Thumbnail json.RawMessage `json:"thumbnail,omitempty"`
	MediaType string          `json:"media_type,omitempty"`
}

// TextEntity is one rich part of a structured text (mention, link, etc).
type TextEntity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HasPhoto checks the three alternate photo indicator fields, each truthy
// independently.
func (m *Message) HasPhoto() bool {
	return truthy(m.Photo) || truthy(m.Thumbnail) || m.MediaType == "photo"
}

// truthy reports whether a raw JSON value is present and non-falsy.
// Falsy values: absent, null, false, the empty string and the number zero.
func truthy(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", `""`, "0":
		return false
	}
	return true
}

// PlainText returns the message text as a single string. A JSON string is
// returned as-is; any structured value is serialized to its compact JSON
// form. Scanning the serialized form can match representation artifacts in
// addition to human-visible text; that is a known approximation.
func (m *Message) PlainText() string {
	if len(m.Text) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.Text, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m.Text); err != nil {
		return string(m.Text)
	}
	return buf.String()
}
