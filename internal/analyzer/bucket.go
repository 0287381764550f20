package analyzer

import (
	"fmt"
	"time"

	"github.com/whoamihappyhacking/tgstat/internal/errors"
)

// dateLayouts lists the timestamp formats seen across Telegram exports.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// bucketKey maps a message date to its calendar-month key ("YYYY-MM"),
// interpreted in loc. Month bucketing is time-zone dependent; loc is an
// explicit input so runs are reproducible across environments.
func bucketKey(date string, loc *time.Location) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, date, loc); err == nil {
			t = t.In(loc)
			return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), nil
		}
	}
	return "", errors.InvalidTimestamp(date)
}
