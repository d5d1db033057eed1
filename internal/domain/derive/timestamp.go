package derive

import (
	"log"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeTimestamp converts an Aurora ISO-8601 timestamp to the
// processing-host zone at second precision. A trailing literal Z is the
// UTC offset. Returns "" for missing or unparsable input; a bad timestamp
// must never fail the event.
func NormalizeTimestamp(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err != nil {
			continue
		}
		return t.In(time.Local).Truncate(time.Second).Format(time.RFC3339)
	}

	log.Printf("[derive][timestamp] unparsable value %q", raw)
	return ""
}
