package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// FlexTime is a timestamp that tolerates the three date encodings found in
// persisted records: an ISO-8601 string, a number of epoch milliseconds
// (a serialized native date), or a legacy {"seconds": N, "nanoseconds": M}
// object. It always marshals back to ISO-8601 UTC, so every load migrates
// the record one step closer to a single canonical encoding.
type FlexTime struct {
	time.Time
}

// NewFlexTime wraps t, normalized to UTC.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t.UTC()}
}

// flexTimeLayouts are tried in order when decoding a string date.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode date string: %w", err)
		}
		for _, layout := range flexTimeLayouts {
			parsed, err := time.Parse(layout, s)
			if err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return fmt.Errorf("unrecognized date format %q", s)
	case '{':
		// Legacy object shape carried over from the original mobile builds.
		var legacy struct {
			Seconds     int64 `json:"seconds"`
			Nanoseconds int64 `json:"nanoseconds"`
		}
		if err := json.Unmarshal(data, &legacy); err != nil {
			return fmt.Errorf("decode legacy date object: %w", err)
		}
		t.Time = time.Unix(legacy.Seconds, legacy.Nanoseconds).UTC()
		return nil
	default:
		var millis float64
		if err := json.Unmarshal(data, &millis); err != nil {
			return fmt.Errorf("decode date number: %w", err)
		}
		t.Time = time.UnixMilli(int64(millis)).UTC()
		return nil
	}
}
