package helper_util

import (
	"fmt"
	"time"
)

// FormatTime renders a timestamp for storage. Stored values are compared
// lexicographically in Cypher, so both sides are normalized to UTC first;
// mixed offsets would not order by instant.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

func ParseNullableTime(value interface{}) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case time.Time:
		return &v, nil
	case string:
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("unsupported type for time parsing: %T", value)
	}
}
