package types

import (
	"strings"
	"time"
)

// FormatDisplayDate renders an ISO-ish timestamp as DD/MM/YYYY for order and
// review views. Empty, zero, or unparsable values fall back to "-" or the
// raw date portion of the input.
func FormatDisplayDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "-"
	}

	parsed, err := parseLoose(trimmed)
	if err != nil {
		clean := trimmed
		if idx := strings.IndexAny(clean, "T "); idx > 0 {
			clean = clean[:idx]
		}
		if clean == "" || clean == "0001-01-01" {
			return "-"
		}
		return clean
	}

	if parsed.IsZero() || parsed.Year() == 1 {
		return "-"
	}
	return parsed.Format("02/01/2006")
}

func parseLoose(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
