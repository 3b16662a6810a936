package codec

import (
	"regexp"
	"strings"
	"time"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	fullDateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// timestampLayouts are tried in order when parsing timestamps written by
// any client version.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
	dayLayout,
	monthLayout,
}

// parseTimestamp returns the zero time for empty or unparseable input.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return normalizeTime(t)
		}
	}
	return time.Time{}
}

func normalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC().Truncate(time.Microsecond)
}

func normalizeTimePtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := normalizeTime(*t)
	return &v
}

// remotePurchaseDate converts a local purchase date to the remote DATE
// form. Year-month values get the first day appended; full dates and
// timestamps are reduced to the date; anything else is dropped.
func remotePurchaseDate(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case yearMonthRe.MatchString(s):
		if t, err := time.Parse(monthLayout, s); err == nil {
			return t.Format(dayLayout)
		}
		return ""
	case fullDateRe.MatchString(s):
		if t, err := time.Parse(dayLayout, s); err == nil {
			return t.Format(dayLayout)
		}
		return ""
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Format(dayLayout)
	}
	return ""
}

// localPurchaseDate reduces a remote date to year-month granularity.
// Unparseable values pass through unchanged.
func localPurchaseDate(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case yearMonthRe.MatchString(s):
		return s
	case fullDateRe.MatchString(s):
		return s[:len(monthLayout)]
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Format(monthLayout)
	}
	return s
}
