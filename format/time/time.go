package time

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	//ISO iso date norm: 2013-11-15 19:41:57
	ISO = "iso"
	//DIN din date norm: 15.11.2013 19:41:57
	DIN = "din"
	//UTC default date norm: Fri Nov 15 2013 19:40:45 GMT+0100 (CET)
	UTC = "utc"

	//DefaultLayout layout of UTC norm
	DefaultLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
)

var (
	isoLayout = DateFormatToTimeLayout("YYYY-MM-DD hh:mm:ss")
	dinLayout = DateFormatToTimeLayout("DD.MM.YYYY hh:mm:ss")

	detectLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		DefaultLayout,
		time.RFC1123Z,
		time.RFC1123,
		"January 2, 2006 15:04:05",
		"January 2, 2006",
	}
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format to RFC3339 time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// LayoutOf returns time layout for a date norm, unknown norm falls back to the UTC norm
func LayoutOf(norm string) string {
	switch strings.ToLower(norm) {
	case ISO:
		return isoLayout
	case DIN:
		return dinLayout
	case UTC:
		return DefaultLayout
	}
	return DefaultLayout
}

// Format formats ts with iso, din or the default norm
func Format(ts time.Time, norm string) string {
	return ts.Format(LayoutOf(norm))
}

// Parse parses value with layout, when layout is empty a list of common layouts is tried
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		return detect(value)
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		if len(value) > len(layout) {
			value = value[:len(layout)]
			t, err = time.Parse(layout, value)
		} else {
			layout = layout[:len(value)]
			t, err = time.Parse(layout, value)
		}
	}
	return t, err
}

// ParseDate parses value formatted with iso or din norm in local time,
// any other norm detects layout
func ParseDate(value, norm string) (time.Time, error) {
	switch strings.ToLower(norm) {
	case ISO, DIN:
		return time.ParseInLocation(LayoutOf(norm), strings.TrimSpace(value), time.Local)
	}
	return detect(value)
}

func detect(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range detectLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time string '%s'", value)
}

// StartOf returns beginning of the day, month or year of now
func StartOf(unit string, now time.Time) (time.Time, bool) {
	year, month, day := now.Date()
	switch strings.ToLower(unit) {
	case "day", "today":
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
	case "month", "this month":
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()), true
	case "year", "this year":
		return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// Timestamp returns milliseconds since epoch
func Timestamp(ts time.Time) int64 {
	return ts.UnixMilli()
}

// UnixTimestamp returns seconds since epoch rounded to the nearest second
func UnixTimestamp(ts time.Time) int64 {
	return int64(math.Round(float64(ts.UnixMilli()) / 1000))
}
