// Package prayertime is the prayer-catchability decision engine. Everything
// in it is pure computation over mosque-local wall-clock times: no I/O, no
// caching, no shared state, safe to call from any number of goroutines.
package prayertime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableTime marks a clock string the normalizer could not make
// sense of. Callers drop the offending prayer and keep going.
var ErrUnparseableTime = errors.New("unparseable time")

// Mosque sites publish times as "6:30 AM", "06:30", "12:45pm", sometimes with
// stray whitespace or a trailing timezone tag like "(PDT)". Anything beyond
// that grammar must fail outright rather than truncate to a valid-looking
// prefix, so the pattern is anchored at both ends.
var clockPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*(?:([AaPp])\.?[Mm]\.?)?\s*(?:\([A-Za-z]{2,5}\))?\s*$`)

// NormalizeClock parses a free-form clock string into canonical 24-hour
// "HH:MM". It accepts H:MM and HH:MM with an optional case-insensitive AM/PM
// suffix, and rejects anything whose hour or minute falls out of range after
// 12-hour conversion.
func NormalizeClock(raw string) (string, error) {
	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
	}

	switch strings.ToUpper(m[3]) {
	case "P":
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
		}
		if hour != 12 {
			hour += 12
		}
	case "A":
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
		}
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// atClock anchors a canonical "HH:MM" onto ref's calendar day in ref's
// location. NormalizeClock must have validated s first.
func atClock(s string, ref time.Time) (time.Time, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTime, s)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location()), nil
}

// clock12 renders a mosque-local instant the way a congregant would say it,
// e.g. "6:00 AM".
func clock12(t time.Time) string {
	return t.Format("3:04 PM")
}

// minutesUntil floors a remaining span to whole minutes, never below zero.
func minutesUntil(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
