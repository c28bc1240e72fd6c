package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableIntToValue converts a *int to a value suitable for SQLite storage.
func nullableIntToValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// encodeWeekdaySet renders a weekday set as a sorted CSV of weekday numbers
// (0 = Sunday), e.g. "1,3,5".
func encodeWeekdaySet(set map[time.Weekday]bool) string {
	var days []int
	for wd, ok := range set {
		if ok {
			days = append(days, int(wd))
		}
	}
	sort.Ints(days)
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// decodeWeekdaySet parses a weekday CSV produced by encodeWeekdaySet.
func decodeWeekdaySet(s string) (map[time.Weekday]bool, error) {
	set := make(map[time.Weekday]bool)
	if s == "" {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing weekday %q: %w", part, err)
		}
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("weekday %d out of range", n)
		}
		set[time.Weekday(n)] = true
	}
	return set, nil
}

// encodeNotes joins session notes for storage. Notes never contain newlines.
func encodeNotes(notes []string) string {
	return strings.Join(notes, "\n")
}

// decodeNotes splits a stored notes column back into its entries.
func decodeNotes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
