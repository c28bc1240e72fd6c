package domain

import "time"

type ReadinessQuality string

const (
	ReadinessOK           ReadinessQuality = "ok"
	ReadinessInsufficient ReadinessQuality = "insufficient"
)

// ReadinessScore is the composite 0-100 recovery score for one local date.
type ReadinessScore struct {
	Date    time.Time // day granularity
	Score   int
	Quality ReadinessQuality
}

// StatusWindow marks a period of illness, travel or injury. At most one is
// active at a time; it gates both placement and reconciliation.
type StatusWindow struct {
	Kind  StatusKind
	Since *time.Time // day granularity, open start when nil
	Until time.Time  // day granularity, inclusive
}

// ActiveOn reports whether the window covers the given date.
func (w StatusWindow) ActiveOn(date time.Time) bool {
	if w.Since != nil && date.Before(*w.Since) {
		return false
	}
	return !date.After(w.Until)
}
