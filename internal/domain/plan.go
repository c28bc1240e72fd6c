package domain

import "time"

// PlanSession is the scheduling unit: one planned (or reconciled) session on
// one calendar day. Created by the session placer; mutated only by the
// guardrail pass (demotion/removal), the readiness gate (intensity downgrade)
// and the reconciler (status transitions).
type PlanSession struct {
	ID          string
	Date        time.Time // day granularity
	Modality    Modality
	Type        SessionType
	Variant     string // strength split variant label, empty for endurance
	DurationMin int
	Hardness    StressTier
	Status      SessionStatus
	Notes       []string // deload/readiness annotations
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Title returns a human-readable session name.
func (s PlanSession) Title() string {
	switch s.Type {
	case SessionLongRun:
		return "Long Run"
	case SessionZone2:
		return "Zone 2"
	case SessionTempo:
		return "Tempo"
	case SessionIntervals:
		return "Intervals"
	case SessionStrength:
		if s.Variant != "" {
			return "Strength: " + s.Variant
		}
		return "Strength"
	default:
		return string(s.Type)
	}
}

// AdaptationLogEntry is one append-only audit record for a reconciled or
// adapted session. Entries are never mutated or deleted.
type AdaptationLogEntry struct {
	ID          string
	Timestamp   time.Time
	SessionID   string
	SessionDate time.Time
	FromStatus  SessionStatus
	ToStatus    SessionStatus
	Rule        string
	Detail      string
}
