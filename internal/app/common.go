package app

import "github.com/pacerapp/pacer/internal/domain"

// PlanFlagCode marks a non-fatal condition surfaced by a planning run. The run
// still produces a best-effort schedule; flags tell the user what degraded.
type PlanFlagCode string

const (
	FlagInsufficientData PlanFlagCode = "INSUFFICIENT_DATA"
	FlagNoOpenSlots      PlanFlagCode = "NO_OPEN_SLOTS"
	FlagQuotaCarryover   PlanFlagCode = "QUOTA_CARRYOVER"
	FlagDeloadActive     PlanFlagCode = "DELOAD_ACTIVE"
	FlagAbsenceActive    PlanFlagCode = "ABSENCE_ACTIVE"
)

type PlanFlag struct {
	Code    PlanFlagCode
	Message string
}

// SessionView is the presentation shape of a planned session.
type SessionView struct {
	ID          string
	Date        string // YYYY-MM-DD
	Weekday     string
	Title       string
	Type        domain.SessionType
	Modality    domain.Modality
	Variant     string
	DurationMin int
	Hardness    domain.StressTier
	Status      domain.SessionStatus
	Notes       []string
}

// NewSessionView converts a domain session for display.
func NewSessionView(s domain.PlanSession) SessionView {
	return SessionView{
		ID:          s.ID,
		Date:        domain.FormatDate(s.Date),
		Weekday:     s.Date.Weekday().String(),
		Title:       s.Title(),
		Type:        s.Type,
		Modality:    s.Modality,
		Variant:     s.Variant,
		DurationMin: s.DurationMin,
		Hardness:    s.Hardness,
		Status:      s.Status,
		Notes:       s.Notes,
	}
}

// NewSessionViews converts a slice of domain sessions for display.
func NewSessionViews(sessions []domain.PlanSession) []SessionView {
	views := make([]SessionView, len(sessions))
	for i, s := range sessions {
		views[i] = NewSessionView(s)
	}
	return views
}
