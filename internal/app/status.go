package app

import (
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

type StatusRequest struct {
	// Now pins the reference instant; nil means wall clock at the edge.
	Now *time.Time
	// AuditTail is the number of recent adaptation log entries to include.
	AuditTail int
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{AuditTail: 5}
}

// AuditView is one adaptation log entry for display.
type AuditView struct {
	Timestamp   time.Time
	SessionDate string // YYYY-MM-DD
	From        domain.SessionStatus
	To          domain.SessionStatus
	Rule        string
	Detail      string
}

type StatusResponse struct {
	GeneratedAt     time.Time
	Today           string // YYYY-MM-DD
	LoadRatio       *domain.LoadRatio
	Risk            domain.RiskTier
	Readiness       *domain.ReadinessScore
	Absence         *domain.StatusWindow
	UpcomingCount   int
	NextSessions    []SessionView
	RecentWorkouts  int
	AuditTail       []AuditView
	Warnings        []string
}

type ScheduleRequest struct {
	// Now pins the reference instant; nil means wall clock at the edge.
	Now *time.Time
	// From/To bound the listing; zero values default to the upcoming window.
	From *time.Time
	To   *time.Time
}

type ScheduleResponse struct {
	GeneratedAt time.Time
	From        string // YYYY-MM-DD
	To          string
	Sessions    []SessionView
}
