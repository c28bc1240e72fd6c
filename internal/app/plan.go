package app

import (
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

type PlanRequest struct {
	// Now pins the reference instant; nil means wall clock at the edge.
	Now        *time.Time
	WindowDays int
	// Carryover quotas and the deload flag are handed over by a
	// reconciliation run that triggers this plan.
	CarryoverEndurance int
	CarryoverStrength  int
	DeloadFlagged      bool
}

func NewPlanRequest() PlanRequest {
	return PlanRequest{}
}

type PlanResponse struct {
	GeneratedAt time.Time
	Today       string // YYYY-MM-DD
	WindowStart string
	WindowEnd   string
	Risk        domain.RiskTier
	LoadRatio   *domain.LoadRatio
	Deload      bool
	Sessions    []SessionView
	Demoted     []string // dates of sessions demoted for recovery spacing
	Dropped     []string // titles of sessions removed by the hard-session budget
	Flags       []PlanFlag
}

// Flagged reports whether the response carries the given flag.
func (r *PlanResponse) Flagged(code PlanFlagCode) bool {
	for _, f := range r.Flags {
		if f.Code == code {
			return true
		}
	}
	return false
}

type PlanErrorCode string

const (
	PlanErrInvalidConstraints PlanErrorCode = "INVALID_CONSTRAINTS"
	PlanErrNoIntake           PlanErrorCode = "NO_INTAKE"
	PlanErrInternal           PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
