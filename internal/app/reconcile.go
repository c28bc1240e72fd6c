package app

import (
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

type ReconcileRequest struct {
	// Now pins the reference instant; nil means wall clock at the edge.
	Now *time.Time
	// Replan re-runs planning for the upcoming window after reconciliation.
	Replan bool
}

func NewReconcileRequest() ReconcileRequest {
	return ReconcileRequest{Replan: true}
}

// TransitionView is one reconciled status change for display.
type TransitionView struct {
	SessionID string
	Date      string // YYYY-MM-DD
	Title     string
	From      domain.SessionStatus
	To        domain.SessionStatus
	Rule      string
	Detail    string
}

type ReconcileResponse struct {
	GeneratedAt        time.Time
	Today              string // YYYY-MM-DD
	Transitions        []TransitionView
	CarryoverEndurance int
	CarryoverStrength  int
	DeloadFlagged      bool
	// Plan holds the follow-up planning result when Replan was requested.
	Plan *PlanResponse
}

type ReconcileErrorCode string

const (
	ReconcileErrInternal ReconcileErrorCode = "INTERNAL_ERROR"
)

type ReconcileError struct {
	Code    ReconcileErrorCode
	Message string
}

func (e *ReconcileError) Error() string {
	return string(e.Code) + ": " + e.Message
}
