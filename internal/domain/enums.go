package domain

type StressTier string

const (
	StressNormal   StressTier = "normal"
	StressHard     StressTier = "hard"
	StressVeryHard StressTier = "very_hard"
)

// IsHard reports whether the tier counts against hard-session budgets.
func (s StressTier) IsHard() bool {
	return s == StressHard || s == StressVeryHard
}

type Modality string

const (
	ModalityEndurance Modality = "endurance"
	ModalityStrength  Modality = "strength"
	ModalityOther     Modality = "other"
)

type RiskTier string

const (
	RiskDetraining RiskTier = "detraining"
	RiskSafe       RiskTier = "safe"
	RiskElevated   RiskTier = "elevated"
	RiskHigh       RiskTier = "high"
	RiskUnknown    RiskTier = "unknown"
)

// IsDeload reports whether the tier triggers deload scaling.
func (r RiskTier) IsDeload() bool {
	return r == RiskElevated || r == RiskHigh
}

type SessionType string

const (
	SessionLongRun   SessionType = "long_run"
	SessionZone2     SessionType = "zone2"
	SessionTempo     SessionType = "tempo"
	SessionIntervals SessionType = "intervals"
	SessionStrength  SessionType = "strength"
)

type SessionStatus string

const (
	StatusPlanned   SessionStatus = "planned"
	StatusCompleted SessionStatus = "completed"
	StatusMissed    SessionStatus = "missed"
	StatusSkipped   SessionStatus = "skipped"
)

// IsTerminal reports whether the status is final. Terminal sessions are never
// re-planned for their date.
func (s SessionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusMissed || s == StatusSkipped
}

type GoalKind string

const (
	GoalEndurance GoalKind = "endurance"
	GoalStrength  GoalKind = "strength"
	GoalBodycomp  GoalKind = "bodycomp"
	GoalSleep     GoalKind = "sleep"
	GoalVO2Max    GoalKind = "vo2max"
	GoalGeneral   GoalKind = "general"
)

type StrengthSplit string

const (
	SplitFullBody     StrengthSplit = "full_body"
	SplitUpperLower   StrengthSplit = "upper_lower"
	SplitPushPullLegs StrengthSplit = "push_pull_legs"
	SplitBro          StrengthSplit = "bro_split"
)

// Variants returns the session variant labels for the split, in rotation order.
func (s StrengthSplit) Variants() []string {
	switch s {
	case SplitUpperLower:
		return []string{"Upper", "Lower"}
	case SplitPushPullLegs:
		return []string{"Push", "Pull", "Legs"}
	case SplitBro:
		return []string{"Chest", "Back", "Shoulders", "Legs", "Arms"}
	default:
		return []string{"Full Body A", "Full Body B"}
	}
}

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

type StatusKind string

const (
	StatusIllness StatusKind = "illness"
	StatusTravel  StatusKind = "travel"
	StatusInjury  StatusKind = "injury"
)

// ValidStatusKinds is the canonical set of accepted status window kinds.
var ValidStatusKinds = map[string]bool{
	"illness": true, "travel": true, "injury": true,
}

// ValidStrengthSplits is the canonical set of accepted split strings.
var ValidStrengthSplits = map[string]bool{
	"full_body": true, "upper_lower": true, "push_pull_legs": true, "bro_split": true,
}
