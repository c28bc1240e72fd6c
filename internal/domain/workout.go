package domain

import "time"

// ZoneCount is the number of heart rate zones tracked per workout.
const ZoneCount = 5

// Workout is a completed training session as ingested. Immutable once logged.
type Workout struct {
	ID          string
	Date        time.Time // day granularity
	Type        string    // free-form activity type name, e.g. "run", "tempo", "soccer"
	DurationMin int
	EffortScore *float64 // RPE 0-10, optional
	ZoneMinutes [ZoneCount]int
	HasZones    bool
	Note        string
	CreatedAt   time.Time
}

// TopTwoZoneMinutes returns the minutes spent in the two highest HR zones,
// or 0 when no zone data was recorded.
func (w Workout) TopTwoZoneMinutes() int {
	if !w.HasZones {
		return 0
	}
	return w.ZoneMinutes[ZoneCount-2] + w.ZoneMinutes[ZoneCount-1]
}

// HasPhysioData reports whether any effort or HR zone signal is present.
func (w Workout) HasPhysioData() bool {
	return w.EffortScore != nil || w.HasZones
}

// ClassifiedWorkout is a Workout with its derived stress tier and modality.
// It is recomputed on every planning run and never persisted as authoritative.
type ClassifiedWorkout struct {
	Workout
	Stress   StressTier
	Modality Modality
}
