package scheduler

import (
	"time"

	"github.com/pacerapp/pacer/internal/domain"
)

// DefaultWindowDays is the standard forward planning horizon.
const DefaultWindowDays = 7

// MaxWindowDays caps the optional extended horizon.
const MaxWindowDays = 14

// ResolveSlots computes the ordered list of assignable calendar days over the
// forward window (reference date inclusive). A day is open iff its weekday is
// available, is not a preferred rest day, carries no fixed appointment, and
// holds no terminal session. Days failing any condition are permanently
// excluded from this run's placement.
func ResolveSlots(c domain.Constraints, terminalDates map[string]bool, today time.Time, windowDays int) []time.Time {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}

	blocked := make(map[time.Weekday]bool)
	for _, appt := range c.FixedAppointments {
		blocked[appt.Weekday] = true
	}

	var slots []time.Time
	for i := 0; i < windowDays; i++ {
		day := domain.AddDays(today, i)
		wd := day.Weekday()
		if !c.DaysAvailable[wd] || c.PreferredRestDays[wd] || blocked[wd] {
			continue
		}
		if terminalDates[domain.FormatDate(day)] {
			continue
		}
		slots = append(slots, day)
	}
	return slots
}
