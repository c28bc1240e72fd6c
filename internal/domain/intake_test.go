package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintsValidate_EmptyDaysAvailable(t *testing.T) {
	c := Constraints{
		PreferredRestDays: map[time.Weekday]bool{time.Sunday: true},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConstraints)
}

func TestConstraintsValidate_EmptyRestDays(t *testing.T) {
	c := Constraints{
		DaysAvailable: map[time.Weekday]bool{time.Monday: true},
	}
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConstraints)
}

func TestConstraintsValidate_OverlapRejected(t *testing.T) {
	c := Constraints{
		DaysAvailable:     map[time.Weekday]bool{time.Monday: true, time.Sunday: true},
		PreferredRestDays: map[time.Weekday]bool{time.Sunday: true},
	}
	assert.ErrorIs(t, c.Validate(), ErrInvalidConstraints)
}

func TestConstraintsValidate_Disjoint(t *testing.T) {
	c := Constraints{
		DaysAvailable:     map[time.Weekday]bool{time.Monday: true, time.Wednesday: true},
		PreferredRestDays: map[time.Weekday]bool{time.Sunday: true},
	}
	assert.NoError(t, c.Validate())
}

func TestNextMilestone_PicksEarliestUpcoming(t *testing.T) {
	in := Intake{
		Milestones: []Milestone{
			{ID: "m-past", Date: NewDate(2025, 1, 1)},
			{ID: "m-late", Date: NewDate(2025, 9, 1)},
			{ID: "m-next", Date: NewDate(2025, 6, 15)},
		},
	}
	m := in.NextMilestone(NewDate(2025, 3, 1))
	require.NotNil(t, m)
	assert.Equal(t, "m-next", m.ID)

	assert.Nil(t, in.NextMilestone(NewDate(2025, 10, 1)))
}

func TestStatusWindow_ActiveOn(t *testing.T) {
	since := NewDate(2025, 3, 10)
	w := StatusWindow{Kind: StatusIllness, Since: &since, Until: NewDate(2025, 3, 14)}

	assert.False(t, w.ActiveOn(NewDate(2025, 3, 9)))
	assert.True(t, w.ActiveOn(NewDate(2025, 3, 10)))
	assert.True(t, w.ActiveOn(NewDate(2025, 3, 14)))
	assert.False(t, w.ActiveOn(NewDate(2025, 3, 15)))

	open := StatusWindow{Kind: StatusTravel, Until: NewDate(2025, 3, 14)}
	assert.True(t, open.ActiveOn(NewDate(2024, 1, 1)))
}

func TestStartOfWeek(t *testing.T) {
	// 2025-03-15 is a Saturday; its week starts Monday 2025-03-10.
	assert.Equal(t, NewDate(2025, 3, 10), StartOfWeek(NewDate(2025, 3, 15)))
	// Monday maps to itself.
	assert.Equal(t, NewDate(2025, 3, 10), StartOfWeek(NewDate(2025, 3, 10)))
	// Sunday belongs to the week started the previous Monday.
	assert.Equal(t, NewDate(2025, 3, 10), StartOfWeek(NewDate(2025, 3, 16)))
}

func TestDateOf_UsesLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	// 23:30 UTC on Mar 14 is already Mar 15 in Berlin.
	instant := time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2025, 3, 15), DateOf(instant, berlin))
}
