package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestActiveAssignment_Containment(t *testing.T) {
	t.Parallel()

	end := date(2024, 3, 31)
	assignments := []Assignment{
		{ID: "a1", ShiftID: "s1", StartDate: date(2024, 1, 1), EndDate: &end, IsActive: true},
	}

	assert.NotNil(t, ActiveAssignment(assignments, date(2024, 2, 15)))
	assert.NotNil(t, ActiveAssignment(assignments, date(2024, 1, 1)))
	assert.NotNil(t, ActiveAssignment(assignments, date(2024, 3, 31)))
	assert.Nil(t, ActiveAssignment(assignments, date(2023, 12, 31)))
	assert.Nil(t, ActiveAssignment(assignments, date(2024, 4, 1)))
}

func TestActiveAssignment_MixedLocations(t *testing.T) {
	t.Parallel()

	wib := time.FixedZone("WIB", 7*3600)
	assignments := []Assignment{
		{ID: "a1", ShiftID: "s1", StartDate: date(2024, 3, 10), IsActive: true},
	}

	// 2024-03-10 01:00 WIB is still 2024-03-09 in UTC; the wall-clock
	// calendar day is what decides containment.
	local := time.Date(2024, 3, 10, 1, 0, 0, 0, wib)
	got := ActiveAssignment(assignments, local)
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.ID)

	assert.Nil(t, ActiveAssignment(assignments, time.Date(2024, 3, 9, 23, 0, 0, 0, wib)))
}

func TestActiveAssignment_LatestStartWins(t *testing.T) {
	t.Parallel()

	assignments := []Assignment{
		{ID: "a1", ShiftID: "old", StartDate: date(2024, 1, 1), IsActive: true},
		{ID: "a2", ShiftID: "new", StartDate: date(2024, 3, 1), IsActive: true},
	}

	got := ActiveAssignment(assignments, date(2024, 3, 15))
	require.NotNil(t, got)
	assert.Equal(t, "new", got.ShiftID)

	// Before the newer assignment starts, the older one still applies.
	got = ActiveAssignment(assignments, date(2024, 2, 1))
	require.NotNil(t, got)
	assert.Equal(t, "old", got.ShiftID)
}

func TestActiveAssignment_DeterministicTieBreak(t *testing.T) {
	t.Parallel()

	assignments := []Assignment{
		{ID: "a1", ShiftID: "s1", StartDate: date(2024, 1, 1), IsActive: true},
		{ID: "a2", ShiftID: "s2", StartDate: date(2024, 1, 1), IsActive: true},
	}
	reversed := []Assignment{assignments[1], assignments[0]}

	first := ActiveAssignment(assignments, date(2024, 2, 1))
	second := ActiveAssignment(reversed, date(2024, 2, 1))

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "a2", first.ID)
}

func TestActiveAssignment_InactiveSkipped(t *testing.T) {
	t.Parallel()

	assignments := []Assignment{
		{ID: "a1", ShiftID: "s1", StartDate: date(2024, 1, 1), IsActive: false},
	}

	assert.Nil(t, ActiveAssignment(assignments, date(2024, 2, 1)))
}

func TestIsWeekendDay(t *testing.T) {
	t.Parallel()

	saturday := date(2024, 1, 13)
	monday := date(2024, 1, 15)

	assert.True(t, IsWeekendDay(saturday, nil))
	assert.False(t, IsWeekendDay(monday, nil))

	// Custom weekend set: Friday only.
	friday := date(2024, 1, 12)
	assert.True(t, IsWeekendDay(friday, []int{4}))
	assert.False(t, IsWeekendDay(saturday, []int{4}))
}

func TestShiftClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		shift Shift
		want  string
	}{
		{"named night", Shift{Name: "Night Ops", StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)}, TypeNight},
		{"named morning", Shift{Name: "Morning A", StartTime: time.Date(0, 1, 1, 20, 0, 0, 0, time.UTC)}, TypeDay},
		{"by start hour day", Shift{Name: "Alpha", StartTime: time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)}, TypeDay},
		{"by start hour afternoon", Shift{Name: "Beta", StartTime: time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC)}, TypeAfternoon},
		{"by start hour night", Shift{Name: "Gamma", StartTime: time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC)}, TypeNight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.shift.Classify())
		})
	}
}

func TestShiftDurationHours(t *testing.T) {
	t.Parallel()

	day := Shift{
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 17, 30, 0, 0, time.UTC),
	}
	assert.Equal(t, 8.5, day.DurationHours())

	night := Shift{
		StartTime: time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 6, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 8.0, night.DurationHours())
}
