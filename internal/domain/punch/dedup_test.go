package punch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dedupEvent(id, empID, devID string, kind Kind, minuteOffset int) Event {
	base := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	return Event{
		ID:         id,
		EmployeeID: empID,
		DeviceID:   devID,
		Kind:       kind,
		Timestamp:  base.Add(time.Duration(minuteOffset) * time.Minute),
	}
}

func TestIsDuplicate_WithinWindow(t *testing.T) {
	t.Parallel()

	existing := []Event{dedupEvent("1", "emp-1", "dev-1", KindCheckIn, 0)}
	candidate := dedupEvent("2", "emp-1", "dev-1", KindCheckIn, 2)

	assert.True(t, IsDuplicate(existing, candidate, 5*time.Minute))
}

func TestIsDuplicate_OutsideWindow(t *testing.T) {
	t.Parallel()

	existing := []Event{dedupEvent("1", "emp-1", "dev-1", KindCheckIn, 0)}
	candidate := dedupEvent("2", "emp-1", "dev-1", KindCheckIn, 6)

	assert.False(t, IsDuplicate(existing, candidate, 5*time.Minute))
}

func TestIsDuplicate_DifferentKeyFields(t *testing.T) {
	t.Parallel()

	existing := []Event{dedupEvent("1", "emp-1", "dev-1", KindCheckIn, 0)}

	otherEmp := dedupEvent("2", "emp-2", "dev-1", KindCheckIn, 1)
	otherDev := dedupEvent("3", "emp-1", "dev-2", KindCheckIn, 1)
	otherKind := dedupEvent("4", "emp-1", "dev-1", KindCheckOut, 1)

	assert.False(t, IsDuplicate(existing, otherEmp, 5*time.Minute))
	assert.False(t, IsDuplicate(existing, otherDev, 5*time.Minute))
	assert.False(t, IsDuplicate(existing, otherKind, 5*time.Minute))
}

func TestIsDuplicate_EarlierCandidate(t *testing.T) {
	t.Parallel()

	existing := []Event{dedupEvent("1", "emp-1", "dev-1", KindCheckIn, 5)}
	candidate := dedupEvent("2", "emp-1", "dev-1", KindCheckIn, 1)

	assert.True(t, IsDuplicate(existing, candidate, 5*time.Minute))
}

func TestNormalizeKind(t *testing.T) {
	t.Parallel()

	cases := map[string]Kind{
		"IN":        KindCheckIn,
		"in":        KindCheckIn,
		" check_in": KindCheckIn,
		"OUT":       KindCheckOut,
		"Check-Out": KindCheckOut,
		"BREAK_OUT": KindBreakOut,
		"break-in":  KindBreakIn,
	}

	for raw, want := range cases {
		got, err := NormalizeKind(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := NormalizeKind("lunch")
	assert.Error(t, err)
}
