package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppliesTo_ExactDate(t *testing.T) {
	t.Parallel()

	h := Holiday{Name: "Company Day", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}

	assert.True(t, h.AppliesTo("emp-1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.AppliesTo("emp-1", time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.AppliesTo("emp-1", time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))
}

func TestAppliesTo_Recurring(t *testing.T) {
	t.Parallel()

	h := Holiday{
		Name:        "New Year",
		Date:        time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		IsRecurring: true,
	}

	assert.True(t, h.AppliesTo("emp-1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, h.AppliesTo("emp-1", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, h.AppliesTo("emp-1", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestAppliesTo_EmployeeScope(t *testing.T) {
	t.Parallel()

	empID := "emp-1"
	h := Holiday{
		Name:       "Personal Holiday",
		Date:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EmployeeID: &empID,
	}

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, h.AppliesTo("emp-1", day))
	assert.False(t, h.AppliesTo("emp-2", day))
}

func TestAnyApplies(t *testing.T) {
	t.Parallel()

	holidays := []Holiday{
		{Name: "A", Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "B", Date: time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC), IsRecurring: true},
	}

	assert.True(t, AnyApplies(holidays, "emp-1", time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)))
	assert.False(t, AnyApplies(holidays, "emp-1", time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, AnyApplies(nil, "emp-1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
}
