package overtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
)

var calcDay = time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

func standardRule() overtime.Rule {
	return overtime.Rule{
		ID:                "rule-1",
		Name:              "Standard Overtime",
		ApplyOnWeekday:    true,
		ApplyOnWeekend:    true,
		ApplyOnHoliday:    true,
		DailyRegularHours: 8.0,
		MaxDailyOvertime:  4.0,
		WeekdayMultiplier: 1.5,
		WeekendMultiplier: 2.0,
		HolidayMultiplier: 2.5,
		Priority:          10,
		IsActive:          true,
	}
}

func allEligible() Eligibility {
	return Eligibility{Weekday: true, Weekend: true, Holiday: true}
}

func TestCalculate_WeekdayExcess(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   10.0,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 2.0, res.Regular)
	assert.Equal(t, 0.0, res.Weekend)
	assert.Equal(t, 0.0, res.Holiday)
	assert.Equal(t, 2.0, res.Total)
	assert.Equal(t, 1.5, res.Rate)
	require.NotNil(t, res.RuleID)
	assert.Equal(t, "rule-1", *res.RuleID)
}

func TestCalculate_WeekdayUnderThreshold(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   7.5,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, 1.0, res.Rate)
}

func TestCalculate_WeekdayCappedAtMaxDaily(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   14.0,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 4.0, res.Regular)
	assert.Equal(t, 4.0, res.Total)
}

func TestCalculate_WeekendAllHoursUncapped(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   6.0,
		IsWeekend:   true,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 6.0, res.Weekend)
	assert.Equal(t, 0.0, res.Regular)
	assert.Equal(t, 6.0, res.Total)
	assert.Equal(t, 2.0, res.Rate)

	// The weekday cap never applies off-weekday.
	long := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   12.0,
		IsWeekend:   true,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})
	assert.Equal(t, 12.0, long.Weekend)
}

func TestCalculate_HolidayBeatsWeekend(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   5.0,
		IsWeekend:   true,
		IsHoliday:   true,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 5.0, res.Holiday)
	assert.Equal(t, 0.0, res.Weekend)
	assert.Equal(t, 2.5, res.Rate)
	assert.Equal(t, res.Regular+res.Weekend+res.Holiday, res.Total)
}

func TestCalculate_EligibilityGating(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   6.0,
		IsWeekend:   true,
		Eligibility: Eligibility{Weekday: true, Weekend: false, Holiday: true},
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, 1.0, res.Rate)
}

func TestCalculate_RuleCategoryDisabled(t *testing.T) {
	t.Parallel()

	rule := standardRule()
	rule.ApplyOnHoliday = false

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   5.0,
		IsHoliday:   true,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{rule},
	})

	// Holiday still wins the category switch; it never falls through to
	// weekday overtime.
	assert.Equal(t, 0.0, res.Total)
}

func TestCalculate_NightShiftTag(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   6.0,
		IsWeekend:   true,
		ShiftType:   shift.TypeNight,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 6.0, res.Night)
	// Night mirrors the firing category; the sum stays category-only.
	assert.Equal(t, 6.0, res.Total)
}

func TestCalculate_NoApplicableRule(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   12.0,
		Eligibility: allEligible(),
	})

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, 1.0, res.Rate)
	assert.Nil(t, res.RuleID)
}

func TestCalculate_RuleSelection(t *testing.T) {
	t.Parallel()

	low := standardRule()
	low.ID = "rule-low"
	low.Priority = 1
	low.WeekdayMultiplier = 1.2

	high := standardRule()
	high.ID = "rule-high"
	high.Priority = 20
	high.WeekdayMultiplier = 1.75

	expired := standardRule()
	expired.ID = "rule-expired"
	expired.Priority = 99
	until := calcDay.AddDate(0, -1, 0)
	expired.ValidUntil = &until

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   9.0,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{low, expired, high},
	})

	require.NotNil(t, res.RuleID)
	assert.Equal(t, "rule-high", *res.RuleID)
	assert.Equal(t, 1.75, res.Rate)
}

func TestCalculate_ZeroWorkHours(t *testing.T) {
	t.Parallel()

	res := Calculate(CalcInput{
		Date:        calcDay,
		WorkHours:   0,
		IsHoliday:   true,
		Eligibility: allEligible(),
		Rules:       []overtime.Rule{standardRule()},
	})

	assert.Equal(t, 0.0, res.Total)
	assert.Equal(t, 1.0, res.Rate)
}
