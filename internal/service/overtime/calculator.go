package overtime

import (
	"math"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
)

// Eligibility carries the employee's per-category overtime switches.
type Eligibility struct {
	Weekday bool
	Weekend bool
	Holiday bool
}

// CalcInput is one reconciled day as seen by the calculator. Rules is
// the active rule set; selection happens inside Calculate so callers
// pass the same slice for every day of a batch.
type CalcInput struct {
	Date        time.Time
	WorkHours   float64
	IsWeekend   bool
	IsHoliday   bool
	ShiftType   string
	Eligibility Eligibility
	Rules       []overtime.Rule

	// DefaultDailyHours backs the weekday threshold when the selected
	// rule carries no DailyRegularHours.
	DefaultDailyHours float64
}

// CalcResult breaks one day's overtime into mutually exclusive
// categories. Exactly one of Regular, Weekend and Holiday can be
// non-zero. Night is a tag mirroring whichever category fired on a
// night shift, not a fourth bucket, so Total always equals
// Regular + Weekend + Holiday.
type CalcResult struct {
	Regular float64
	Weekend float64
	Holiday float64
	Night   float64
	Total   float64
	Rate    float64
	RuleID  *string
}

// Calculate derives the overtime split for one day. Holiday beats
// weekend: a worked holiday that falls on a weekend is holiday
// overtime only. On holidays and weekends every worked hour counts as
// overtime; on weekdays only the excess over the daily threshold does,
// capped by the rule's MaxDailyOvertime.
func Calculate(in CalcInput) CalcResult {
	res := CalcResult{Rate: 1.0}

	rule := overtime.SelectRule(in.Rules, in.Date)
	if rule == nil || in.WorkHours <= 0 {
		return res
	}
	res.RuleID = &rule.ID

	switch {
	case in.IsHoliday:
		if in.Eligibility.Holiday && rule.ApplyOnHoliday {
			res.Holiday = round2(in.WorkHours)
			res.Rate = rule.HolidayMultiplier
		}
	case in.IsWeekend:
		if in.Eligibility.Weekend && rule.ApplyOnWeekend {
			res.Weekend = round2(in.WorkHours)
			res.Rate = rule.WeekendMultiplier
		}
	default:
		if in.Eligibility.Weekday && rule.ApplyOnWeekday {
			threshold := rule.DailyRegularHours
			if threshold <= 0 {
				threshold = in.DefaultDailyHours
			}
			excess := in.WorkHours - threshold
			if excess > 0 {
				if rule.MaxDailyOvertime > 0 && excess > rule.MaxDailyOvertime {
					excess = rule.MaxDailyOvertime
				}
				res.Regular = round2(excess)
				res.Rate = rule.WeekdayMultiplier
			}
		}
	}

	res.Total = round2(res.Regular + res.Weekend + res.Holiday)
	if res.Total == 0 {
		res.Rate = 1.0
	}

	if in.ShiftType == shift.TypeNight && res.Total > 0 {
		res.Night = res.Total
	}

	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
