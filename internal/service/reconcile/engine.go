package reconcile

import (
	"math"
	"sort"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
)

// DayInput carries everything needed to derive one employee-day. It is
// assembled by the service layer; the derivation itself touches no
// storage.
type DayInput struct {
	EmployeeID string
	Date       time.Time
	Events     []punch.Event

	// Shift resolved for the day, nil when the employee has none.
	Shift *shift.Shift

	// WeekendDays is the effective weekend set after the employee >
	// shift > system-default precedence has been applied.
	WeekendDays []int

	IsHoliday bool
}

// Derivation is the storage-free result of reducing one day's punches.
type Derivation struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   string

	TotalDuration float64
	BreakDuration float64
	WorkHours     float64
	LateMinutes   int

	IsWeekend bool
	ShiftType string

	// ConsumedEventIDs lists every event the derivation read, including
	// unpaired break punches. All of them are marked processed together.
	ConsumedEventIDs []string
}

// DeriveDay reduces one employee-day's raw punches to attendance
// figures. It is deterministic: the same input always yields the same
// output, regardless of event order.
func DeriveDay(in DayInput) Derivation {
	events := make([]punch.Event, len(in.Events))
	copy(events, in.Events)
	sort.Slice(events, func(i, j int) bool {
		if events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].ID < events[j].ID
		}
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	var d Derivation
	d.IsWeekend = shift.IsWeekendDay(in.Date, in.WeekendDays)

	var checkIns, checkOuts, breakOuts, breakIns []punch.Event
	for _, e := range events {
		d.ConsumedEventIDs = append(d.ConsumedEventIDs, e.ID)
		switch e.Kind {
		case punch.KindCheckIn:
			checkIns = append(checkIns, e)
		case punch.KindCheckOut:
			checkOuts = append(checkOuts, e)
		case punch.KindBreakOut:
			breakOuts = append(breakOuts, e)
		case punch.KindBreakIn:
			breakIns = append(breakIns, e)
		}
	}

	if len(checkIns) > 0 {
		t := checkIns[0].Timestamp
		d.CheckIn = &t
	}
	if len(checkOuts) > 0 {
		t := checkOuts[len(checkOuts)-1].Timestamp
		d.CheckOut = &t
	}

	d.BreakDuration = round2(pairBreaks(breakOuts, breakIns))

	if d.CheckIn != nil && d.CheckOut != nil {
		out := *d.CheckOut
		if out.Before(*d.CheckIn) && in.Shift != nil && in.Shift.IsOvernight {
			// Device stamped the checkout with the start day's date.
			// When timestamps already carry the next day no shift is
			// needed here.
			out = out.Add(24 * time.Hour)
		}
		span := out.Sub(*d.CheckIn).Hours()
		if span < 0 {
			span = 0
		}
		d.TotalDuration = round2(span)
		work := d.TotalDuration - d.BreakDuration
		if work < 0 {
			work = 0
		}
		d.WorkHours = round2(work)
	}

	d.Status = deriveStatus(d.CheckIn, d.CheckOut, d.WorkHours)
	d.LateMinutes = lateMinutes(in, d)
	d.ShiftType = classify(in.Shift, d.CheckIn)

	return d
}

// pairBreaks matches the i-th break_out with the i-th break_in.
// A pair only counts when the break_in is strictly after its break_out;
// unpaired or inverted punches contribute nothing.
func pairBreaks(breakOuts, breakIns []punch.Event) float64 {
	n := len(breakOuts)
	if len(breakIns) < n {
		n = len(breakIns)
	}
	var total float64
	for i := 0; i < n; i++ {
		if breakIns[i].Timestamp.After(breakOuts[i].Timestamp) {
			total += breakIns[i].Timestamp.Sub(breakOuts[i].Timestamp).Hours()
		}
	}
	return total
}

func deriveStatus(checkIn, checkOut *time.Time, workHours float64) string {
	switch {
	case checkIn == nil && checkOut == nil:
		return attendance.StatusMissingLogs
	case checkIn == nil:
		return attendance.StatusMissingCheckIn
	case checkOut == nil:
		return attendance.StatusMissingCheckOut
	case workHours < attendance.HalfDayThresholdHours:
		return attendance.StatusHalfDay
	default:
		return attendance.StatusPresent
	}
}

// lateMinutes measures how far past the scheduled start the first
// check-in landed. Lateness only exists on days that resolved to
// present or half_day; a day with missing punches carries none.
func lateMinutes(in DayInput, d Derivation) int {
	if d.Status != attendance.StatusPresent && d.Status != attendance.StatusHalfDay {
		return 0
	}
	if in.Shift == nil || d.CheckIn == nil {
		return 0
	}

	y, m, day := in.Date.Date()
	scheduled := time.Date(y, m, day,
		in.Shift.StartTime.Hour(), in.Shift.StartTime.Minute(), 0, 0, d.CheckIn.Location())

	diff := d.CheckIn.Sub(scheduled)
	if diff <= 0 {
		return 0
	}
	return int(diff.Minutes())
}

func classify(s *shift.Shift, checkIn *time.Time) string {
	if s != nil {
		return s.Classify()
	}
	if checkIn != nil {
		return shift.ClassifyByCheckIn(*checkIn)
	}
	return ""
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
