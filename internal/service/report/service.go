package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/report"
)

// listPageSize bounds each repository page while a report drains the
// full range.
const listPageSize = 100

type reportService struct {
	recordRepo attendance.RecordRepository
	empRepo    employee.EmployeeRepository
}

func NewReportService(recordRepo attendance.RecordRepository, empRepo employee.EmployeeRepository) report.ReportService {
	return &reportService{recordRepo: recordRepo, empRepo: empRepo}
}

func (s *reportService) Overtime(ctx context.Context, employeeID *string, from, to time.Time) (report.OvertimeSummary, error) {
	summary := report.OvertimeSummary{
		EmployeeID: employeeID,
		StartDate:  from.Format("2006-01-02"),
		EndDate:    to.Format("2006-01-02"),
	}

	records, err := s.collect(ctx, employeeID, from, to)
	if err != nil {
		return summary, err
	}

	for _, rec := range records {
		if rec.OvertimeHours == 0 {
			continue
		}
		summary.Days++

		total := decimal.NewFromFloat(rec.OvertimeHours)
		summary.TotalHours = summary.TotalHours.Add(total)
		summary.RegularHours = summary.RegularHours.Add(decimal.NewFromFloat(rec.RegularOvertimeHours))
		summary.WeekendHours = summary.WeekendHours.Add(decimal.NewFromFloat(rec.WeekendOvertimeHours))
		summary.HolidayHours = summary.HolidayHours.Add(decimal.NewFromFloat(rec.HolidayOvertimeHours))
		summary.NightHours = summary.NightHours.Add(decimal.NewFromFloat(rec.OvertimeNightHours))
		summary.WeightedHours = summary.WeightedHours.Add(total.Mul(decimal.NewFromFloat(rec.OvertimeRate)))
	}

	return summary, nil
}

func (s *reportService) Attendance(ctx context.Context, employeeID *string, from, to time.Time) (report.AttendanceSummary, error) {
	summary := report.AttendanceSummary{
		EmployeeID: employeeID,
		StartDate:  from.Format("2006-01-02"),
		EndDate:    to.Format("2006-01-02"),
	}

	records, err := s.collect(ctx, employeeID, from, to)
	if err != nil {
		return summary, err
	}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		case attendance.StatusMissingCheckIn:
			summary.MissingCheckIn++
		case attendance.StatusMissingCheckOut:
			summary.MissingCheckOut++
		}
		summary.TotalWorkHours = summary.TotalWorkHours.Add(decimal.NewFromFloat(rec.WorkHours))
		summary.TotalLateMinutes += rec.LateMinutes
	}

	return summary, nil
}

func (s *reportService) OvertimeByDepartment(ctx context.Context, from, to time.Time) ([]report.DepartmentOvertime, error) {
	records, err := s.collect(ctx, nil, from, to)
	if err != nil {
		return nil, err
	}

	departments := make(map[string]*report.DepartmentOvertime)
	memberSeen := make(map[string]map[string]bool)
	deptCache := make(map[string]string)

	for _, rec := range records {
		if rec.OvertimeHours == 0 {
			continue
		}

		dept, ok := deptCache[rec.EmployeeID]
		if !ok {
			emp, err := s.empRepo.GetByID(ctx, rec.EmployeeID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve employee %s: %w", rec.EmployeeID, err)
			}
			dept = "Unassigned"
			if emp.Department != nil && *emp.Department != "" {
				dept = *emp.Department
			}
			deptCache[rec.EmployeeID] = dept
		}

		row, ok := departments[dept]
		if !ok {
			row = &report.DepartmentOvertime{Department: dept}
			departments[dept] = row
			memberSeen[dept] = make(map[string]bool)
		}
		if !memberSeen[dept][rec.EmployeeID] {
			memberSeen[dept][rec.EmployeeID] = true
			row.Employees++
		}

		total := decimal.NewFromFloat(rec.OvertimeHours)
		row.TotalHours = row.TotalHours.Add(total)
		row.WeightedHours = row.WeightedHours.Add(total.Mul(decimal.NewFromFloat(rec.OvertimeRate)))
	}

	out := make([]report.DepartmentOvertime, 0, len(departments))
	for _, row := range departments {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })

	return out, nil
}

// collect drains every record page in the range.
func (s *reportService) collect(ctx context.Context, employeeID *string, from, to time.Time) ([]attendance.Record, error) {
	var all []attendance.Record

	for page := 1; ; page++ {
		filter := attendance.ListFilter{
			EmployeeID: employeeID,
			StartDate:  &from,
			EndDate:    &to,
			Page:       page,
			Limit:      listPageSize,
			SortBy:     "date",
			SortOrder:  "asc",
		}
		records, total, err := s.recordRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}
		all = append(all, records...)
		if int64(len(all)) >= total || len(records) == 0 {
			break
		}
	}

	return all, nil
}
