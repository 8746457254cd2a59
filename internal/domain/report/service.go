package report

import (
	"context"
	"time"
)

type ReportService interface {
	// Overtime aggregates overtime hours, optionally for one employee.
	Overtime(ctx context.Context, employeeID *string, from, to time.Time) (OvertimeSummary, error)

	// Attendance counts statuses, optionally for one employee.
	Attendance(ctx context.Context, employeeID *string, from, to time.Time) (AttendanceSummary, error)

	// OvertimeByDepartment groups a range's overtime per department,
	// feeding the bonus workflow.
	OvertimeByDepartment(ctx context.Context, from, to time.Time) ([]DepartmentOvertime, error)
}
