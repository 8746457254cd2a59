package shift

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/domain/shift"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type shiftService struct {
	shiftRepo  shift.ShiftRepository
	assignRepo shift.AssignmentRepository
	empRepo    employee.EmployeeRepository
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignRepo shift.AssignmentRepository,
	empRepo employee.EmployeeRepository,
) shift.ShiftService {
	return &shiftService{
		shiftRepo:  shiftRepo,
		assignRepo: assignRepo,
		empRepo:    empRepo,
	}
}

func (s *shiftService) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	start, _ := validator.IsValidClockTime(req.StartTime)
	end, _ := validator.IsValidClockTime(req.EndTime)

	sh := shift.Shift{
		ID:                  uuid.NewString(),
		Name:                req.Name,
		StartTime:           start,
		EndTime:             end,
		IsOvernight:         req.IsOvernight,
		BreakAllowanceHours: req.BreakAllowanceHours,
		GracePeriodMinutes:  req.GracePeriodMinutes,
		WeekendDays:         req.WeekendDays,
		IsActive:            true,
	}

	created, err := s.shiftRepo.Create(ctx, sh)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

func (s *shiftService) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	return s.shiftRepo.GetByID(ctx, id)
}

func (s *shiftService) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	return s.shiftRepo.List(ctx, activeOnly)
}

func (s *shiftService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.shiftRepo.Deactivate(ctx, id)
}

// Assign opens a new shift assignment. An open-ended prior assignment
// for the same employee is closed the day before the new one starts, so
// assignment history never overlaps ambiguously going forward.
func (s *shiftService) Assign(ctx context.Context, req shift.AssignShiftRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	if _, err := s.empRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return shift.Assignment{}, err
	}
	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID); err != nil {
		return shift.Assignment{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)

	existing, err := s.assignRepo.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to load assignments: %w", err)
	}
	for _, a := range existing {
		if a.IsActive && a.EndDate == nil && a.StartDate.Before(start) {
			if err := s.assignRepo.End(ctx, a.ID, start.AddDate(0, 0, -1)); err != nil {
				return shift.Assignment{}, fmt.Errorf("failed to close previous assignment: %w", err)
			}
		}
	}

	assignment := shift.Assignment{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		StartDate:  start,
		IsActive:   true,
	}
	if req.EndDate != nil {
		if d, ok := validator.IsValidDate(*req.EndDate); ok {
			assignment.EndDate = &d
		}
	}

	created, err := s.assignRepo.Create(ctx, assignment)
	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	return created, nil
}

func (s *shiftService) ListAssignments(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	return s.assignRepo.ListByEmployee(ctx, employeeID)
}
