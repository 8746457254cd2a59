package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type employeeService struct {
	empRepo employee.EmployeeRepository
}

func NewEmployeeService(empRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.empRepo.GetByCode(ctx, req.EmployeeCode); err == nil {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Position:     req.Position,
		IsActive:     true,

		// Overtime eligibility defaults on; HR opts employees out.
		EligibleForWeekdayOvertime: true,
		EligibleForWeekendOvertime: true,
		EligibleForHolidayOvertime: true,
	}
	if req.JoinDate != nil {
		if d, ok := validator.IsValidDate(*req.JoinDate); ok {
			emp.JoinDate = &d
		}
	}
	if req.ShiftID != nil {
		emp.CurrentShiftID = req.ShiftID
	}

	created, err := s.empRepo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.empRepo.List(ctx, filter)
}

func (s *employeeService) UpdateEligibility(ctx context.Context, id string, req employee.UpdateEligibilityRequest) (employee.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	weekday := emp.EligibleForWeekdayOvertime
	weekend := emp.EligibleForWeekendOvertime
	holiday := emp.EligibleForHolidayOvertime
	if req.EligibleForWeekdayOvertime != nil {
		weekday = *req.EligibleForWeekdayOvertime
	}
	if req.EligibleForWeekendOvertime != nil {
		weekend = *req.EligibleForWeekendOvertime
	}
	if req.EligibleForHolidayOvertime != nil {
		holiday = *req.EligibleForHolidayOvertime
	}

	if err := s.empRepo.UpdateOvertimeEligibility(ctx, id, weekday, weekend, holiday); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update overtime eligibility: %w", err)
	}
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) UpdateWeekendDays(ctx context.Context, id string, req employee.UpdateWeekendDaysRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return employee.Employee{}, err
	}

	if err := s.empRepo.UpdateWeekendDays(ctx, id, req.WeekendDays); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update weekend days: %w", err)
	}
	return s.empRepo.GetByID(ctx, id)
}
