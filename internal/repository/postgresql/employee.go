package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/employee"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, name, email, phone, department, position, join_date,
	current_shift_id, weekend_days, is_active,
	eligible_for_weekday_overtime, eligible_for_weekend_overtime, eligible_for_holiday_overtime,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.Name, &e.Email, &e.Phone, &e.Department, &e.Position, &e.JoinDate,
		&e.CurrentShiftID, &e.WeekendDays, &e.IsActive,
		&e.EligibleForWeekdayOvertime, &e.EligibleForWeekendOvertime, &e.EligibleForHolidayOvertime,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, name, email, phone, department, position, join_date,
			current_shift_id, weekend_days, is_active,
			eligible_for_weekday_overtime, eligible_for_weekend_overtime, eligible_for_holiday_overtime,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := querier.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.Name, emp.Email, emp.Phone, emp.Department, emp.Position, emp.JoinDate,
		emp.CurrentShiftID, emp.WeekendDays, emp.IsActive,
		emp.EligibleForWeekdayOvertime, emp.EligibleForWeekendOvertime, emp.EligibleForHolidayOvertime,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(querier.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1`

	emp, err := scanEmployee(querier.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	querier := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argPos))
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR employee_code ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees WHERE ` + where
	if err := querier.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees
		WHERE %s
		ORDER BY employee_code
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $2, email = $3, phone = $4, department = $5, position = $6,
		    current_shift_id = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := querier.QueryRow(ctx, query,
		emp.ID, emp.Name, emp.Email, emp.Phone, emp.Department, emp.Position,
		emp.CurrentShiftID, emp.IsActive,
	).Scan(&emp.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) UpdateOvertimeEligibility(ctx context.Context, id string, weekday, weekend, holiday bool) error {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET eligible_for_weekday_overtime = $2,
		    eligible_for_weekend_overtime = $3,
		    eligible_for_holiday_overtime = $4,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := querier.Exec(ctx, query, id, weekday, weekend, holiday)
	if err != nil {
		return fmt.Errorf("failed to update overtime eligibility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) UpdateWeekendDays(ctx context.Context, id string, days []int) error {
	querier := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET weekend_days = $2, updated_at = NOW() WHERE id = $1`

	tag, err := querier.Exec(ctx, query, id, days)
	if err != nil {
		return fmt.Errorf("failed to update weekend days: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
