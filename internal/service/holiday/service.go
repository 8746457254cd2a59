package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mir-ams/attendance-backend-go/internal/domain/holiday"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type holidayService struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayService{holidayRepo: holidayRepo}
}

func (s *holidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	h := holiday.Holiday{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Date:        date,
		IsRecurring: req.IsRecurring,
		EmployeeID:  req.EmployeeID,
	}

	created, err := s.holidayRepo.Create(ctx, h)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

func (s *holidayService) ListRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return s.holidayRepo.ListRange(ctx, from, to)
}

func (s *holidayService) Delete(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}
