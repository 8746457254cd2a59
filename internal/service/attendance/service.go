package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
)

type recordService struct {
	recordRepo attendance.RecordRepository
}

func NewRecordService(recordRepo attendance.RecordRepository) attendance.RecordService {
	return &recordService{recordRepo: recordRepo}
}

func (s *recordService) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	records, total, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, total, nil
}

func (s *recordService) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	rec, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}

func (s *recordService) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	return s.recordRepo.GetByEmployeeAndDate(ctx, employeeID, date)
}
