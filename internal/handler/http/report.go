package http

import (
	"net/http"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/report"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Overtime(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
	OvertimeByDepartment(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Overtime implements ReportHandler.
func (h *reportHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	from, to, employeeID, err := parseReportRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.reportService.Overtime(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	from, to, employeeID, err := parseReportRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summary, err := h.reportService.Attendance(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// OvertimeByDepartment implements ReportHandler.
func (h *reportHandlerImpl) OvertimeByDepartment(w http.ResponseWriter, r *http.Request) {
	from, to, _, err := parseReportRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	summaries, err := h.reportService.OvertimeByDepartment(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// parseReportRange reads from/to/employee_id query parameters,
// defaulting to the current month.
func parseReportRange(r *http.Request) (time.Time, time.Time, *string, error) {
	q := r.URL.Query()

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if v := q.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, nil, err
		}
		from = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, nil, err
		}
		to = t
	}

	var employeeID *string
	if v := q.Get("employee_id"); v != "" {
		employeeID = &v
	}

	return from, to, employeeID, nil
}
