package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/attendance"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
	Reprocess(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	recordService    attendance.RecordService
	reconcileService attendance.ReconcileService
	windowDays       int
}

func NewAttendanceHandler(recordService attendance.RecordService, reconcileService attendance.ReconcileService, windowDays int) AttendanceHandler {
	return &attendanceHandlerImpl{
		recordService:    recordService,
		reconcileService: reconcileService,
		windowDays:       windowDays,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	// Validate fills paging defaults so the meta block reflects what ran.
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, total, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, attendance.ToRecordResponse(rec))
	}

	response.SuccessWithMeta(w, resp, response.NewMeta(filter.Page, filter.Limit, total))
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.recordService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToRecordResponse(rec))
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.Forbidden(w, "Account is not linked to an employee")
		return
	}

	filter, err := parseListFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	filter.EmployeeID = &employeeID
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, total, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, attendance.ToRecordResponse(rec))
	}

	response.SuccessWithMeta(w, resp, response.NewMeta(filter.Page, filter.Limit, total))
}

// Reconcile implements AttendanceHandler. It sweeps every
// unprocessed employee-day inside the requested (or default) window.
func (h *attendanceHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReconcileRangeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -h.windowDays)
	to := now
	if req.StartDate != nil {
		from, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		to, _ = time.Parse("2006-01-02", *req.EndDate)
	}

	result, err := h.reconcileService.ReconcileAll(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reconciliation completed", result)
}

// Reprocess implements AttendanceHandler. It rebuilds one
// employee-day from scratch.
func (h *attendanceHandlerImpl) Reprocess(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rec, err := h.reconcileService.Reprocess(r.Context(), req.EmployeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record reprocessed", attendance.ToRecordResponse(rec))
}

func parseListFilter(r *http.Request) (attendance.ListFilter, error) {
	q := r.URL.Query()
	filter := attendance.ListFilter{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("department"); v != "" {
		filter.Department = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &t
	}
	if v := q.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	return filter, nil
}
