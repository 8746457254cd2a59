package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/domain/punch"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	ingestService punch.IngestService
}

func NewPunchHandler(ingestService punch.IngestService) PunchHandler {
	return &punchHandlerImpl{
		ingestService: ingestService,
	}
}

// Record implements PunchHandler.
func (h *punchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req punch.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	event, err := h.ingestService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", event)
}

// Import implements PunchHandler.
func (h *punchHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "CSV file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.ingestService.ImportCSV(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}

// List implements PunchHandler. It returns the raw events behind one
// employee-day, the view admins check before reprocessing.
func (h *punchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	employeeID := q.Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	date, err := time.Parse("2006-01-02", q.Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	events, err := h.ingestService.ListDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// Stats implements PunchHandler.
func (h *punchHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ingestService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
