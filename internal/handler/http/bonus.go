package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/bonus"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

type BonusHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetSubmission(w http.ResponseWriter, r *http.Request)
	ListSubmissions(w http.ResponseWriter, r *http.Request)
}

type bonusHandlerImpl struct {
	bonusService bonus.BonusService
}

func NewBonusHandler(bonusService bonus.BonusService) BonusHandler {
	return &bonusHandlerImpl{
		bonusService: bonusService,
	}
}

// CreatePeriod implements BonusHandler.
func (h *bonusHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	period, err := h.bonusService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus period created", period)
}

// ListPeriods implements BonusHandler.
func (h *bonusHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.bonusService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

// Submit implements BonusHandler.
func (h *bonusHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req bonus.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	submission, err := h.bonusService.Submit(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Submission created", submission)
}

// Approve implements BonusHandler.
func (h *bonusHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	id := chi.URLParam(r, "id")

	submission, err := h.bonusService.Approve(r.Context(), id, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission approved", submission)
}

// Reject implements BonusHandler.
func (h *bonusHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	id := chi.URLParam(r, "id")

	var req bonus.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	submission, err := h.bonusService.Reject(r.Context(), id, userID, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submission rejected", submission)
}

// GetSubmission implements BonusHandler.
func (h *bonusHandlerImpl) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	submission, err := h.bonusService.GetSubmission(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, submission)
}

// ListSubmissions implements BonusHandler.
func (h *bonusHandlerImpl) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	submissions, err := h.bonusService.ListSubmissions(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, submissions)
}

func userIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok && userID != ""
}
