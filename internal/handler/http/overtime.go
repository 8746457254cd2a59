package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/overtime"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

type OvertimeRuleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type overtimeRuleHandlerImpl struct {
	ruleService overtime.RuleService
}

func NewOvertimeRuleHandler(ruleService overtime.RuleService) OvertimeRuleHandler {
	return &overtimeRuleHandlerImpl{
		ruleService: ruleService,
	}
}

// Create implements OvertimeRuleHandler.
func (h *overtimeRuleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rule, err := h.ruleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime rule created", rule)
}

// Get implements OvertimeRuleHandler.
func (h *overtimeRuleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rule, err := h.ruleService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rule)
}

// List implements OvertimeRuleHandler.
func (h *overtimeRuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// Deactivate implements OvertimeRuleHandler.
func (h *overtimeRuleHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ruleService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime rule deactivated", nil)
}
