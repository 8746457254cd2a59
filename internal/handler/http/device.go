package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mir-ams/attendance-backend-go/internal/domain/device"
	"github.com/mir-ams/attendance-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	deviceService device.DeviceService
}

func NewDeviceHandler(deviceService device.DeviceService) DeviceHandler {
	return &deviceHandlerImpl{
		deviceService: deviceService,
	}
}

// Register implements DeviceHandler.
func (h *deviceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req device.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	dev, err := h.deviceService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device registered", dev)
}

// Get implements DeviceHandler.
func (h *deviceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dev, err := h.deviceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dev)
}

// List implements DeviceHandler.
func (h *deviceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.deviceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, devices)
}

// Deactivate implements DeviceHandler.
func (h *deviceHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deviceService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device deactivated", nil)
}
