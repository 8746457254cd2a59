package device

import (
	"github.com/mir-ams/attendance-backend-go/internal/pkg/validator"
)

type RegisterDeviceRequest struct {
	Name         string  `json:"name"`
	SerialNumber string  `json:"serial_number"`
	DeviceType   string  `json:"device_type"`
	Location     *string `json:"location,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
}

func (r *RegisterDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.SerialNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "serial_number",
			Message: "serial_number is required",
		})
	}

	if validator.IsEmpty(r.DeviceType) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_type",
			Message: "device_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
