package update_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if req.Status != nil {
		if _, ok := domain.ParseAppointmentStatus(*req.Status); !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}
	if req.ManicuristID != nil && *req.ManicuristID == "" {
		return fmt.Errorf("%w: manicuristId must not be empty", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId must not be empty", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
