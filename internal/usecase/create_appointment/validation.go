package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID == "" {
		return fmt.Errorf("%w: businessId is required", ErrInvalidInput)
	}
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}
	if req.ManicuristID == "" {
		return fmt.Errorf("%w: manicuristId is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
