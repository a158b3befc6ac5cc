package update_appointment

import (
	"time"

	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest тело запроса частичного обновления записи
type UpdateAppointmentRequest struct {
	ManicuristID *string `json:"manicuristId,omitempty"`
	ServiceID    *string `json:"serviceId,omitempty"`
	StartAt      *string `json:"startAt,omitempty"` // RFC 3339
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id string) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:           id,
		ManicuristID: r.ManicuristID,
		ServiceID:    r.ServiceID,
		Status:       r.Status,
		Notes:        r.Notes,
	}

	if r.StartAt != nil {
		startAt, err := time.Parse(time.RFC3339, *r.StartAt)
		if err != nil {
			return nil, err
		}
		req.StartAt = &startAt
	}

	return req, nil
}
