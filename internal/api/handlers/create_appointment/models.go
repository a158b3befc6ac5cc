package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest тело запроса создания записи
type CreateAppointmentRequest struct {
	BusinessID   string  `json:"businessId"`
	ClientID     string  `json:"clientId"`
	ManicuristID string  `json:"manicuristId"`
	ServiceID    string  `json:"serviceId"`
	StartAt      string  `json:"startAt"` // RFC 3339
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		BusinessID:   r.BusinessID,
		ClientID:     r.ClientID,
		ManicuristID: r.ManicuristID,
		ServiceID:    r.ServiceID,
		StartAt:      startAt,
		Notes:        r.Notes,
	}, nil
}
