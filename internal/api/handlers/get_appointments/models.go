package get_appointments

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentResponse запись с данными клиента, мастера и услуги
type AppointmentResponse struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	StartAt    time.Time         `json:"startAt"`
	EndAt      time.Time         `json:"endAt"`
	Price      string            `json:"price"`
	Notes      *string           `json:"notes,omitempty"`
	Client     ClientSummary     `json:"client"`
	Manicurist ManicuristSummary `json:"manicurist"`
	Service    ServiceSummary    `json:"service"`
}

// ClientSummary краткие данные клиента в ответе
type ClientSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ManicuristSummary краткие данные мастера в ответе
type ManicuristSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ServiceSummary краткие данные услуги в ответе
type ServiceSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Color           string `json:"color"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDetails конвертирует запись с отношениями в ответ API
func FromDetails(d *domain.AppointmentDetails) AppointmentResponse {
	return AppointmentResponse{
		ID:      d.ID,
		Status:  string(d.Status),
		StartAt: d.StartAt,
		EndAt:   d.EndAt,
		Price:   d.Price.StringFixed(2),
		Notes:   d.Notes,
		Client: ClientSummary{
			ID:    d.Client.ID,
			Name:  d.Client.Name,
			Phone: d.Client.Phone,
		},
		Manicurist: ManicuristSummary{
			ID:    d.Manicurist.ID,
			Name:  d.Manicurist.Name,
			Color: d.Manicurist.Color,
		},
		Service: ServiceSummary{
			ID:              d.Service.ID,
			Name:            d.Service.Name,
			DurationMinutes: d.Service.DurationMinutes,
			Color:           d.Service.Color,
		},
	}
}

// FromDetailsList конвертирует список записей в ответ API
func FromDetailsList(list []*domain.AppointmentDetails) AppointmentListResponse {
	out := AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, d := range list {
		out.Appointments = append(out.Appointments, FromDetails(d))
	}
	return out
}
