package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request запрос на создание записи
type Request struct {
	BusinessID   string
	ClientID     string
	ManicuristID string
	ServiceID    string
	StartAt      time.Time
	Notes        *string
}

// Response созданная запись с данными клиента, мастера и услуги
type Response struct {
	ID         string             `json:"id"`
	Status     string             `json:"status"`
	StartAt    time.Time          `json:"startAt"`
	EndAt      time.Time          `json:"endAt"`
	Price      string             `json:"price"`
	Notes      *string            `json:"notes,omitempty"`
	Client     ClientSummary      `json:"client"`
	Manicurist ManicuristSummary  `json:"manicurist"`
	Service    ServiceInfoSummary `json:"service"`
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

// ServiceInfoSummary краткие данные услуги в ответе
type ServiceInfoSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromDetails собирает ответ из записи с отношениями
func FromDetails(d *domain.AppointmentDetails) *Response {
	return &Response{
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
		Service: ServiceInfoSummary{
			ID:              d.Service.ID,
			Name:            d.Service.Name,
			DurationMinutes: d.Service.DurationMinutes,
		},
	}
}
