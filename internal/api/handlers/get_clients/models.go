package get_clients

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

// ClientResponse данные клиента в ответе
type ClientResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AppointmentHistoryItem запись в истории клиента
type AppointmentHistoryItem struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Price          string    `json:"price"`
	ServiceName    string    `json:"serviceName"`
	ManicuristName string    `json:"manicuristName"`
}

// ClientDetailsResponse карточка клиента с историей записей
type ClientDetailsResponse struct {
	ClientResponse
	History []AppointmentHistoryItem `json:"history"`
}

// ClientListResponse страница результатов поиска
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

func fromClient(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
	}
}

func fromDetails(d *clients.ClientDetails) ClientDetailsResponse {
	out := ClientDetailsResponse{
		ClientResponse: fromClient(d.Client),
		History:        make([]AppointmentHistoryItem, 0, len(d.History)),
	}
	for _, appt := range d.History {
		out.History = append(out.History, AppointmentHistoryItem{
			ID:             appt.ID,
			Status:         string(appt.Status),
			StartAt:        appt.StartAt,
			EndAt:          appt.EndAt,
			Price:          appt.Price.StringFixed(2),
			ServiceName:    appt.Service.Name,
			ManicuristName: appt.Manicurist.Name,
		})
	}
	return out
}

func fromSearchResult(res *clients.SearchResult) ClientListResponse {
	out := ClientListResponse{
		Clients: make([]ClientResponse, 0, len(res.Clients)),
		Total:   res.Total,
		Page:    res.Page,
		Limit:   res.Limit,
	}
	for _, c := range res.Clients {
		out.Clients = append(out.Clients, fromClient(c))
	}
	return out
}
