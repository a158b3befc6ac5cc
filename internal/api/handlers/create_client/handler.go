package create_client

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidPhone       = "número de teléfono inválido"
	msgPhoneExists        = "ya existe un cliente con ese teléfono"
	msgNameRequired       = "el nombre es obligatorio"
)

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateClientRequest тело запроса создания клиента
type CreateClientRequest struct {
	BusinessID string  `json:"businessId"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      *string `json:"email,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// ClientResponse тело ответа с данными клиента
type ClientResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Name == "" {
		handlers.RespondBadRequest(w, msgNameRequired)
		return
	}

	created, err := h.service.Create(r.Context(), clients.CreateInput{
		BusinessID: req.BusinessID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)
		case errors.Is(err, clients.ErrPhoneExists):
			h.logger.Warn("POST /clients - Phone exists: business_id=%s", req.BusinessID)
			handlers.RespondError(w, http.StatusConflict, msgPhoneExists)
		default:
			h.logger.Error("POST /clients - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, ClientResponse{
		ID:         created.ID,
		BusinessID: created.BusinessID,
		Name:       created.Name,
		Phone:      created.Phone,
		Email:      created.Email,
		Notes:      created.Notes,
		CreatedAt:  created.CreatedAt,
	})
}
