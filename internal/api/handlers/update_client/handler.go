package update_client

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgClientNotFound     = "cliente no encontrado"
	msgInvalidPhone       = "número de teléfono inválido"
	msgPhoneExists        = "ya existe un cliente con ese teléfono"
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

// UpdateClientRequest тело запроса частичного обновления клиента
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// ClientResponse тело ответа с данными клиента
type ClientResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Handle PATCH /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	var req UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), clientID, clients.UpdateInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)
		case errors.Is(err, clients.ErrInvalidPhone):
			handlers.RespondBadRequest(w, msgInvalidPhone)
		case errors.Is(err, clients.ErrPhoneExists):
			h.logger.Warn("PATCH /clients - Phone exists: client_id=%s", clientID)
			handlers.RespondError(w, http.StatusConflict, msgPhoneExists)
		default:
			h.logger.Error("PATCH /clients - Internal error: client_id=%s: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ClientResponse{
		ID:         updated.ID,
		BusinessID: updated.BusinessID,
		Name:       updated.Name,
		Phone:      updated.Phone,
		Email:      updated.Email,
		Notes:      updated.Notes,
		UpdatedAt:  updated.UpdatedAt,
	})
}
