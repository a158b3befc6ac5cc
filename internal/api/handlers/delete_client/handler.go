package delete_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

const (
	msgClientNotFound        = "cliente no encontrado"
	msgHasFutureAppointments = "el cliente tiene turnos futuros y no se puede eliminar"
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

// Handle DELETE /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	if err := h.service.Delete(r.Context(), clientID); err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			handlers.RespondNotFound(w, msgClientNotFound)
		case errors.Is(err, clients.ErrHasFutureAppointments):
			h.logger.Warn("DELETE /clients - Has future appointments: client_id=%s", clientID)
			handlers.RespondError(w, http.StatusConflict, msgHasFutureAppointments)
		default:
			h.logger.Error("DELETE /clients - Internal error: client_id=%s: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
