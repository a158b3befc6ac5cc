package delete_blocked_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/manicurists"
)

const msgBlockedTimeNotFound = "bloqueo de horario no encontrado"

type Handler struct {
	service ManicuristsService
	logger  Logger
}

func NewHandler(service ManicuristsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocked-times/{blockedTimeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockedTimeID := mux.Vars(r)["blockedTimeId"]

	if err := h.service.DeleteBlockedTime(r.Context(), blockedTimeID); err != nil {
		switch {
		case errors.Is(err, manicurists.ErrBlockedTimeNotFound):
			handlers.RespondNotFound(w, msgBlockedTimeNotFound)
		default:
			h.logger.Error("DELETE /blocked-times/{id} - Internal error: blocked_time_id=%s: %v", blockedTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
