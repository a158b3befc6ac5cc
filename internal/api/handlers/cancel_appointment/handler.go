package cancel_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgAppointmentNotFound = "turno no encontrado"
	msgNotCancellable      = "un turno completado no se puede cancelar"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CancelAppointmentResponse тело ответа отмены записи
type CancelAppointmentResponse struct {
	ID      string    `json:"id"`
	Status  string    `json:"status"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	appt, err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrNotCancellable):
			h.logger.Warn("PATCH /appointments/cancel - Not cancellable: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotCancellable)
		default:
			h.logger.Error("PATCH /appointments/cancel - Internal error: appointment_id=%s: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CancelAppointmentResponse{
		ID:      appt.ID,
		Status:  string(appt.Status),
		StartAt: appt.StartAt,
		EndAt:   appt.EndAt,
	})
}
