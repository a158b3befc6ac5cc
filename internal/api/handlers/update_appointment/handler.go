package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody  = "cuerpo de solicitud inválido"
	msgInvalidStartAt      = "formato de fecha y hora inválido, se espera RFC 3339"
	msgAppointmentNotFound = "turno no encontrado"
	msgNotEditable         = "el turno ya no se puede modificar"
	msgSlotNotAvailable    = "el horario seleccionado no está disponible"
	msgClientConflict      = "el cliente ya tiene un turno en ese horario"
	msgServiceNotFound     = "servicio no encontrado"
	msgManicuristNotFound  = "manicurista no encontrada"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID)
	if err != nil {
		h.logger.Warn("PATCH /appointments - Invalid startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments - Invalid input: appointment_id=%s: %v", appointmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PATCH /appointments - Not editable: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments - Slot not available: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, updateAppointment.ErrClientConflict):
			h.logger.Warn("PATCH /appointments - Client conflict: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgClientConflict+": "+err.Error())

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrManicuristNotFound):
			handlers.RespondNotFound(w, msgManicuristNotFound)

		default:
			h.logger.Error("PATCH /appointments - Internal error: appointment_id=%s: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
