package get_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidDate         = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgMissingPeriod       = "se requiere el parámetro date o weekStart"
	msgAppointmentNotFound = "turno no encontrado"
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

// HandleList GET /api/v1/appointments?date=YYYY-MM-DD|weekStart=YYYY-MM-DD&manicuristId=&businessId=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.AppointmentsFilter{}
	if raw := query.Get("businessId"); raw != "" {
		filter.BusinessID = &raw
	}
	if raw := query.Get("manicuristId"); raw != "" {
		filter.ManicuristID = &raw
	}

	var (
		list []*domain.AppointmentDetails
		err  error
	)
	switch {
	case query.Get("date") != "":
		var date time.Time
		date, err = time.ParseInLocation(domain.DateFormat, query.Get("date"), time.Local)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		list, err = h.service.GetByDate(r.Context(), date, filter)

	case query.Get("weekStart") != "":
		var weekStart time.Time
		weekStart, err = time.ParseInLocation(domain.DateFormat, query.Get("weekStart"), time.Local)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		list, err = h.service.GetByWeek(r.Context(), weekStart, filter)

	default:
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	if err != nil {
		h.logger.Error("GET /appointments - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDetailsList(list))
}

// HandleGet GET /api/v1/appointments/{appointmentId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	details, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.logger.Error("GET /appointments/{id} - Internal error: appointment_id=%s: %v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDetails(details))
}
