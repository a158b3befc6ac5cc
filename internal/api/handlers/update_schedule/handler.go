package update_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/manicurists"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidSchedule    = "el horario semanal es inválido"
	msgManicuristNotFound = "manicurista no encontrada"
)

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

// ScheduleDayRequest строка недельного графика в запросе
type ScheduleDayRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// UpdateScheduleRequest тело запроса замены недельного графика
type UpdateScheduleRequest struct {
	Schedule []ScheduleDayRequest `json:"schedule"`
}

// Handle PUT /api/v1/manicurists/{manicuristId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manicuristID := mux.Vars(r)["manicuristId"]

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedules := make([]domain.Schedule, 0, len(req.Schedule))
	for _, day := range req.Schedule {
		schedule := domain.Schedule{
			DayOfWeek: day.DayOfWeek,
			IsActive:  day.IsActive,
		}
		if day.IsActive {
			start, err := types.NewTimeStringFromString(day.StartTime)
			if err != nil {
				h.logger.Warn("PUT /schedule - Invalid start time %q: %v", day.StartTime, err)
				handlers.RespondBadRequest(w, msgInvalidTime)
				return
			}
			end, err := types.NewTimeStringFromString(day.EndTime)
			if err != nil {
				h.logger.Warn("PUT /schedule - Invalid end time %q: %v", day.EndTime, err)
				handlers.RespondBadRequest(w, msgInvalidTime)
				return
			}
			schedule.StartTime = start
			schedule.EndTime = end
		}
		schedules = append(schedules, schedule)
	}

	if err := h.service.UpdateWeeklySchedule(r.Context(), manicuristID, schedules); err != nil {
		switch {
		case errors.Is(err, manicurists.ErrInvalidSchedule):
			h.logger.Warn("PUT /schedule - Invalid schedule: manicurist_id=%s: %v", manicuristID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
		case errors.Is(err, manicurists.ErrManicuristNotFound):
			handlers.RespondNotFound(w, msgManicuristNotFound)
		default:
			h.logger.Error("PUT /schedule - Internal error: manicurist_id=%s: %v", manicuristID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
