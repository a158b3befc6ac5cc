package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate         = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidDuration     = "duración inválida"
	msgManicuristNotFound  = "manicurista no encontrada"
	msgInvalidManicuristID = "id de manicurista inválido"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/manicurists/{manicuristId}/available-slots?date=YYYY-MM-DD&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manicuristID := mux.Vars(r)["manicuristId"]

	date, err := time.ParseInLocation(domain.DateFormat, r.URL.Query().Get("date"), time.Local)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ManicuristID:    manicuristID,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidManicuristID):
			handlers.RespondBadRequest(w, msgInvalidManicuristID)
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)
		case errors.Is(err, getAvailableSlots.ErrManicuristNotFound):
			h.logger.Warn("GET /available-slots - Manicurist not found: manicurist_id=%s", manicuristID)
			handlers.RespondNotFound(w, msgManicuristNotFound)
		default:
			h.logger.Error("GET /available-slots - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
