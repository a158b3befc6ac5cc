package get_next_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getNextAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_next_available_slots"
)

const (
	msgInvalidDuration    = "duración inválida"
	msgInvalidLimit       = "límite inválido"
	msgManicuristNotFound = "manicurista no encontrada"
)

type Handler struct {
	useCase GetNextAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetNextAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots/next?duration=60&limit=10&manicuristIds=a,b&businessId=x
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /available-slots/next - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.logger.Warn("GET /available-slots/next - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	var manicuristIDs []string
	if raw := query.Get("manicuristIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				manicuristIDs = append(manicuristIDs, id)
			}
		}
	}

	var businessID *string
	if raw := query.Get("businessId"); raw != "" {
		businessID = &raw
	}

	result, err := h.useCase.Execute(r.Context(), &getNextAvailableSlots.Request{
		BusinessID:      businessID,
		ManicuristIDs:   manicuristIDs,
		DurationMinutes: duration,
		Limit:           limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, getNextAvailableSlots.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)
		case errors.Is(err, getNextAvailableSlots.ErrManicuristNotFound):
			handlers.RespondNotFound(w, msgManicuristNotFound)
		default:
			h.logger.Error("GET /available-slots/next - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
