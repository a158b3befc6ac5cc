package create_blocked_time

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/manicurists"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidInterval    = "el intervalo de bloqueo es inválido"
	msgInvalidDateTime    = "formato de fecha y hora inválido, se espera RFC 3339"
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

// CreateBlockedTimeRequest тело запроса блокировки интервала
type CreateBlockedTimeRequest struct {
	StartAt string  `json:"startAt"` // RFC 3339
	EndAt   string  `json:"endAt"`   // RFC 3339
	Reason  *string `json:"reason,omitempty"`
}

// BlockedTimeResponse тело ответа с блокировкой
type BlockedTimeResponse struct {
	ID           string    `json:"id"`
	ManicuristID string    `json:"manicuristId"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	Reason       *string   `json:"reason,omitempty"`
}

// Handle POST /api/v1/manicurists/{manicuristId}/blocked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	manicuristID := mux.Vars(r)["manicuristId"]

	var req CreateBlockedTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	created, err := h.service.CreateBlockedTime(r.Context(), manicuristID, startAt, endAt, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, manicurists.ErrInvalidBlockedTime):
			handlers.RespondBadRequest(w, msgInvalidInterval)
		case errors.Is(err, manicurists.ErrManicuristNotFound):
			handlers.RespondNotFound(w, msgManicuristNotFound)
		default:
			h.logger.Error("POST /blocked-times - Internal error: manicurist_id=%s: %v", manicuristID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, BlockedTimeResponse{
		ID:           created.ID,
		ManicuristID: created.ManicuristID,
		StartAt:      created.StartAt,
		EndAt:        created.EndAt,
		Reason:       created.Reason,
	})
}
