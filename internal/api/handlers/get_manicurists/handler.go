package get_manicurists

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/manicurists"
)

const msgManicuristNotFound = "manicurista no encontrada"

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

// ManicuristResponse данные мастера в ответе
type ManicuristResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsActive   bool   `json:"isActive"`
}

// ScheduleDayResponse строка недельного графика
type ScheduleDayResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// ManicuristDetailsResponse мастер с недельным графиком
type ManicuristDetailsResponse struct {
	ManicuristResponse
	Schedule []ScheduleDayResponse `json:"schedule"`
}

// ManicuristListResponse список мастеров
type ManicuristListResponse struct {
	Manicurists []ManicuristResponse `json:"manicurists"`
	Total       int                  `json:"total"`
}

// HandleList GET /api/v1/manicurists?businessId=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var businessID *string
	if raw := r.URL.Query().Get("businessId"); raw != "" {
		businessID = &raw
	}

	list, err := h.service.List(r.Context(), businessID)
	if err != nil {
		h.logger.Error("GET /manicurists - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := ManicuristListResponse{
		Manicurists: make([]ManicuristResponse, 0, len(list)),
		Total:       len(list),
	}
	for _, m := range list {
		out.Manicurists = append(out.Manicurists, fromManicurist(m))
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

// HandleGet GET /api/v1/manicurists/{manicuristId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	manicuristID := mux.Vars(r)["manicuristId"]

	m, schedules, err := h.service.GetWithSchedule(r.Context(), manicuristID)
	if err != nil {
		if errors.Is(err, manicurists.ErrManicuristNotFound) {
			handlers.RespondNotFound(w, msgManicuristNotFound)
			return
		}
		h.logger.Error("GET /manicurists/{id} - Internal error: manicurist_id=%s: %v", manicuristID, err)
		handlers.RespondInternalError(w)
		return
	}

	out := ManicuristDetailsResponse{
		ManicuristResponse: fromManicurist(m),
		Schedule:           make([]ScheduleDayResponse, 0, len(schedules)),
	}
	for _, sc := range schedules {
		out.Schedule = append(out.Schedule, ScheduleDayResponse{
			DayOfWeek: sc.DayOfWeek,
			StartTime: sc.StartTime.String(),
			EndTime:   sc.EndTime.String(),
			IsActive:  sc.IsActive,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}

func fromManicurist(m *domain.Manicurist) ManicuristResponse {
	return ManicuristResponse{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		Name:       m.Name,
		Color:      m.Color,
		IsActive:   m.IsActive,
	}
}
