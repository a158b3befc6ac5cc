package get_dashboard

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const msgInvalidDateRange = "formato de fecha inválido, se espera YYYY-MM-DD"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStats GET /api/v1/businesses/{businessId}/dashboard/stats?from=&to=
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	from, to, err := parseRange(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	stats, err := h.service.GetStats(r.Context(), businessID, from, to)
	if err != nil {
		h.logger.Error("GET /dashboard/stats - Internal error: business_id=%s: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, statsFromDomain(stats))
}

// HandleProductivity GET /api/v1/businesses/{businessId}/dashboard/productivity?from=&to=
func (h *Handler) HandleProductivity(w http.ResponseWriter, r *http.Request) {
	businessID := mux.Vars(r)["businessId"]

	from, to, err := parseRange(r)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	rows, err := h.service.GetProductivity(r.Context(), businessID, from, to)
	if err != nil {
		h.logger.Error("GET /dashboard/productivity - Internal error: business_id=%s: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, productivityFromDomain(rows))
}

// parseRange разбирает необязательные границы периода из query-параметров.
// Дата "to" включает весь день целиком
func parseRange(r *http.Request) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, nil, err
		}
		end := parsed.Add(24*time.Hour - time.Millisecond)
		to = &end
	}

	return from, to, nil
}
