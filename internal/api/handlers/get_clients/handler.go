package get_clients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

const (
	msgClientNotFound     = "cliente no encontrado"
	msgBusinessIDRequired = "se requiere el parámetro businessId"
)

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleGet GET /api/v1/clients/{clientId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	details, err := h.service.GetByID(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id} - Internal error: client_id=%s: %v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDetails(details))
}

// HandleSearch GET /api/v1/clients?businessId=&q=&page=&limit=
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	businessID := query.Get("businessId")
	if businessID == "" {
		handlers.RespondBadRequest(w, msgBusinessIDRequired)
		return
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.service.Search(r.Context(), businessID, query.Get("q"), page, limit)
	if err != nil {
		h.logger.Error("GET /clients - Internal error: business_id=%s: %v", businessID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromSearchResult(result))
}
