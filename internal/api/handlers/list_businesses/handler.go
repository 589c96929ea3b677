package list_businesses

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

const msgInvalidParams = "parámetros de consulta inválidos"

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses
// Query params: q, category, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryInt(r, "limit", domain.DefaultListLimit)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	offset, err := handlers.QueryInt(r, "offset", 0)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	query := r.URL.Query()
	result, err := h.service.List(r.Context(), &models.ListRequest{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /businesses - Failed to list businesses: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
