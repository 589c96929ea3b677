package get_stats_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnosService/internal/service/stats"
	"github.com/m04kA/SMC-TurnosService/internal/service/stats/models"
)

const (
	msgMissingUserID    = "falta el id de usuario"
	msgInvalidParams    = "rango de fechas inválido"
	msgBusinessNotFound = "el usuario no tiene un negocio activo"
)

type Handler struct {
	service  StatsService
	location *time.Location
	logger   Logger
}

func NewHandler(service StatsService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/my/stats/summary
// Query params: from, to (опционально, по умолчанию текущий месяц)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from, err := handlers.QueryTime(r, "from", h.location, false)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := handlers.QueryTime(r, "to", h.location, true)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	summary, err := h.service.Summary(r.Context(), &models.SummaryRequest{OwnerUserID: userID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, stats.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /my/stats/summary - Failed to build summary: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /my/stats/summary - Summary built: user_id=%d, total=%d", userID, summary.Total)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
