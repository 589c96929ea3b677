package list_my_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnosService/internal/service/catalog"
)

const (
	msgMissingUserID    = "falta el id de usuario"
	msgBusinessNotFound = "el usuario no tiene un negocio activo"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/my/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	services, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("GET /my/services - Failed to list services: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /my/services - Services retrieved: user_id=%d, count=%d", userID, len(services))
	handlers.RespondJSON(w, http.StatusOK, services)
}
