package update_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnosService/internal/service/catalog"
	"github.com/m04kA/SMC-TurnosService/internal/service/catalog/models"
)

const (
	msgMissingUserID      = "falta el id de usuario"
	msgInvalidServiceID   = "id de servicio inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidService     = "nombre obligatorio y duración entre 5 y 1440 minutos"
	msgServiceNotFound    = "servicio no encontrado"
	msgBusinessNotFound   = "el usuario no tiene un negocio activo"
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

// Handle PUT /api/v1/my/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /my/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /my/services/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidService)
		return
	}
	req.OwnerUserID = userID
	req.ServiceID = serviceID

	service, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /my/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("PUT /my/services/{id} - Failed to update service: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /my/services/{id} - Service updated: service_id=%d", service.ID)
	handlers.RespondJSON(w, http.StatusOK, service)
}
