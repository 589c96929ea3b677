package create_service

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
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidService     = "nombre obligatorio y duración entre 5 y 1440 minutos"
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

// Handle POST /api/v1/my/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /my/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /my/services - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidService)
		return
	}
	req.OwnerUserID = userID

	service, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, catalog.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("POST /my/services - Failed to create service: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /my/services - Service created: service_id=%d, business_id=%d", service.ID, service.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, service)
}
