package update_my_business

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

const (
	msgMissingUserID      = "falta el id de usuario"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgBusinessNotFound   = "el usuario no tiene un negocio activo"
)

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

// Handle PUT /api/v1/my/business
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /my/business - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /my/business - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OwnerUserID = userID

	business, err := h.service.UpdateMine(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, businesses.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, businesses.ErrInvalidInput):
			h.logger.Warn("PUT /my/business - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /my/business - Failed to update business: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /my/business - Business updated: business_id=%d", business.ID)
	handlers.RespondJSON(w, http.StatusOK, business)
}
