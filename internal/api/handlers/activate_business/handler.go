package activate_business

import (
	"net/http"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnosService/internal/service/businesses/models"
)

const (
	msgMissingUserID      = "falta el id de usuario"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
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

// Handle POST /api/v1/my/business
// Повторный вызов возвращает уже существующий бизнес
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.ActivateRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /my/business - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		if err := handlers.Validate(&req); err != nil {
			h.logger.Warn("POST /my/business - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}
	req.OwnerUserID = userID

	business, err := h.service.Activate(r.Context(), &req)
	if err != nil {
		h.logger.Error("POST /my/business - Failed to activate business: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /my/business - Business active: business_id=%d, code=%s", business.ID, business.Code)
	handlers.RespondJSON(w, http.StatusOK, business)
}
