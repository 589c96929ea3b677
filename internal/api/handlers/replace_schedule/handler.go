package replace_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	replaceSchedule "github.com/m04kA/SMC-TurnosService/internal/usecase/replace_schedule"
)

const (
	msgMissingUserID      = "falta el id de usuario"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidSchedule    = "horario inválido: se espera HH:MM e intervalo entre 5 y 480 minutos"
	msgInvalidWeekday     = "día de la semana inválido, se espera 0 (lunes) a 6 (domingo)"
	msgBusinessNotFound   = "el usuario no tiene un negocio activo"
)

type Handler struct {
	useCase ReplaceScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/my/schedule
// Полностью заменяет расписание, пустой список очищает его
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /my/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /my/schedule - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, replaceSchedule.ErrInvalidWeekday):
			h.logger.Warn("PUT /my/schedule - Invalid weekday: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, replaceSchedule.ErrInvalidInput):
			h.logger.Warn("PUT /my/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, replaceSchedule.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		default:
			h.logger.Error("PUT /my/schedule - Failed to replace schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /my/schedule - Schedule replaced: business_id=%d, blocks=%d", result.BusinessID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
