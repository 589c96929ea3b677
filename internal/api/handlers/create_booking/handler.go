package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-TurnosService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingBusiness    = "se requiere business_code o business_id"
	msgBusinessNotFound   = "negocio no encontrado"
	msgServiceNotFound    = "servicio no encontrado"
	msgOutOfSchedule      = "el horario solicitado está fuera del horario de atención"
	msgSlotConflict       = "el horario solicitado ya está ocupado"
	msgInvalidInterval    = "la duración del servicio no entra en el día"
	msgStartInPast        = "no se puede reservar en el pasado"
	msgInvalidInput       = "datos de la reserva inválidos"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/bookings и POST /api/v1/my/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	// Владелец приходит через Auth, публичный клиент указывает код или ID бизнеса
	var ownerUserID *int64
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		ownerUserID = &userID
	} else if strings.TrimSpace(req.BusinessCode) == "" && req.BusinessID == 0 {
		handlers.RespondBadRequest(w, msgMissingBusiness)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerUserID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: business=%q, start=%s", req.BusinessCode, req.Start)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrOutOfSchedule):
			h.logger.Warn("POST /bookings - Out of schedule: business=%q, start=%s", req.BusinessCode, req.Start)
			handlers.RespondConflict(w, msgOutOfSchedule)

		case errors.Is(err, createBooking.ErrBusinessNotFound):
			h.logger.Warn("POST /bookings - Business not found: code=%q, id=%d", req.BusinessCode, req.BusinessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrStartInPast):
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: business=%q, error=%v", req.BusinessCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, business_id=%d",
		result.ID, result.BusinessID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
