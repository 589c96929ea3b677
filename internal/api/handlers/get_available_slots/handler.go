package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-TurnosService/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID = "service_id inválido"
	msgInvalidDate      = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgRangeTooLarge    = "el rango de fechas es demasiado grande"
	msgInvalidRange     = "rango de fechas inválido"
	msgBusinessNotFound = "negocio no encontrado"
	msgServiceNotFound  = "servicio no encontrado"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/public/businesses/{code}/slots
// Query params: from (required, YYYY-MM-DD), to (опционально), service_id (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	serviceID, err := handlers.QueryInt64(r, "service_id")
	if err != nil {
		h.logger.Warn("GET /public/businesses/{code}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(code, query.Get("from"), query.Get("to"), serviceID, h.location)
	if err != nil {
		h.logger.Warn("GET /public/businesses/{code}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBusinessNotFound):
			h.logger.Warn("GET /public/businesses/{code}/slots - Business not found: code=%q", code)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /public/businesses/{code}/slots - Service not found: code=%q", code)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrRangeTooLarge):
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /public/businesses/{code}/slots - Failed to get slots: code=%q, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /public/businesses/{code}/slots - Slots retrieved successfully: business_id=%d, slots_count=%d",
		result.BusinessID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
