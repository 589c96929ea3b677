package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerUserID == nil && strings.TrimSpace(req.BusinessCode) == "" && req.BusinessID <= 0 {
		return fmt.Errorf("%w: business code or id is required", ErrInvalidInput)
	}

	if req.OwnerUserID != nil && *req.OwnerUserID <= 0 {
		return fmt.Errorf("%w: owner user id must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client name exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if len(req.ClientContact) > domain.MaxClientContactLength {
		return fmt.Errorf("%w: client contact exceeds %d characters", ErrInvalidInput, domain.MaxClientContactLength)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// validateStart проверяет, что начало не в прошлом
func validateStart(start, now time.Time) error {
	if start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

// normalizeClient заполняет значения по умолчанию для данных клиента
func normalizeClient(booking *domain.Booking, req *Request) {
	booking.ClientName = strings.TrimSpace(req.ClientName)
	if booking.ClientName == "" {
		booking.ClientName = domain.DefaultClientName
	}

	booking.ClientContact = strings.TrimSpace(req.ClientContact)
	if booking.ClientContact == "" {
		booking.ClientContact = domain.DefaultClientContact
	}

	if req.Note != nil {
		if note := strings.TrimSpace(*req.Note); note != "" {
			booking.Note = &note
		}
	}

	booking.CreatedByUserID = req.OwnerUserID
}
