package bookingevents

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// Типы событий
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingDeleted   = "booking.deleted"
)

// Event событие жизненного цикла бронирования
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BusinessID int64     `json:"business_id"`
	BookingID  int64     `json:"booking_id"`
	ServiceID  *int64    `json:"service_id,omitempty"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent строит событие с новым идентификатором
func NewEvent(eventType string, b *domain.Booking, now time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		BusinessID: b.BusinessID,
		BookingID:  b.ID,
		ServiceID:  b.ServiceID,
		Start:      b.Start,
		End:        b.End,
		Status:     string(b.Status),
		OccurredAt: now.UTC(),
	}
}
