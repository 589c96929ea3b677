package create_booking

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// Request модель запроса на создание бронирования.
// Бизнес определяется в порядке: OwnerUserID, BusinessCode, BusinessID.
type Request struct {
	OwnerUserID   *int64    // Владелец создаёт бронирование в своём бизнесе
	BusinessCode  string    // Публичный код бизнеса
	BusinessID    int64     // ID бизнеса
	ServiceID     int64     // ID услуги
	Start         time.Time // Запрошенное начало
	ClientName    string
	ClientContact string
	Note          *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	BusinessID      int64
	ServiceID       *int64
	ServiceName     string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	ClientName      string
	ClientContact   string
	Note            *string
	Status          string
	CreatedByUserID *int64
	CreatedAt       time.Time
}

func toResponse(b *domain.Booking, service *domain.Service) *Response {
	return &Response{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		ServiceID:       b.ServiceID,
		ServiceName:     service.Name,
		Start:           b.Start,
		End:             b.End,
		DurationMinutes: b.DurationMinutes(),
		ClientName:      b.ClientName,
		ClientContact:   b.ClientContact,
		Note:            b.Note,
		Status:          string(b.Status),
		CreatedByUserID: b.CreatedByUserID,
		CreatedAt:       b.CreatedAt,
	}
}
