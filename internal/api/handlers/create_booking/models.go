package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-TurnosService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Публичный запрос указывает business_code или business_id, владелец бронирует в своём бизнесе без них.
type CreateBookingRequest struct {
	BusinessCode  string    `json:"business_code" validate:"omitempty,max=16"`
	BusinessID    int64     `json:"business_id" validate:"omitempty,gt=0"`
	ServiceID     int64     `json:"service_id" validate:"required,gt=0"`
	Start         time.Time `json:"start" validate:"required"`
	ClientName    string    `json:"client_name" validate:"max=120"`
	ClientContact string    `json:"client_contact" validate:"max=120"`
	Note          *string   `json:"note,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"business_id"`
	ServiceID       *int64    `json:"service_id,omitempty"`
	ServiceName     string    `json:"service_name"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	ClientName      string    `json:"client_name"`
	ClientContact   string    `json:"client_contact"`
	Note            *string   `json:"note,omitempty"`
	Status          string    `json:"status"`
	CreatedByUserID *int64    `json:"created_by_user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(ownerUserID *int64) *createBooking.Request {
	return &createBooking.Request{
		OwnerUserID:   ownerUserID,
		BusinessCode:  r.BusinessCode,
		BusinessID:    r.BusinessID,
		ServiceID:     r.ServiceID,
		Start:         r.Start,
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Note:          r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		BusinessID:      resp.BusinessID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		Start:           resp.Start,
		End:             resp.End,
		DurationMinutes: resp.DurationMinutes,
		ClientName:      resp.ClientName,
		ClientContact:   resp.ClientContact,
		Note:            resp.Note,
		Status:          resp.Status,
		CreatedByUserID: resp.CreatedByUserID,
		CreatedAt:       resp.CreatedAt,
	}
}
