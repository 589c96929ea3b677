package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований бизнеса владельца
type ListBookingsRequest struct {
	OwnerUserID      int64
	From             *time.Time // По умолчанию начало сегодняшнего дня
	To               *time.Time // По умолчанию From + 30 дней
	Status           *string
	IncludeCancelled bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	OwnerUserID int64   `json:"-"`
	Reason      *string `json:"reason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	BusinessID      int64     `json:"business_id"`
	ServiceID       *int64    `json:"service_id,omitempty"`
	ServiceName     *string   `json:"service_name,omitempty"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	ClientName      string    `json:"client_name"`
	ClientContact   string    `json:"client_contact"`
	Note            *string   `json:"note,omitempty"`
	Status          string    `json:"status"`
	CreatedByUserID *int64    `json:"created_by_user_id,omitempty"`

	CancelReason *string    `json:"cancel_reason,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	From     time.Time         `json:"from"`
	To       time.Time         `json:"to"`
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// names соответствие service_id -> название, может быть nil.
func FromDomainBooking(b *domain.Booking, names map[int64]string) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		ServiceID:       b.ServiceID,
		Start:           b.Start,
		End:             b.End,
		DurationMinutes: b.DurationMinutes(),
		ClientName:      b.ClientName,
		ClientContact:   b.ClientContact,
		Note:            b.Note,
		Status:          string(b.Status),
		CreatedByUserID: b.CreatedByUserID,
		CancelReason:    b.CancelReason,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.ServiceID != nil {
		if name, ok := names[*b.ServiceID]; ok {
			resp.ServiceName = &name
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, names map[int64]string, from, to time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		From:     from,
		To:       to,
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, names); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
