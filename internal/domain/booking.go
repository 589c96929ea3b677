package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusReserved  BookingStatus = "reserved"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusReserved, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents an appointment ("turno") occupying [Start, End)
type Booking struct {
	ID              int64
	BusinessID      int64
	ServiceID       *int64
	Start           time.Time
	End             time.Time
	ClientName      string
	ClientContact   string
	Note            *string
	Status          BookingStatus
	CreatedByUserID *int64

	CancelReason *string
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts for conflict purposes
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusReserved || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking is waiting for confirmation
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusReserved
}

// DurationMinutes length of the booking
func (b *Booking) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// BusinessBookingsFilter фильтр для получения бронирований бизнеса
type BusinessBookingsFilter struct {
	BusinessID      int64      // Обязательный параметр
	From            *time.Time // Начало интервала (включительно), nil - без ограничения
	To              *time.Time // Конец интервала (включительно), nil - без ограничения
	Status          *BookingStatus
	IncludeInactive bool // Включать ли отменённые бронирования
}
