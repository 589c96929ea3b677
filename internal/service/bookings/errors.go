package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в бизнесе владельца
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrBusinessNotFound возвращается, когда у пользователя нет бизнеса
	ErrBusinessNotFound = errors.New("bookings.service: business not found")

	// ErrCannotCancel возвращается, когда бронирование уже отменено
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrCannotConfirm возвращается, когда бронирование не в статусе reserved
	ErrCannotConfirm = errors.New("bookings.service: booking cannot be confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
