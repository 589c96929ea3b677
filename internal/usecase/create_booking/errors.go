package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден (по коду, ID или владельцу)
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или выключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrOutOfSchedule возвращается, когда интервал не попадает в расписание
	ErrOutOfSchedule = errors.New("create_booking: requested time is outside the schedule")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным бронированием
	// (в том числе при конкурентной вставке, отклонённой БД)
	ErrSlotConflict = errors.New("create_booking: requested time is not available")

	// ErrInvalidInterval возвращается, когда длительность услуги даёт пустой интервал или переходит через полночь
	ErrInvalidInterval = errors.New("create_booking: invalid booking interval")

	// ErrStartInPast возвращается при попытке забронировать прошедшее время
	ErrStartInPast = errors.New("create_booking: start is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("create_booking: storage error")
)
