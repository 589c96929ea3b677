package replace_schedule

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда у пользователя нет бизнеса
	ErrBusinessNotFound = errors.New("replace_schedule: business not found")

	// ErrInvalidWeekday возвращается для дня недели вне 0..6
	ErrInvalidWeekday = errors.New("replace_schedule: weekday must be in 0..6 (monday=0)")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("replace_schedule: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("replace_schedule: storage error")
)
