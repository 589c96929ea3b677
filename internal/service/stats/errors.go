package stats

import "errors"

var (
	// ErrBusinessNotFound у пользователя нет бизнеса
	ErrBusinessNotFound = errors.New("stats.service: business not found")
	// ErrInvalidInput некорректный диапазон
	ErrInvalidInput = errors.New("stats.service: invalid input")
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("stats.service: internal error")
)
