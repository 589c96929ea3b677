package businesses

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("businesses.service: business not found")

	// ErrCodeGeneration возвращается, когда не удалось подобрать свободный код
	ErrCodeGeneration = errors.New("businesses.service: failed to generate unique code")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("businesses.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("businesses.service: internal error")
)
