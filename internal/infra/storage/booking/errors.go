package booking

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда БД отклонила вставку из-за пересечения интервалов
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Коды ошибок postgres, означающие что интервал занят конкурентной транзакцией
const (
	pgExclusionViolation  = "23P01"
	pgUniqueViolation     = "23505"
	pgSerializationFailed = "40001"
)

// IsSlotTaken true для ErrSlotTaken и для ошибок postgres, возникающих
// при конкурентной вставке пересекающихся бронирований (в том числе на COMMIT)
func IsSlotTaken(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSlotTaken) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgExclusionViolation, pgUniqueViolation, pgSerializationFailed:
			return true
		}
	}
	return false
}

// queryError оборачивает ошибку драйвера в sentinel. Отказ сериализации или
// блокировки из-за конкурентной транзакции возвращается как ErrSlotTaken.
func queryError(sentinel error, step string, err error) error {
	if IsSlotTaken(err) {
		return fmt.Errorf("%w: %s: %v", ErrSlotTaken, step, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, step, err)
}
