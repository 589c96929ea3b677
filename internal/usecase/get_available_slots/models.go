package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	BusinessCode string    // Публичный код бизнеса
	ServiceID    *int64    // Услуга; если задана, доступность считается по её длительности
	From         time.Time // Первый день (время игнорируется)
	To           time.Time // Последний день включительно; нулевое значение означает From + DefaultSlotsRangeDays
}

// Response модель ответа со списком слотов
type Response struct {
	BusinessID int64
	ServiceID  *int64
	From       time.Time // Начало первого дня
	To         time.Time // Конец последнего дня (исключительно)
	Slots      []domain.AvailableSlot
}
