package replace_schedule

import (
	"context"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByOwner(ctx context.Context, ownerUserID int64) (*domain.Business, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	// ReplaceForBusiness удаляет все блоки бизнеса и вставляет новые (требует транзакцию)
	ReplaceForBusiness(ctx context.Context, businessID int64, blocks []domain.ScheduleBlock) ([]domain.ScheduleBlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
